package bigdouble

import (
	"math"
)

type RandSource interface {
	Uint64() uint64
}

// RandDouble generates a finite, non-zero Double from an external source, with
// an exponent in [minExp, maxExp] and a mantissa of either sign.
func RandDouble(source RandSource, minExp, maxExp int64) Double {
	if maxExp < minExp {
		minExp, maxExp = maxExp, minExp
	}
	bits := source.Uint64()

	// 52 bits of fraction scaled into [1, 10):
	m := 1 + 9*float64(bits>>12)/(1<<52)
	if bits&1 == 1 {
		m = -m
	}

	span := uint64(maxExp - minExp)
	e := minExp
	if span < math.MaxUint64 {
		e += int64(source.Uint64() % (span + 1))
	} else {
		e = int64(source.Uint64())
	}
	return Double{mantissa: m, exponent: e}
}

// Round rounds d to precision decimal places.
//
// Values under 0.1 in magnitude (exponent < -1) round to Zero. Values with
// 17 or more digits before the requested place are already exact at that
// scale and are returned unchanged.
func (d Double) Round(precision uint) Double {
	if !d.IsFinite() {
		return d
	}
	if d.exponent < -1 {
		return Zero
	}
	if precision >= maxSignificantDigits || d.exponent >= maxSignificantDigits-int64(precision) {
		return d
	}
	p := pow10(d.exponent + int64(precision))
	return normalize(math.Round(d.mantissa*p)/p, d.exponent)
}

// Max returns the larger of a and b.
func Max(a, b Double) Double {
	if a.Cmp(b) > 0 {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b Double) Double {
	if a.Cmp(b) < 0 {
		return a
	}
	return b
}

func (d Double) Max(n Double) Double { return Max(d, n) }
func (d Double) Min(n Double) Double { return Min(d, n) }

// Clamp limits d to the range [min, max]. If d is less than min it returns
// min; otherwise if it is greater than max it returns max.
func (d Double) Clamp(min, max Double) Double {
	if d.Cmp(min) < 0 {
		return min
	} else if d.Cmp(max) > 0 {
		return max
	}
	return d
}

func (d Double) ClampMin(min Double) Double {
	if d.Cmp(min) < 0 {
		return min
	}
	return d
}

func (d Double) ClampMax(max Double) Double {
	if d.Cmp(max) > 0 {
		return max
	}
	return d
}

// Sum adds vs from left to right. The sum of no values is Zero.
func Sum(vs ...Double) Double {
	out := Zero
	for _, v := range vs {
		out = out.Add(v)
	}
	return out
}

// Product multiplies vs from left to right. The product of no values is One.
func Product(vs ...Double) Double {
	out := One
	for _, v := range vs {
		out = out.Mul(v)
	}
	return out
}
