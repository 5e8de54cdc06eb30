package bigdouble

import (
	"math"
)

// Log10 returns the base 10 logarithm of d as a float64. The result is NaN if
// d is negative and -Inf if d is zero.
func (d Double) Log10() float64 {
	return float64(d.exponent) + math.Log10(d.mantissa)
}

// AbsLog10 returns the base 10 logarithm of |d|.
func (d Double) AbsLog10() float64 {
	return float64(d.exponent) + math.Log10(math.Abs(d.mantissa))
}

func (d Double) Log2() float64 { return log2Of10 * d.Log10() }
func (d Double) Ln() float64   { return lnOf10 * d.Log10() }

func (d Double) Log10Double() Double    { return DoubleFromFloat64(d.Log10()) }
func (d Double) AbsLog10Double() Double { return DoubleFromFloat64(d.AbsLog10()) }
func (d Double) Log2Double() Double     { return DoubleFromFloat64(d.Log2()) }
func (d Double) LnDouble() Double       { return DoubleFromFloat64(d.Ln()) }

// Pow10Float returns 10^power. Only integral powers of ten are representable
// exactly; any other power returns NaN.
//
// Integral powers too large for an int64 exponent saturate to Inf, or to Zero
// if negative.
func Pow10Float(power float64) Double {
	if !isInteger(power) {
		return NaN
	}
	if power >= maxInt64Float {
		return Inf
	} else if power <= -maxInt64Float {
		return Zero
	}
	return Pow10(int64(power))
}

func (d Double) is10() bool {
	return d.exponent == 1 && isZero(d.mantissa-1)
}

// Pow returns d^power.
//
// Zero raised to a non-integral power is NaN, and zero raised to a negative
// integral power is Inf. Integral powers of exactly 10 are exact.
//
// Results are accurate to about 9-11 significant digits once the exponent
// no longer scales cleanly by power.
func (d Double) Pow(power float64) Double {
	powerIsInteger := isInteger(power)
	if d.mantissa == 0 {
		switch {
		case !powerIsInteger:
			return NaN
		case power < 0:
			return Inf
		case power == 0:
			return One
		}
		return Zero
	}
	if d.is10() && powerIsInteger {
		return Pow10Float(power)
	}
	return d.pow(power)
}

func (d Double) pow(power float64) Double {
	if !d.IsFinite() {
		return normalize(math.Pow(d.mantissa, power), 0)
	}

	// Fast path: if exponent*power is an integer and mantissa^power fits in a
	// float64 without overflowing or underflowing, the exponent scales
	// directly.
	scaled := float64(d.exponent) * power
	if isInteger(scaled) && isFinite(scaled) && math.Abs(scaled) < maxInt64Float {
		m := math.Pow(d.mantissa, power)
		if isFinite(m) && !isZero(m) {
			return normalize(m, int64(scaled))
		}
	}

	// Split exponent*power into an integer exponent and a residue that is
	// folded into the mantissa's logarithm.
	var exp float64
	if scaled >= 0 {
		exp = math.Floor(scaled)
	} else {
		exp = math.Ceil(scaled)
	}
	residue := scaled - exp
	m := math.Pow(10, power*math.Log10(d.mantissa)+residue)
	if isFinite(m) && !isZero(m) && math.Abs(exp) < maxInt64Float {
		return normalize(m, int64(exp))
	}

	if d.mantissa < 0 {
		if !isInteger(power) {
			return NaN
		}
		r := d.Abs().pow(power)
		if isOddInteger(power) {
			r = r.Neg()
		}
		return r
	}
	return pow10Log(power * d.AbsLog10())
}

// pow10Log returns 10^l for any l, splitting it into an integral exponent and
// a mantissa of 10^frac(l).
func pow10Log(l float64) Double {
	if l != l { // l != l == isnan
		return NaN
	}
	exp := math.Floor(l)
	if exp >= maxInt64Float {
		return Inf
	} else if exp <= -maxInt64Float {
		return Zero
	}
	return normalize(math.Pow(10, l-exp), int64(exp))
}

// Sqrt returns the square root of d. The square root of a negative value is
// NaN.
func (d Double) Sqrt() Double {
	if d.mantissa < 0 {
		return NaN
	}
	if !d.IsFinite() {
		return d
	}
	m := math.Sqrt(d.mantissa)
	if d.exponent%2 != 0 {
		m *= sqrt10
	}

	// Floor division: for an odd exponent 10^e == 10 * 10^(e-1).
	return normalize(m, d.exponent>>1)
}
