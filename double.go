package bigdouble

import (
	"math"
)

// Double is a floating point number of the form mantissa * 10^exponent.
//
// The mantissa is a float64 kept in [1, 10) (or exactly 0 with a 0 exponent)
// and the exponent is an int64, so a Double can represent values far outside
// the float64 range while keeping float64 precision.
//
// Double is a value type; all operations return new values. The zero value is
// Zero.
type Double struct {
	mantissa float64
	exponent int64
}

// New creates a Double from a mantissa and exponent, normalizing the result so
// the mantissa lies in [1, 10).
func New(mantissa float64, exponent int64) Double {
	return normalize(mantissa, exponent)
}

func DoubleFromInt64(v int64) Double { return normalize(float64(v), 0) }
func DoubleFromInt(v int) Double     { return normalize(float64(v), 0) }

// DoubleFromFloat64 creates a Double from a float64. NaN and ±Inf map to the
// NaN and Inf sentinels; subnormal values are treated as 0.
func DoubleFromFloat64(f float64) Double { return normalize(f, 0) }

// Pow10 returns 10^power. The result is exact.
func Pow10(power int64) Double { return Double{mantissa: 1, exponent: power} }

// normalize rescales (m, e) so 1 <= |m| < 10. All arithmetic results pass
// through here.
func normalize(m float64, e int64) Double {
	abs := math.Abs(m)
	if abs >= 1 && abs < 10 {
		return Double{mantissa: m, exponent: e}
	}
	if m != m { // m != m == isnan
		return NaN
	}
	if math.IsInf(m, 0) {
		return Double{mantissa: m, exponent: expMin}
	}
	if abs < smallestNormal {
		return Double{}
	}

	shift := int64(math.Floor(math.Log10(abs)))
	m = scale10(m, shift)
	e += shift

	// Log10 can round across an integer boundary for values adjacent to a
	// power of ten:
	if abs = math.Abs(m); abs >= 10 {
		m, e = m/10, e+1
	} else if abs < 1 {
		m, e = m*10, e-1
	}
	return Double{mantissa: m, exponent: e}
}

// Raw returns the mantissa and exponent of d.
func (d Double) Raw() (mantissa float64, exponent int64) { return d.mantissa, d.exponent }

func (d Double) Mantissa() float64 { return d.mantissa }
func (d Double) Exponent() int64   { return d.exponent }

func (d Double) IsZero() bool { return d.mantissa == 0 }
func (d Double) IsNaN() bool  { return d.mantissa != d.mantissa }

// IsInf reports whether d is an infinity, according to sign.
// If sign > 0, IsInf reports whether d is positive infinity.
// If sign < 0, IsInf reports whether d is negative infinity.
// If sign == 0, IsInf reports whether d is either infinity.
func (d Double) IsInf(sign int) bool { return math.IsInf(d.mantissa, sign) }

// IsFinite reports whether d is neither NaN nor an infinity.
func (d Double) IsFinite() bool { return isFinite(d.mantissa) }

// IsInteger reports whether d has no fractional part, to within float64
// precision. Any finite value with an exponent of 17 or more is an integer as
// far as a float64 mantissa can tell.
func (d Double) IsInteger() bool {
	switch {
	case !d.IsFinite():
		return false
	case d.exponent < 0:
		return d.mantissa == 0
	case d.exponent >= maxSignificantDigits:
		return true
	}
	f := d.mantissa * pow10(d.exponent)
	return math.Abs(f-math.Round(f)) <= math.Abs(f)*integerEpsilon
}

// Sign returns -1 if d < 0, 1 if d > 0 and 0 if d is zero or NaN.
func (d Double) Sign() int {
	if d.mantissa < 0 {
		return -1
	} else if d.mantissa > 0 {
		return 1
	}
	return 0
}

func (d Double) Abs() Double {
	return Double{mantissa: math.Abs(d.mantissa), exponent: d.exponent}
}

func (d Double) Neg() Double {
	if d.mantissa == 0 {
		return d
	}
	return Double{mantissa: -d.mantissa, exponent: d.exponent}
}

// AsFloat64 converts d to the nearest float64. Values too large for a float64
// become ±Inf; values too small become 0.
func (d Double) AsFloat64() float64 {
	if d.mantissa == 0 {
		return 0
	}
	return unscale10(d.mantissa, d.exponent)
}
