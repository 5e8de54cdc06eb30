package bigdouble

import "math"

//go:generate go run ./misc/genpowers -out pow10tab.go

const (
	// maxSignificantDigits is the number of decimal digits a float64 can
	// carry. Addends further apart than this are absorbed.
	maxSignificantDigits = 17

	// expMin and expMax bound pow10tab. expMin is also the sentinel exponent
	// carried by NaN and Inf.
	expMin = -307
	expMax = 308

	// addScale is the power of ten both mantissas are raised by before an
	// addition is rounded back to an integer.
	addScale    = 14
	addScaleMul = 1e14

	// tolerance is the absolute mantissa difference under which Equal
	// considers two values equal.
	tolerance = 1e-18

	// integerEpsilon is the relative distance from a whole number under which
	// IsInteger still reports true.
	integerEpsilon = 1e-15

	smallestNormal = 0x1p-1022 // 2.2250738585072014e-308

	maxInt64      = 1<<63 - 1
	maxInt64Float = float64(maxInt64) // 1 << 63

	log2Of10 = 3.32192809488736234787
	lnOf10   = 2.30258509299404568402
	sqrt10   = 3.1622776601683795
)

var (
	Zero = Double{}
	One  = Double{mantissa: 1}

	// NaN and Inf carry the sentinel exponent expMin. Use IsNaN and IsInf
	// rather than inspecting Exponent.
	NaN = Double{mantissa: math.NaN(), exponent: expMin}
	Inf = Double{mantissa: math.Inf(1), exponent: expMin}

	// E is Euler's number.
	E = Double{mantissa: math.E}
)
