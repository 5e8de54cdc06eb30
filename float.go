package bigdouble

import (
	"math"
)

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// isZero reports whether f is too small to be a normal float64. Subnormals
// count as zero.
func isZero(f float64) bool {
	return math.Abs(f) < smallestNormal
}

func isInteger(f float64) bool {
	return isZero(math.Mod(math.Abs(f), 1))
}

func isOddInteger(f float64) bool {
	return isInteger(f) && math.Abs(math.Mod(f, 2)) == 1
}

// pow10 returns 10^e from pow10tab. e must be in [expMin, expMax].
func pow10(e int64) float64 {
	return pow10tab[e-expMin]
}

// scale10 returns m / 10^e. e may fall below expMin, in which case the
// division is split across two table entries; this only happens for normal
// float64 values under 1e-307.
func scale10(m float64, e int64) float64 {
	if e < expMin {
		return m / pow10(expMin) / pow10(e-expMin)
	}
	return m / pow10(e)
}

// unscale10 returns m * 10^e, saturating to ±Inf or 0 when e is too far
// outside the table for any float64 to hold the result.
func unscale10(m float64, e int64) float64 {
	switch {
	case e > expMax:
		if e > 2*expMax {
			return m * math.Inf(1)
		}
		return m * pow10(expMax) * pow10(e-expMax)
	case e < expMin:
		if e < 2*expMin {
			return m * 0
		}
		return m * pow10(expMin) * pow10(e-expMin)
	}
	return m * pow10(e)
}
