package bigdouble

import (
	"math"
)

// Add returns d+n.
//
// When the exponents are more than 17 apart the smaller operand cannot
// affect the result and the larger one is returned unchanged. Otherwise both
// mantissas are scaled up by 10^14 and the sum rounded to an integer before
// normalizing, which keeps sums of values that were integral before scaling
// (299 + 1.8e19, say) from picking up stray low digits.
func (d Double) Add(n Double) Double {
	if d.mantissa == 0 {
		return n
	} else if n.mantissa == 0 {
		return d
	}
	if !d.IsFinite() || !n.IsFinite() {
		return normalize(d.mantissa+n.mantissa, 0)
	}

	bigger, smaller := n, d
	if d.exponent > n.exponent {
		bigger, smaller = d, n
	}
	// bigger.exponent >= smaller.exponent, so the gap always fits a uint64
	// even when the int64 subtraction wraps:
	if uint64(bigger.exponent-smaller.exponent) > maxSignificantDigits {
		return bigger
	}

	m := math.Round(addScaleMul*bigger.mantissa +
		addScaleMul*smaller.mantissa*pow10(smaller.exponent-bigger.exponent))
	return normalize(m, bigger.exponent-addScale)
}

// Sub returns d-n.
func (d Double) Sub(n Double) Double {
	return d.Add(n.Neg())
}

// Mul returns d*n.
func (d Double) Mul(n Double) Double {
	return normalize(d.mantissa*n.mantissa, d.exponent+n.exponent)
}

// Recip returns 1/d. The reciprocal of zero is Inf.
func (d Double) Recip() Double {
	if d.mantissa == 0 {
		return Inf
	}
	return normalize(1/d.mantissa, -d.exponent)
}

// Quo returns d/n.
func (d Double) Quo(n Double) Double {
	return d.Mul(n.Recip())
}
