package bigdouble

// Cmp compares d and n and returns:
//
//	-1 if d <  n
//	 0 if d == n
//	+1 if d >  n
//
// Values of different sign are ordered by sign, so any negative value is less
// than Zero and any positive value. Within a sign, magnitude is ordered by
// exponent and then mantissa. Infinities order by their mantissa. NaN has
// sign 0 and compares equal to Zero.
//
// Unlike Equal, Cmp is exact: it only returns 0 for identical values or NaN.
func (d Double) Cmp(n Double) int {
	if d.IsInf(0) || n.IsInf(0) {
		return cmpFloat(d.mantissa, n.mantissa)
	}

	ds, ns := d.Sign(), n.Sign()
	if ds != ns {
		if ds < ns {
			return -1
		}
		return 1
	}
	if ds == 0 {
		return 0
	}

	if d.exponent > n.exponent {
		return ds
	} else if d.exponent < n.exponent {
		return -ds
	}
	return cmpFloat(d.mantissa, n.mantissa)
}

func cmpFloat(a, b float64) int {
	if a > b {
		return 1
	} else if a < b {
		return -1
	}
	return 0
}

// Equal reports whether d and n have the same exponent and mantissas that
// differ by less than 1e-18. It is approximate; use Cmp for exact ordering.
// NaN is never Equal to anything.
func (d Double) Equal(n Double) bool {
	if d == n {
		return true
	}
	diff := d.mantissa - n.mantissa
	return d.exponent == n.exponent && diff < tolerance && diff > -tolerance
}

func (d Double) GreaterThan(n Double) bool {
	return d.Cmp(n) > 0
}

func (d Double) GreaterOrEqualTo(n Double) bool {
	return d.Cmp(n) >= 0
}

func (d Double) LessThan(n Double) bool {
	return d.Cmp(n) < 0
}

func (d Double) LessOrEqualTo(n Double) bool {
	return d.Cmp(n) <= 0
}
