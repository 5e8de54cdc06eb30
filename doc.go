/*
Package bigdouble provides Double, a floating point type with a float64
mantissa and an int64 base 10 exponent.

A Double holds mantissa * 10^exponent with the mantissa normalized into
[1, 10). It can represent values far beyond the float64 range (up to around
10^9223372036854775807) while keeping float64 precision, about 15-17
significant digits, in a fixed 16 bytes. It is intended for things like
incremental games and growth simulations, where numbers get astronomically
large but arbitrary precision would cost too much.

Double is a value type; all operations return new values.

Simple example:

	d1 := bigdouble.New(5, 300)
	d2 := bigdouble.New(2, 300)
	fmt.Println(d1.Mul(d2).Raw())
	// Output: 1 601

Doubles can be created from a variety of sources:

	New(mantissa float64, exponent int64) Double
	DoubleFromInt64(v int64) Double
	DoubleFromInt(v int) Double
	DoubleFromFloat64(f float64) Double
	Pow10(power int64) Double
	Pow10Float(power float64) Double

Invalid operations, such as the square root of a negative number, return the
NaN value rather than an error. NaN and Inf carry a reserved exponent of -307;
use IsNaN, IsInf and IsFinite to detect them.

Addition absorbs the smaller operand when the exponents are more than 17
apart, since it cannot change any digit a float64 mantissa can hold.

Equal is approximate (mantissas within 1e-18 with identical exponents). Cmp is
exact and sign-aware.

Pow is exact for integral powers of 10 and fast when exponent*power is an
integer, but falls back to a logarithmic method that is only reliable to
about 9-11 significant digits.
*/
package bigdouble
