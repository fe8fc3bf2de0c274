package orthopoly

import "math/big"

// Horner folds an ascending-power coefficient sequence into its value at x:
//
//	result = c[last]; for i = last-1 downto 0: result = c[i] + x·result
//
// Empty coeffs yield the field's zero; a single coefficient is returned as
// is (it may alias coeffs[0]). No rounding is introduced beyond the field's
// own Add/Mul.
//
// Complexity: O(len(coeffs)) multiplications and additions.
func Horner[T any](f Field[T], coeffs []T, x T) T {
	n := len(coeffs)
	if n == 0 {
		return f.FromRat(new(big.Rat))
	}
	result := coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		result = f.Add(coeffs[i], f.Mul(x, result))
	}

	return result
}

// HornerRat evaluates exact rational coefficients at a point of field f,
// lifting each coefficient with f.FromRat.
func HornerRat[T any](f Field[T], coeffs []*big.Rat, x T) T {
	n := len(coeffs)
	if n == 0 {
		return f.FromRat(new(big.Rat))
	}
	result := f.FromRat(coeffs[n-1])
	for i := n - 2; i >= 0; i-- {
		result = f.Add(f.FromRat(coeffs[i]), f.Mul(x, result))
	}

	return result
}

// EvaluateHornerScheme is the exact rational Horner evaluation.
func EvaluateHornerScheme(coeffs []*big.Rat, x *big.Rat) *big.Rat {
	return Horner[*big.Rat](Rational{}, coeffs, x)
}
