package orthopoly

import (
	"fmt"
	"math/big"
)

// Caller-facing evaluators. Each validates the order and the family's
// parameter domain, then delegates to EvaluateAt / SumSeries.
//
//	OrthoP(n, x)          Legendre P_n          OrthoP(n, x, a, b)  Jacobi P_n^(a,b), a,b > -1
//	OrthoG(n, a, x)       Gegenbauer C_n^(a), a > -1/2
//	OrthoH(n, x)          Hermite H_n
//	OrthoL(n, a, x)       Laguerre L_n^(a), a > -1
//	OrthoT(n, x)          Chebyshev T_n
//	OrthoU(n, x)          Chebyshev U_n
//
// The *Sum variants take the series weights c[0..N] instead of the order.

var (
	ratMinusOne  = big.NewRat(-1, 1)
	ratMinusHalf = big.NewRat(-1, 2)
)

// OrthoP evaluates the Legendre polynomial P_n(x), or the Jacobi polynomial
// P_n^(a,b)(x) when ab holds exactly two parameters a, b > -1.
func OrthoP[T any](fl Field[T], n int, x T, ab ...*big.Rat) (T, error) {
	p, err := jacobiParams("OrthoP", ab)
	if err != nil {
		var zero T

		return zero, err
	}

	return guardedEval(fl, "OrthoP", Jacobi, n, p, x)
}

// OrthoG evaluates the Gegenbauer polynomial C_n^(a)(x), a > -1/2.
func OrthoG[T any](fl Field[T], n int, a *big.Rat, x T) (T, error) {
	if err := above("OrthoG", a, ratMinusHalf); err != nil {
		var zero T

		return zero, err
	}

	return guardedEval(fl, "OrthoG", Gegenbauer, n, []*big.Rat{a}, x)
}

// OrthoH evaluates the Hermite polynomial H_n(x).
func OrthoH[T any](fl Field[T], n int, x T) (T, error) {
	return guardedEval(fl, "OrthoH", Hermite, n, nil, x)
}

// OrthoL evaluates the generalised Laguerre polynomial L_n^(a)(x), a > -1.
func OrthoL[T any](fl Field[T], n int, a *big.Rat, x T) (T, error) {
	if err := above("OrthoL", a, ratMinusOne); err != nil {
		var zero T

		return zero, err
	}

	return guardedEval(fl, "OrthoL", Laguerre, n, []*big.Rat{a}, x)
}

// OrthoT evaluates the Chebyshev polynomial of the first kind T_n(x).
func OrthoT[T any](fl Field[T], n int, x T) (T, error) {
	return guardedEval(fl, "OrthoT", ChebyshevT, n, nil, x)
}

// OrthoU evaluates the Chebyshev polynomial of the second kind U_n(x).
func OrthoU[T any](fl Field[T], n int, x T) (T, error) {
	return guardedEval(fl, "OrthoU", ChebyshevU, n, nil, x)
}

// OrthoPSum evaluates Σ c[k]·P_k(x) for Legendre, or Jacobi when ab = (a, b).
func OrthoPSum[T any](fl Field[T], c []T, x T, ab ...*big.Rat) (T, error) {
	p, err := jacobiParams("OrthoPSum", ab)
	if err != nil {
		var zero T

		return zero, err
	}

	return guardedSum(fl, "OrthoPSum", Jacobi, c, p, x)
}

// OrthoGSum evaluates Σ c[k]·C_k^(a)(x), a > -1/2.
func OrthoGSum[T any](fl Field[T], c []T, a *big.Rat, x T) (T, error) {
	if err := above("OrthoGSum", a, ratMinusHalf); err != nil {
		var zero T

		return zero, err
	}

	return guardedSum(fl, "OrthoGSum", Gegenbauer, c, []*big.Rat{a}, x)
}

// OrthoHSum evaluates Σ c[k]·H_k(x).
func OrthoHSum[T any](fl Field[T], c []T, x T) (T, error) {
	return guardedSum(fl, "OrthoHSum", Hermite, c, nil, x)
}

// OrthoLSum evaluates Σ c[k]·L_k^(a)(x), a > -1.
func OrthoLSum[T any](fl Field[T], c []T, a *big.Rat, x T) (T, error) {
	if err := above("OrthoLSum", a, ratMinusOne); err != nil {
		var zero T

		return zero, err
	}

	return guardedSum(fl, "OrthoLSum", Laguerre, c, []*big.Rat{a}, x)
}

// OrthoTSum evaluates Σ c[k]·T_k(x).
func OrthoTSum[T any](fl Field[T], c []T, x T) (T, error) {
	return guardedSum(fl, "OrthoTSum", ChebyshevT, c, nil, x)
}

// OrthoUSum evaluates Σ c[k]·U_k(x).
func OrthoUSum[T any](fl Field[T], c []T, x T) (T, error) {
	return guardedSum(fl, "OrthoUSum", ChebyshevU, c, nil, x)
}

// jacobiParams expands the optional (a, b) pair; none means Legendre.
func jacobiParams(op string, ab []*big.Rat) ([]*big.Rat, error) {
	switch len(ab) {
	case 0:
		return []*big.Rat{new(big.Rat), new(big.Rat)}, nil
	case 2:
		if err := above(op, ab[0], ratMinusOne); err != nil {
			return nil, err
		}
		if err := above(op, ab[1], ratMinusOne); err != nil {
			return nil, err
		}

		return ab, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrArity)
}

// above enforces v > lo.
func above(op string, v, lo *big.Rat) error {
	if v == nil || v.Cmp(lo) <= 0 {
		return fmt.Errorf("%s: parameter must be > %s: %w", op, lo.RatString(), ErrDomain)
	}

	return nil
}

func guardedEval[T any](fl Field[T], op string, f Family, n int, p []*big.Rat, x T) (T, error) {
	if n < 0 {
		var zero T

		return zero, fmt.Errorf("%s: order %d: %w", op, n, ErrDomain)
	}
	v, err := evaluateAt(fl, f, n, p, x, defaultOptions())
	if err != nil {
		return v, polyErrorf(op, err)
	}

	return v, nil
}

func guardedSum[T any](fl Field[T], op string, f Family, c []T, p []*big.Rat, x T) (T, error) {
	v, err := sumSeries(fl, f, c, p, x, defaultOptions())
	if err != nil {
		return v, polyErrorf(op, err)
	}

	return v, nil
}
