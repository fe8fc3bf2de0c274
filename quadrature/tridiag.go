package quadrature

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/specfun/orthopoly"
)

var (
	ratMinusOne  = big.NewRat(-1, 1)
	ratMinusHalf = big.NewRat(-1, 2)
)

// checkParams enforces the parameter count and the weight-function domain.
func checkParams(f orthopoly.Family, params []*big.Rat) error {
	if len(params) != f.Arity() {
		return fmt.Errorf("%s takes %d parameters, got %d: %w", f, f.Arity(), len(params), ErrDomain)
	}
	for _, p := range params {
		if p == nil {
			return fmt.Errorf("nil parameter: %w", ErrDomain)
		}
	}
	switch f {
	case orthopoly.Jacobi:
		if params[0].Cmp(ratMinusOne) <= 0 || params[1].Cmp(ratMinusOne) <= 0 {
			return fmt.Errorf("Jacobi needs a, b > -1: %w", ErrDomain)
		}
	case orthopoly.Gegenbauer:
		// C_n^(0) vanishes identically for n ≥ 1
		if params[0].Cmp(ratMinusHalf) <= 0 || params[0].Sign() == 0 {
			return fmt.Errorf("Gegenbauer needs a > -1/2, a ≠ 0: %w", ErrDomain)
		}
	case orthopoly.Laguerre:
		if params[0].Cmp(ratMinusOne) <= 0 {
			return fmt.Errorf("Laguerre needs a > -1: %w", ErrDomain)
		}
	}

	return nil
}

// tridiagonal builds the n×n symmetric Jacobi matrix of the family from its
// three-term recurrence. With P_k = (A_k + B_k x)·P_{k-1} + C_k·P_{k-2} the
// monic polynomials satisfy p_k = (x - α_{k-1})·p_{k-1} - β_{k-1}·p_{k-2} with
//
//	α_{k-1} = -A_k / B_k
//	β_{k-1} = -C_k / (B_k·B_{k-1})
//
// and the matrix has α on the diagonal and √β on the off-diagonals.
// α and β are formed exactly and rounded once.
func tridiagonal(f orthopoly.Family, n int, params []*big.Rat) ([]float64, error) {
	J := make([]float64, n*n)
	var prevB *big.Rat
	for k := 1; k <= n; k++ {
		var a, b, c *big.Rat
		var err error
		if k == 1 {
			a, b, err = orthopoly.Seed(f, params)
		} else {
			a, b, c, err = orthopoly.Step(f, k, params)
		}
		if err != nil {
			return nil, liftDomain(err)
		}
		if b.Sign() == 0 {
			return nil, fmt.Errorf("degenerate recurrence at order %d: %w", k, ErrDomain)
		}

		alpha := new(big.Rat).Quo(a, b)
		alpha.Neg(alpha)
		J[(k-1)*n+(k-1)], _ = alpha.Float64()

		if k > 1 {
			beta := new(big.Rat).Mul(b, prevB)
			beta.Quo(c, beta)
			beta.Neg(beta)
			if beta.Sign() <= 0 {
				return nil, fmt.Errorf("non-positive β at order %d: %w", k, ErrDomain)
			}
			bf, _ := beta.Float64()
			off := math.Sqrt(bf)
			J[(k-2)*n+(k-1)] = off
			J[(k-1)*n+(k-2)] = off
		}
		prevB = b
	}

	return J, nil
}

// liftDomain marks orthopoly domain errors as quadrature domain errors too.
func liftDomain(err error) error {
	if errors.Is(err, orthopoly.ErrDomain) {
		return fmt.Errorf("%w: %w", ErrDomain, err)
	}

	return err
}

// mu0 is ∫ w(x) dx over the support of the family's weight function.
//
//	Jacobi      (1-x)^a (1+x)^b   2^(a+b+1) Γ(a+1) Γ(b+1) / Γ(a+b+2)
//	Gegenbauer  (1-x²)^(a-1/2)    √π Γ(a+1/2) / Γ(a+1)
//	Hermite     e^(-x²)           √π
//	Laguerre    x^a e^(-x)        Γ(a+1)
//	Tscheb1     (1-x²)^(-1/2)     π
//	Tscheb2     (1-x²)^(1/2)      π/2
func mu0(f orthopoly.Family, params []*big.Rat) float64 {
	lg := func(x float64) float64 {
		v, _ := math.Lgamma(x)

		return v
	}
	switch f {
	case orthopoly.Jacobi:
		a, _ := params[0].Float64()
		b, _ := params[1].Float64()

		return math.Exp((a+b+1)*math.Ln2 + lg(a+1) + lg(b+1) - lg(a+b+2))
	case orthopoly.Gegenbauer:
		a, _ := params[0].Float64()

		return math.Sqrt(math.Pi) * math.Exp(lg(a+0.5)-lg(a+1))
	case orthopoly.Hermite:
		return math.Sqrt(math.Pi)
	case orthopoly.Laguerre:
		a, _ := params[0].Float64()

		return math.Gamma(a + 1)
	case orthopoly.ChebyshevT:
		return math.Pi
	case orthopoly.ChebyshevU:
		return math.Pi / 2
	}

	return math.NaN()
}
