package orthopoly_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/specfun/orthopoly"
)

// ratEq compares rationals by value inside cmp.Diff.
var ratEq = cmp.Comparer(func(a, b *big.Rat) bool { return a.Cmp(b) == 0 })

// q is shorthand for the rational p/d.
func q(p, d int64) *big.Rat { return big.NewRat(p, d) }

// rats builds a rational vector from integers.
func rats(v ...int64) []*big.Rat {
	out := make([]*big.Rat, len(v))
	for i, x := range v {
		out[i] = big.NewRat(x, 1)
	}

	return out
}

// familyCase is one in-domain (family, params) pair exercised by the
// property tests.
type familyCase struct {
	name   string
	family orthopoly.Family
	params []*big.Rat
}

func familyCases() []familyCase {
	return []familyCase{
		{"Legendre", orthopoly.Jacobi, []*big.Rat{q(0, 1), q(0, 1)}},
		{"Jacobi(1/2,-1/3)", orthopoly.Jacobi, []*big.Rat{q(1, 2), q(-1, 3)}},
		{"Jacobi(2,3)", orthopoly.Jacobi, []*big.Rat{q(2, 1), q(3, 1)}},
		{"Gegenbauer(1/2)", orthopoly.Gegenbauer, []*big.Rat{q(1, 2)}},
		{"Gegenbauer(-1/4)", orthopoly.Gegenbauer, []*big.Rat{q(-1, 4)}},
		{"Gegenbauer(3)", orthopoly.Gegenbauer, []*big.Rat{q(3, 1)}},
		{"Hermite", orthopoly.Hermite, nil},
		{"Laguerre(0)", orthopoly.Laguerre, []*big.Rat{q(0, 1)}},
		{"Laguerre(1/2)", orthopoly.Laguerre, []*big.Rat{q(1, 2)}},
		{"Laguerre(-3/4)", orthopoly.Laguerre, []*big.Rat{q(-3, 4)}},
		{"Tscheb1", orthopoly.ChebyshevT, nil},
		{"Tscheb2", orthopoly.ChebyshevU, nil},
	}
}

// closeRel reports |got-want| ≤ tol·max(1,|want|).
func closeRel(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol*math.Max(1, math.Abs(want))
}

// exactAt evaluates P_n at the rational x through exact coefficients.
func exactAt(t *testing.T, f orthopoly.Family, n int, p []*big.Rat, x *big.Rat) *big.Rat {
	t.Helper()
	c, err := orthopoly.Coeffs(f, n, p)
	if err != nil {
		t.Fatalf("Coeffs(%v,%d): %v", f, n, err)
	}

	return orthopoly.EvaluateHornerScheme(c, x)
}
