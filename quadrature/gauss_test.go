package quadrature_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/specfun/orthopoly"
	"github.com/katalvlaran/specfun/quadrature"
)

const quadTol = 1e-12

func q(p, d int64) *big.Rat { return big.NewRat(p, d) }

// beta is the Euler beta function B(x, y).
func beta(x, y float64) float64 { return math.Gamma(x) * math.Gamma(y) / math.Gamma(x+y) }

func TestGauss_LegendreThreePoint(t *testing.T) {
	r, err := quadrature.Gauss(orthopoly.Jacobi, 3, []*big.Rat{q(0, 1), q(0, 1)})
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	x := math.Sqrt(0.6)
	wantNodes := []float64{-x, 0, x}
	wantWeights := []float64{5.0 / 9, 8.0 / 9, 5.0 / 9}
	for i := range wantNodes {
		assert.InDelta(t, wantNodes[i], r.Nodes[i], quadTol, "node %d", i)
		assert.InDelta(t, wantWeights[i], r.Weights[i], quadTol, "weight %d", i)
	}
}

func TestGauss_ChebyshevClosedForm(t *testing.T) {
	const n = 7
	r, err := quadrature.Gauss(orthopoly.ChebyshevT, n, nil)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		// ascending: x_i = -cos((2i+1)π/(2n))
		want := -math.Cos(float64(2*i+1) * math.Pi / (2 * n))
		assert.InDelta(t, want, r.Nodes[i], quadTol)
		assert.InDelta(t, math.Pi/n, r.Weights[i], quadTol)
	}
}

// TestGauss_PolynomialExactness: an n-point rule integrates x^k exactly for
// k ≤ 2n-1 against the family's weight.
func TestGauss_PolynomialExactness(t *testing.T) {
	const n = 6
	cases := []struct {
		name   string
		family orthopoly.Family
		params []*big.Rat
		moment func(k int) float64
	}{
		{"Legendre", orthopoly.Jacobi, []*big.Rat{q(0, 1), q(0, 1)}, func(k int) float64 {
			if k%2 == 1 {
				return 0
			}

			return 2 / float64(k+1)
		}},
		{"Jacobi(1/2,1/2)", orthopoly.Jacobi, []*big.Rat{q(1, 2), q(1, 2)}, func(k int) float64 {
			if k%2 == 1 {
				return 0
			}

			return beta(float64(k)/2+0.5, 1.5)
		}},
		{"Jacobi(1,0)", orthopoly.Jacobi, []*big.Rat{q(1, 1), q(0, 1)}, func(k int) float64 {
			// ∫ (1-x) x^k = ∫ x^k - ∫ x^(k+1)
			m := func(j int) float64 {
				if j%2 == 1 {
					return 0
				}

				return 2 / float64(j+1)
			}

			return m(k) - m(k+1)
		}},
		{"Gegenbauer(3/2)", orthopoly.Gegenbauer, []*big.Rat{q(3, 2)}, func(k int) float64 {
			if k%2 == 1 {
				return 0
			}

			return beta(float64(k)/2+0.5, 2)
		}},
		{"Gegenbauer(-1/4)", orthopoly.Gegenbauer, []*big.Rat{q(-1, 4)}, func(k int) float64 {
			if k%2 == 1 {
				return 0
			}

			return beta(float64(k)/2+0.5, 0.25)
		}},
		{"Hermite", orthopoly.Hermite, nil, func(k int) float64 {
			if k%2 == 1 {
				return 0
			}

			return math.Gamma(float64(k+1) / 2)
		}},
		{"Laguerre(0)", orthopoly.Laguerre, []*big.Rat{q(0, 1)}, func(k int) float64 {
			return math.Gamma(float64(k + 1))
		}},
		{"Laguerre(1/2)", orthopoly.Laguerre, []*big.Rat{q(1, 2)}, func(k int) float64 {
			return math.Gamma(float64(k) + 1.5)
		}},
		{"Tscheb1", orthopoly.ChebyshevT, nil, func(k int) float64 {
			if k%2 == 1 {
				return 0
			}

			return beta(float64(k)/2+0.5, 0.5)
		}},
		{"Tscheb2", orthopoly.ChebyshevU, nil, func(k int) float64 {
			if k%2 == 1 {
				return 0
			}

			return beta(float64(k)/2+0.5, 1.5)
		}},
	}
	for _, tc := range cases {
		r, err := quadrature.Gauss(tc.family, n, tc.params)
		require.NoError(t, err, tc.name)
		for k := 0; k <= 2*n-1; k++ {
			got := r.Integrate(func(x float64) float64 { return math.Pow(x, float64(k)) })
			want := tc.moment(k)
			assert.InDelta(t, want, got, quadTol*math.Max(1, math.Abs(want)), "%s k=%d", tc.name, k)
		}
	}
}

func TestGauss_Errors(t *testing.T) {
	cases := []struct {
		name   string
		family orthopoly.Family
		n      int
		params []*big.Rat
	}{
		{"zero nodes", orthopoly.Hermite, 0, nil},
		{"Jacobi a=-1", orthopoly.Jacobi, 3, []*big.Rat{q(-1, 1), q(0, 1)}},
		{"Jacobi arity", orthopoly.Jacobi, 3, []*big.Rat{q(0, 1)}},
		{"Gegenbauer a=0", orthopoly.Gegenbauer, 3, []*big.Rat{q(0, 1)}},
		{"Gegenbauer a=-1/2", orthopoly.Gegenbauer, 3, []*big.Rat{q(-1, 2)}},
		{"Laguerre a=-1", orthopoly.Laguerre, 3, []*big.Rat{q(-1, 1)}},
		{"Laguerre nil", orthopoly.Laguerre, 3, []*big.Rat{nil}},
		{"Hermite extra", orthopoly.Hermite, 3, []*big.Rat{q(1, 1)}},
	}
	for _, tc := range cases {
		_, err := quadrature.Gauss(tc.family, tc.n, tc.params)
		assert.ErrorIs(t, err, quadrature.ErrDomain, tc.name)
	}

	_, err := quadrature.Gauss(orthopoly.Family(99), 3, nil)
	assert.ErrorIs(t, err, orthopoly.ErrUnknownFamily)

	_, err = quadrature.Gauss(orthopoly.Hermite, 12, nil, quadrature.WithMaxRotations(1))
	assert.ErrorIs(t, err, quadrature.ErrEigenFailed)
}

func TestGauss_SinglePoint(t *testing.T) {
	r, err := quadrature.Gauss(orthopoly.Laguerre, 1, []*big.Rat{q(2, 1)}, quadrature.WithLogger(testr.New(t)))
	require.NoError(t, err)
	// α_0 = a+1, μ0 = Γ(a+1)
	assert.InDelta(t, 3, r.Nodes[0], quadTol)
	assert.InDelta(t, 2, r.Weights[0], quadTol)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { quadrature.WithTolerance(0) })
	assert.Panics(t, func() { quadrature.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { quadrature.WithMaxRotations(0) })
}
