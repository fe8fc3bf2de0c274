package quadrature

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/specfun/orthopoly"
)

// Rule is an n-point Gauss rule: ∫ w(x)·g(x) dx ≈ Σ Weights[i]·g(Nodes[i]),
// exact for polynomials g of degree ≤ 2n-1. Nodes are ascending.
type Rule struct {
	Nodes   []float64
	Weights []float64
}

// Len reports the number of nodes.
func (r Rule) Len() int { return len(r.Nodes) }

// Integrate applies the rule to g.
func (r Rule) Integrate(g func(float64) float64) float64 {
	var sum float64
	for i, x := range r.Nodes {
		sum += r.Weights[i] * g(x)
	}

	return sum
}

// Gauss returns the n-point Gauss rule of the family's weight function by
// the Golub–Welsch method: the nodes are the eigenvalues of the symmetric
// tridiagonal Jacobi matrix built from the recurrence, the weights are
// μ0·v_0² from the first components of the unit eigenvectors.
//
// Errors: ErrDomain (n < 1, wrong parameters), orthopoly.ErrUnknownFamily,
// ErrEigenFailed.
//
// Complexity: O(n⁴) worst case for the rotation sweep, O(n²) memory.
func Gauss(f orthopoly.Family, n int, params []*big.Rat, opts ...Option) (Rule, error) {
	o := gatherOptions(opts...)
	if n < 1 {
		return Rule{}, quadErrorf(opGauss, ErrDomain)
	}
	if f < orthopoly.Jacobi || f > orthopoly.ChebyshevU {
		return Rule{}, quadErrorf(opGauss, orthopoly.ErrUnknownFamily)
	}
	if err := checkParams(f, params); err != nil {
		return Rule{}, quadErrorf(opGauss, err)
	}

	J, err := tridiagonal(f, n, params)
	if err != nil {
		return Rule{}, quadErrorf(opGauss, err)
	}
	vals, vecs, err := EigenSym(n, J, o.tol, o.rotationCap(n))
	if err != nil {
		return Rule{}, quadErrorf(opGauss, err)
	}
	m0 := mu0(f, params)
	o.logger.V(1).Info("gauss rule", "family", f.String(), "nodes", n, "mu0", m0)

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return vals[idx[a]] < vals[idx[b]] })

	r := Rule{Nodes: make([]float64, n), Weights: make([]float64, n)}
	for k, j := range idx {
		v0 := vecs[j] // row 0, column j
		r.Nodes[k] = vals[j]
		r.Weights[k] = m0 * v0 * v0
	}

	return r, nil
}
