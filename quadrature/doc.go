// Package quadrature builds Gauss quadrature rules for the classical
// orthogonal polynomial families of package orthopoly.
//
// 🚀 What is inside?
//
//	Gauss(family, n, params)  n nodes and weights, exact for degree ≤ 2n-1
//	EigenSym(n, a, tol, max)  cyclic-pivot Jacobi eigen solver (flat slices)
//
// ✨ Method (Golub–Welsch)
//
// The family's three-term recurrence, taken from the orthopoly registry,
// gives the monic recurrence coefficients α_k, β_k exactly. The symmetric
// tridiagonal Jacobi matrix with α on the diagonal and √β beside it has the
// Gauss nodes as eigenvalues; each weight is μ0·v_0² where v is the unit
// eigenvector and μ0 the total mass of the weight function.
//
//	Jacobi(a,b)   (1-x)^a (1+x)^b on [-1,1]
//	Gegenbauer(a) (1-x²)^(a-1/2) on [-1,1], a ≠ 0
//	Hermite       e^(-x²) on ℝ
//	Laguerre(a)   x^a e^(-x) on [0,∞)
//	Tscheb1/2     (1-x²)^(∓1/2) on [-1,1]
//
// ⚙️ Usage:
//
//	r, err := quadrature.Gauss(orthopoly.Hermite, 10, nil)
//	v := r.Integrate(math.Cos) // ≈ √π·e^(-1/4)
//
// Errors: ErrDomain, ErrEigenFailed, ErrAsymmetry, orthopoly.ErrUnknownFamily.
package quadrature
