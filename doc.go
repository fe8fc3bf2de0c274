// Package specfun is a small arbitrary-precision special-functions toolkit:
// classical orthogonal polynomials, the Riemann zeta function and the Gauss
// quadrature rules that connect them.
//
// 🚀 What is inside?
//
//	precision/  — decimal working-precision register with guard-digit
//	              elevation and guaranteed restore
//	orthopoly/  — Jacobi, Gegenbauer, Hermite, Laguerre, Chebyshev T/U:
//	              exact coefficients, evaluation in any Field, Clenshaw sums
//	zeta/       — ζ(s) for real s (Borwein, direct, Euler product,
//	              reflection), Apéry's constant, Γ, Bernoulli numbers
//	quadrature/ — Golub–Welsch Gauss rules from the polynomial recurrences
//
// ✨ Design notes
//
//   - Families are a closed enum backed by an immutable registry of pure
//     seed/step generators; nothing is registered at runtime.
//   - Algorithm choice is an ordered rule table, first match wins, so the
//     closed forms shadow the general recurrence.
//   - Precision is an explicit *precision.Context, never a global; every
//     elevation is undone on every exit path.
//   - Libraries never print. Pass a logr.Logger with WithLogger for V(1)
//     traces.
//
// Quick example:
//
//	pc, _ := precision.New(15)
//	v, _ := zeta.Zeta(pc, decimal.New(2, 0))   // 1.64493406684823
//	t, _ := orthopoly.OrthoT(orthopoly.Float64{}, 5, 0.5) // 0.5
//
// See examples/ for runnable programs.
package specfun
