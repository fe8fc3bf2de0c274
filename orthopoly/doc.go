// Package orthopoly evaluates the classical orthogonal polynomial families,
// symbolically (exact coefficient vectors) and numerically (at a point), and
// sums weighted series of them with the Clenshaw–Smith recurrence.
//
// 🚀 Families
//
//	Jacobi P_n^(a,b) (Legendre = Jacobi(0,0)), Gegenbauer C_n^(a), Hermite H_n,
//	Laguerre L_n^(a), Chebyshev T_n ("Tscheb1") and U_n ("Tscheb2").
//
//	Every family is a fixed registry entry with two pure generators:
//	  seed      (A, B)     P_1 = A + Bx
//	  step(n)   (A, B, C)  P_n = (A + Bx)·P_{n-1} + C·P_{n-2},  n ≥ 2
//
// ✨ Key features:
//   - Coeffs: exact *big.Rat coefficient vectors, with closed-form fast paths
//     (Legendre, Hermite, Laguerre, Chebyshev) that agree exactly with the
//     general recurrence; dispatched by an ordered rule table.
//   - EvaluateAt / OrthoP…OrthoU: generic over a Field (Rational, Float64,
//     Complex128, Decimal). Exact fields go through coefficients + Horner,
//     inexact ones through an O(n) scalar recurrence.
//   - SumSeries / OrthoPSum…OrthoUSum: Σ c_k P_k(x) in O(N); SumCoeffs returns
//     the same series as exact monomial coefficients.
//
// ⚙️ Usage:
//
//	v, err := orthopoly.OrthoT(orthopoly.Float64{}, 5, 0.3)
//	c, err := orthopoly.Coeffs(orthopoly.Hermite, 3, nil) // [0 -12 0 8]
//
// Errors:
//   - ErrDomain        — negative order or parameter outside the family domain.
//   - ErrUnknownFamily — unregistered family tag or name.
//   - ErrNoMatchingRule — internal dispatch gap (programming error).
//
// Concurrency: all functions are pure; the registry is immutable. A Decimal
// field reads its precision.Context, which must not be shared across
// goroutines.
package orthopoly
