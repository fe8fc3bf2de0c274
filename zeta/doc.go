// Package zeta evaluates the Riemann zeta function ζ(s) for real s at an
// arbitrary decimal precision, together with the primitives it is built on
// (Γ and the Bernoulli numbers).
//
// 🚀 What is inside?
//
//	Zeta(pc, s)   ζ(s) at pc's precision; exact at s = 0 and the trivial zeros
//	Zeta3(pc)     Apéry's constant by a dedicated fast series
//	Gamma(pc, x)  Γ(x), Stirling series with exact Bernoulli corrections
//	Bernoulli(n)  exact B_n as *big.Rat
//
// ✨ Dispatch
//
// An ordered rule table, first match wins:
//
//	s = 0            → -1/2
//	s = 1            → ErrPole
//	s = -2, -4, …    → 0
//	s < 1/2          → reflection through Γ(1-s)·ζ(1-s)
//	forced Euler     → Π over primes (WithAlgorithm(EulerProduct))
//	s ≥ threshold    → direct Σ i^-s (or forced Direct)
//	otherwise        → Borwein's alternating series
//
// threshold = 1 + p·ln10/(ln p + 0.1) for p working digits.
//
// ⚙️ Precision
//
// Every entry point raises the precision.Context by guard digits
// (DefaultGuardDigits, WithGuardDigits), computes, restores the register and
// rounds the result to the caller's digits. The restore also runs on error
// paths and inside the one-level reflection recursion. A Context must not be
// shared between goroutines; give each goroutine its own (precision.Context.Clone).
//
// Errors: ErrDomain, ErrPole, ErrConvergence, ErrNoMatchingRule.
package zeta
