// Package precision holds the working-precision register shared by every
// arbitrary-precision evaluation in specfun.
//
// What is a precision context?
//
//	A Context carries the number of significant decimal digits that numeric
//	evaluations must deliver. Algorithms that need extra accuracy for their
//	intermediate steps temporarily raise the register ("guard digits") and
//	restore it before returning, on every exit path:
//
//	  restore := pc.Elevate(5)
//	  defer restore()
//
// Key properties:
//   - Scoped elevation: Elevate returns a restore func; restores are idempotent
//     and unwind nested elevations in LIFO order.
//   - No hidden global: callers own their Context and thread it explicitly.
//   - Bridges to github.com/ericlagergren/decimal through Decimal() and Round().
//
// Concurrency:
//
//	A Context is NOT goroutine-safe. Parallel callers must each use their own
//	instance (see Clone) or serialize access.
package precision
