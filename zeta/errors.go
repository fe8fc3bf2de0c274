// Package zeta: sentinel error set.
// Algorithms return these sentinels; the exported entry points wrap them with
// an operation tag. Callers match with errors.Is.

package zeta

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain indicates an argument the evaluator cannot accept: nil, NaN or
	// infinite s, or a forced algorithm that does not converge for s.
	ErrDomain = errors.New("zeta: argument outside domain")

	// ErrPole is returned at a pole: ζ at s = 1, Γ at a non-positive integer.
	ErrPole = errors.New("zeta: pole")

	// ErrConvergence is returned when a series would need more terms than the
	// configured iteration cap, or when a stagnation loop never settles.
	ErrConvergence = errors.New("zeta: series did not converge")

	// ErrNoMatchingRule signals a gap in the ordered dispatch table.
	// It is a programming error.
	ErrNoMatchingRule = errors.New("zeta: no matching rule")
)

// Operation tags used when wrapping sentinels at the public boundary.
const (
	opZeta      = "zeta.Zeta"
	opZeta3     = "zeta.Zeta3"
	opGamma     = "zeta.Gamma"
	opBernoulli = "zeta.Bernoulli"
)

// Panic messages for nonsensical option values.
const (
	panicNegativeGuard = "zeta: WithGuardDigits: guard must be non-negative"
	panicBadIterations = "zeta: WithMaxIterations: cap must be positive"
	panicBadAlgorithm  = "zeta: WithAlgorithm: unknown algorithm"
)

// zetaErrorf tags err with the operation name; errors.Is still matches.
func zetaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
