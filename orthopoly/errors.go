// Package orthopoly: sentinel error set.
// Every algorithm returns these sentinels (possibly wrapped with an operation
// tag at the outer boundary); callers match them with errors.Is.

package orthopoly

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned when an order or family parameter lies outside the
	// family's validity domain (n < 0, a ≤ -1 for Jacobi/Laguerre, a ≤ -1/2 for
	// Gegenbauer, nil parameter). Rejected before any computation.
	ErrDomain = errors.New("orthopoly: argument outside domain")

	// ErrUnknownFamily indicates a family name or tag that is not registered.
	ErrUnknownFamily = errors.New("orthopoly: unknown polynomial family")

	// ErrNoMatchingRule signals an internal dispatch gap: no rule in an ordered
	// rule table accepted the arguments. It is a programming error.
	ErrNoMatchingRule = errors.New("orthopoly: no matching rule")
)

// ErrArity is a DomainError raised when the number of family parameters does
// not match the family (Jacobi 2, Gegenbauer/Laguerre 1, others 0).
var ErrArity = fmt.Errorf("%w: wrong number of family parameters", ErrDomain)

// Operation tags used when wrapping sentinels at the public boundary.
const (
	opCoeffs     = "orthopoly.Coeffs"
	opSumCoeffs  = "orthopoly.SumCoeffs"
	opEvaluateAt = "orthopoly.EvaluateAt"
	opSumSeries  = "orthopoly.SumSeries"
)

// polyErrorf tags err with the operation name; errors.Is still matches.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
