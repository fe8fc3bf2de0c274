// Package quadrature: sentinel error set.
// Every algorithm returns these sentinels, wrapped with an operation tag at
// the public boundary; callers match them with errors.Is.

package quadrature

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned for a node count below 1, a wrong number of family
	// parameters, or a parameter outside the family's weight domain
	// (Jacobi/Laguerre a ≤ -1, Gegenbauer a ≤ -1/2 or a = 0).
	ErrDomain = errors.New("quadrature: argument outside domain")

	// ErrEigenFailed signals that the Jacobi eigenvalue iteration did not
	// reduce the off-diagonal mass below tolerance within the rotation cap.
	ErrEigenFailed = errors.New("quadrature: eigenvalue iteration did not converge")

	// ErrAsymmetry signals a non-symmetric input to the eigen solver.
	ErrAsymmetry = errors.New("quadrature: matrix is not symmetric")
)

// Operation tags used when wrapping sentinels at the public boundary.
const (
	opGauss = "quadrature.Gauss"
	opEigen = "quadrature.EigenSym"
)

// Panic messages for nonsensical option values.
const (
	panicBadTolerance = "quadrature: WithTolerance: tolerance must be positive"
	panicBadRotations = "quadrature: WithMaxRotations: cap must be positive"
)

// quadErrorf tags err with the operation name; errors.Is still matches.
func quadErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
