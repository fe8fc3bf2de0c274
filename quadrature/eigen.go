package quadrature

import (
	"fmt"
	"math"
)

// EigenSym diagonalises the symmetric n×n matrix a (row-major, len n²) with
// classical Jacobi rotations.
//
// Stages:
//   - Stage 1: validate shape and symmetry, copy a, start Q = I.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and apply the rotation that zeroes it, accumulating it into Q.
//
// Returns:
//   - values: eigenvalues (unsorted, diagonal of the rotated matrix).
//   - vectors: Q row-major; column j is the unit eigenvector of values[j].
//
// Errors:
//   - ErrDomain (len(a) ≠ n², n < 1), ErrAsymmetry,
//     ErrEigenFailed (max off-diagonal ≥ tol·max|a| after maxRot rotations).
//
// Determinism: fixed pivot scan and update order give reproducible output.
//
// Complexity: O(n²) per pivot search, O(n) per rotation update; O(n²)
// memory.
func EigenSym(n int, a []float64, tol float64, maxRot int) (values, vectors []float64, err error) {
	if n < 1 || len(a) != n*n {
		return nil, nil, quadErrorf(opEigen, ErrDomain)
	}
	var (
		i, j  int
		scale float64 // max |a[i,j]|
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			scale = math.Max(scale, math.Abs(a[i*n+j]))
			if j > i && a[i*n+j] != a[j*n+i] {
				return nil, nil, quadErrorf(opEigen, fmt.Errorf("a[%d,%d] ≠ a[%d,%d]: %w", i, j, j, i, ErrAsymmetry))
			}
		}
	}
	limit := tol * scale

	A := append([]float64(nil), a...) // working copy
	Q := make([]float64, n*n)
	for i = 0; i < n; i++ {
		Q[i*n+i] = 1
	}

	var (
		rot            int
		p, q           int
		maxOff, off    float64
		app, aqq, apq  float64
		aip, aiq       float64
		qip, qiq       float64
		theta, t, c, s float64
	)
	for rot = 0; rot <= maxRot; rot++ {
		// pivot: largest |A[p,q]|, p < q
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = math.Abs(A[i*n+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff <= limit {
			break
		}
		if rot == maxRot {
			return nil, nil, quadErrorf(opEigen, fmt.Errorf("off-diagonal %.3g after %d rotations: %w", maxOff, rot, ErrEigenFailed))
		}

		app, aqq, apq = A[p*n+p], A[q*n+q], A[p*n+q]
		// θ = (aqq−app)/(2·apq), t = sign(θ)/(|θ|+√(θ²+1))
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = A[i*n+p], A[i*n+q]
			A[i*n+p] = c*aip - s*aiq
			A[p*n+i] = A[i*n+p]
			A[i*n+q] = s*aip + c*aiq
			A[q*n+i] = A[i*n+q]
		}
		A[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A[p*n+q], A[q*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip, qiq = Q[i*n+p], Q[i*n+q]
			Q[i*n+p] = c*qip - s*qiq
			Q[i*n+q] = s*qip + c*qiq
		}
	}

	values = make([]float64, n)
	for i = 0; i < n; i++ {
		values[i] = A[i*n+i]
	}

	return values, Q, nil
}
