package orthopoly

import "math/big"

// stepTriple caches one order's (A, B, C).
type stepTriple struct{ a, b, c *big.Rat }

// SumSeries returns Σ_{k=0}^{N} c[k]·P_k(x) without forming any P_k, using
// the Clenshaw–Smith backward recurrence:
//
//	X_{N+1} = X_{N+2} = 0
//	X_k     = c[k] + (A_{k+1} + B_{k+1}x)·X_{k+1} + C_{k+2}·X_{k+2}
//	result  = X_0
//
// where (A_m, B_m, C_m) = step(m) for m ≥ 2 and the k = 0 linear factor
// comes from seed (the step at order 1 is undefined).
//
// An empty series sums to zero. Each step triple is computed once.
//
// Complexity: O(N) time, O(1) extra space.
func SumSeries[T any](fl Field[T], f Family, c []T, params []*big.Rat, x T, opts ...Option) (T, error) {
	o := gatherOptions(opts...)
	v, err := sumSeries(fl, f, c, params, x, o)
	if err != nil {
		var zero T

		return zero, polyErrorf(opSumSeries, err)
	}

	return v, nil
}

func sumSeries[T any](fl Field[T], f Family, c []T, params []*big.Rat, x T, o Options) (T, error) {
	var zero T
	if isNil(x) {
		return zero, ErrDomain
	}
	for _, ck := range c {
		if isNil(ck) {
			return zero, ErrDomain
		}
	}
	r, err := lookup(f, params)
	if err != nil {
		return zero, err
	}
	N := len(c) - 1
	if N < 0 {
		return fl.FromRat(new(big.Rat)), nil
	}
	o.logger.V(1).Info("clenshaw", "family", f.String(), "terms", N+1)

	hi, err := triple(r, N+2, params) // order k+2
	if err != nil {
		return zero, err
	}
	var (
		x1    = fl.FromRat(new(big.Rat)) // X_{k+1}
		x2    = fl.FromRat(new(big.Rat)) // X_{k+2}
		xk    T
		lo    stepTriple // order k+1
		alpha T
	)
	for k := N; k >= 0; k-- {
		if k == 0 {
			sa, sb := r.seed(params)
			lo = stepTriple{a: sa, b: sb}
		} else if lo, err = triple(r, k+1, params); err != nil {
			return zero, err
		}
		alpha = fl.Add(fl.FromRat(lo.a), fl.Mul(x, fl.FromRat(lo.b)))
		xk = fl.Add(c[k], fl.Add(fl.Mul(alpha, x1), fl.Mul(fl.FromRat(hi.c), x2)))
		x1, x2 = xk, x1
		hi = lo
	}

	return x1, nil
}

// SumCoeffs returns the exact monomial coefficients of Σ c[k]·P_k(x).
// It runs the Clenshaw–Smith recurrence over polynomials, so X_k are
// coefficient vectors and (A + Bx)·X is a scale-and-shift.
//
// The result has max(len(c), 1) entries; an empty series is {0}.
//
// Errors: ErrUnknownFamily, ErrArity, ErrDomain.
//
// Complexity: O(N²) rational operations, O(N) memory.
func SumCoeffs(f Family, c []*big.Rat, params []*big.Rat, opts ...Option) ([]*big.Rat, error) {
	o := gatherOptions(opts...)
	out, err := sumCoeffs(f, c, params, o)
	if err != nil {
		return nil, polyErrorf(opSumCoeffs, err)
	}

	return out, nil
}

func sumCoeffs(f Family, c []*big.Rat, params []*big.Rat, o Options) ([]*big.Rat, error) {
	r, err := lookup(f, params)
	if err != nil {
		return nil, err
	}
	N := len(c) - 1
	if N < 0 {
		return []*big.Rat{new(big.Rat)}, nil
	}
	for _, ck := range c {
		if ck == nil {
			return nil, ErrDomain
		}
	}
	o.logger.V(1).Info("clenshaw coefficients", "family", f.String(), "terms", N+1)

	hi, err := triple(r, N+2, params)
	if err != nil {
		return nil, err
	}
	var (
		x1  = zeroVector(N + 1) // X_{k+1}
		x2  = zeroVector(N + 1) // X_{k+2}
		xk  = zeroVector(N + 1) // scratch, becomes X_k
		lo  stepTriple
		tmp = new(big.Rat)
		j   int
	)
	for k := N; k >= 0; k-- {
		if k == 0 {
			sa, sb := r.seed(params)
			lo = stepTriple{a: sa, b: sb}
		} else if lo, err = triple(r, k+1, params); err != nil {
			return nil, err
		}
		// X_k has degree N-k; X_{k+1} has degree N-k-1.
		for j = 0; j <= N-k; j++ {
			xk[j].Mul(lo.a, x1[j])
			tmp.Mul(hi.c, x2[j])
			xk[j].Add(xk[j], tmp)
			if j > 0 {
				tmp.Mul(lo.b, x1[j-1])
				xk[j].Add(xk[j], tmp)
			}
		}
		xk[0].Add(xk[0], c[k])
		x1, x2, xk = xk, x1, x2
		hi = lo
	}

	return x1, nil
}

// triple fetches step(m) as a stepTriple.
func triple(r *recurrence, m int, params []*big.Rat) (stepTriple, error) {
	a, b, c, err := r.step(int64(m), params)
	if err != nil {
		return stepTriple{}, err
	}

	return stepTriple{a: a, b: b, c: c}, nil
}
