package orthopoly

import "math/big"

// EvaluateAt returns P_n(x) for the family f.
//
// Routing:
//   - exact fields (Rational): Coeffs followed by HornerRat, so the value is
//     the exact polynomial evaluated at x.
//   - inexact fields: the scalar recurrence
//     v0 = 1, v1 = A + xB, v_k = (A_k + xB_k)·v_{k-1} + C_k·v_{k-2},
//     O(n) work and O(1) extra memory.
//
// Errors: see Coeffs. Parameter domains are not checked here.
func EvaluateAt[T any](fl Field[T], f Family, n int, params []*big.Rat, x T, opts ...Option) (T, error) {
	o := gatherOptions(opts...)
	v, err := evaluateAt(fl, f, n, params, x, o)
	if err != nil {
		var zero T

		return zero, polyErrorf(opEvaluateAt, err)
	}

	return v, nil
}

func evaluateAt[T any](fl Field[T], f Family, n int, params []*big.Rat, x T, o Options) (T, error) {
	var zero T
	if isNil(x) {
		return zero, ErrDomain
	}
	if fl.Exact() {
		c, err := coeffsWith(coeffRules, f, n, params, o)
		if err != nil {
			return zero, err
		}

		return HornerRat(fl, c, x), nil
	}

	r, err := lookup(f, params)
	if err != nil {
		return zero, err
	}
	if n < 0 {
		return zero, ErrDomain
	}
	o.logger.V(1).Info("numeric recurrence", "family", f.String(), "order", n)

	return numericRecurrence(fl, r, n, params, x)
}

// numericRecurrence runs the three-term recurrence on scalars.
func numericRecurrence[T any](fl Field[T], r *recurrence, n int, params []*big.Rat, x T) (T, error) {
	var zero T
	v0 := fl.FromRat(rat(1))
	if n == 0 {
		return v0, nil
	}
	sa, sb := r.seed(params)
	v1 := fl.Add(fl.FromRat(sa), fl.Mul(x, fl.FromRat(sb)))

	var (
		a, b, c *big.Rat
		err     error
		vk      T
	)
	for k := 2; k <= n; k++ {
		a, b, c, err = r.step(int64(k), params)
		if err != nil {
			return zero, err
		}
		vk = fl.Add(
			fl.Mul(fl.Add(fl.FromRat(a), fl.Mul(x, fl.FromRat(b))), v1),
			fl.Mul(fl.FromRat(c), v0),
		)
		v0, v1 = v1, vk
	}

	return v1, nil
}
