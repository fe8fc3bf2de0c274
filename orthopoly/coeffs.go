package orthopoly

import "math/big"

// recurrenceCoeffs builds the monomial coefficients of P_n with the family's
// three-term recurrence, in exact rational arithmetic.
//
// Algorithm:
//  1. n=0 ⇒ {1}; n=1 ⇒ {seed.A, seed.B}.
//  2. prev = P_0 = {1,0,…}, curr = P_1 = {A,B,0,…}, next scratch; all n+1 long.
//  3. For k = 2..n with (A,B,C) = step(k):
//     next[j] = A·curr[j] + C·prev[j] + B·curr[j-1]   (j = 0..k, curr[-1] = 0)
//     then rotate (prev, curr, next) := (curr, next, prev).
//  4. Return curr.
//
// The rotation swaps slice headers only. The recycled buffer last held
// P_{k-3}, so its entries above index k are already zero and only 0..k are
// written.
//
// Complexity: O(n²) rational operations, O(n) buffers.
func recurrenceCoeffs(r *recurrence, n int, params []*big.Rat) ([]*big.Rat, error) {
	if n == 0 {
		return []*big.Rat{rat(1)}, nil
	}
	sa, sb := r.seed(params)
	if n == 1 {
		return []*big.Rat{sa, sb}, nil
	}

	prev := zeroVector(n + 1)
	curr := zeroVector(n + 1)
	next := zeroVector(n + 1)
	prev[0].SetInt64(1)
	curr[0].Set(sa)
	curr[1].Set(sb)

	var (
		k, j    int
		a, b, c *big.Rat
		err     error
		tmp     = new(big.Rat)
	)
	for k = 2; k <= n; k++ {
		a, b, c, err = r.step(int64(k), params)
		if err != nil {
			return nil, err
		}
		for j = 0; j <= k; j++ {
			next[j].Mul(a, curr[j])
			tmp.Mul(c, prev[j])
			next[j].Add(next[j], tmp)
			if j > 0 {
				tmp.Mul(b, curr[j-1])
				next[j].Add(next[j], tmp)
			}
		}
		prev, curr, next = curr, next, prev
	}

	return curr, nil
}

// zeroVector allocates n distinct zero rationals.
func zeroVector(n int) []*big.Rat {
	v := make([]*big.Rat, n)
	for i := range v {
		v[i] = new(big.Rat)
	}

	return v
}
