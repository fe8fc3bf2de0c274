package zeta

import (
	"math/big"
	"sync"
)

// bernoulliCache keeps the Akiyama–Tanigawa row between calls so that
// extending the table to a larger index resumes where it stopped.
var bernoulliCache struct {
	sync.Mutex
	row   []*big.Rat // working row A[0..m]
	table []*big.Rat // B_0..B_m, B_1 = +1/2 as produced by the transform
}

// Bernoulli returns the exact Bernoulli number B_n with B_1 = -1/2.
// B_n = 0 for odd n > 1. Returns ErrDomain for n < 0.
//
// Complexity: O(n²) rational operations the first time an index is reached;
// cached afterwards.
func Bernoulli(n int) (*big.Rat, error) {
	if n < 0 {
		return nil, zetaErrorf(opBernoulli, ErrDomain)
	}

	return new(big.Rat).Set(bernoulliTable(n)[n]), nil
}

// bernoulliTable returns B_0..B_n (at least) with B_1 = -1/2. The returned
// values are shared and must not be mutated.
func bernoulliTable(n int) []*big.Rat {
	c := &bernoulliCache
	c.Lock()
	defer c.Unlock()

	tmp := new(big.Rat)
	for m := len(c.table); m <= n; m++ {
		c.row = append(c.row, big.NewRat(1, int64(m+1)))
		for j := m; j >= 1; j-- {
			// A[j-1] = j·(A[j-1] - A[j])
			tmp.Sub(c.row[j-1], c.row[j])
			c.row[j-1] = new(big.Rat).Mul(tmp, big.NewRat(int64(j), 1))
		}
		b := new(big.Rat).Set(c.row[0])
		if m == 1 {
			b.Neg(b)
		}
		c.table = append(c.table, b)
	}

	return c.table[:len(c.table):len(c.table)]
}
