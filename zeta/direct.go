package zeta

import (
	"math"

	"github.com/ericlagergren/decimal"

	"github.com/katalvlaran/specfun/precision"
)

// directGuard is the extra precision carried by the long sums.
const directGuard = 2

// directThreshold is the crossover 1 + p·ln10/(ln p + 0.1) above which the
// direct sum needs fewer terms than Borwein's series.
func directThreshold(digits int) float64 {
	p := float64(digits)

	return 1 + p*math.Ln10/(math.Log(p)+0.1)
}

// seriesLength is N ≈ 10^(p/(s-1)) + 2, the truncation point where the tail
// Σ_{i>N} i^-s drops below 10^-p. ErrConvergence when N exceeds maxIter.
func seriesLength(digits int, s float64, maxIter int) (int, error) {
	e := float64(digits) / (s - 1)
	if e > math.Log10(float64(maxIter)) {
		return 0, ErrConvergence
	}
	n := int(math.Ceil(math.Pow(10, e))) + 2
	if n > maxIter {
		return 0, ErrConvergence
	}

	return n, nil
}

// direct evaluates 1 + Σ_{i=2}^{N} i^-s, smallest terms first.
// Only defined for s > 1.
func direct(pc *precision.Context, s *decimal.Big, o Options) (*decimal.Big, error) {
	sf, _ := s.Float64()
	if sf <= 1 {
		return nil, ErrDomain
	}
	restore := pc.Elevate(directGuard)
	defer restore()

	n, err := seriesLength(pc.Digits(), sf, o.maxIter)
	if err != nil {
		return nil, err
	}
	o.logger.V(1).Info("direct", "terms", n, "digits", pc.Digits())

	ctx := pc.Decimal()
	sum := new(decimal.Big)
	for i := n; i >= 2; i-- {
		ctx.Add(sum, sum, powNeg(ctx, int64(i), s))
	}

	return ctx.Add(sum, sum, dec(1)), nil
}

// eulerProduct evaluates 1 / Π_{p ≤ N} (1 - p^-s) over primes p.
// Only defined for s > 1; N follows seriesLength.
func eulerProduct(pc *precision.Context, s *decimal.Big, o Options) (*decimal.Big, error) {
	sf, _ := s.Float64()
	if sf <= 1 {
		return nil, ErrDomain
	}
	restore := pc.Elevate(directGuard)
	defer restore()

	n, err := seriesLength(pc.Digits(), sf, o.maxIter)
	if err != nil {
		return nil, err
	}
	primes := primesUpTo(n)
	o.logger.V(1).Info("euler product", "bound", n, "primes", len(primes), "digits", pc.Digits())

	ctx := pc.Decimal()
	prod := dec(1)
	f := new(decimal.Big)
	for _, p := range primes {
		ctx.Sub(f, dec(1), powNeg(ctx, int64(p), s))
		ctx.Mul(prod, prod, f)
	}

	return ctx.Quo(new(decimal.Big), dec(1), prod), nil
}

// primesUpTo returns the primes ≤ n in increasing order (Eratosthenes).
//
// Complexity: O(n log log n) time, O(n) memory.
func primesUpTo(n int) []int {
	if n < 2 {
		return nil
	}
	composite := make([]bool, n+1)
	primes := make([]int, 0, n/2)
	for i := 2; i <= n; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}

	return primes
}
