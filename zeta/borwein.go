package zeta

import (
	"math"
	"math/big"

	"github.com/ericlagergren/decimal"

	"github.com/katalvlaran/specfun/precision"
)

// borweinTerms is n = ⌈p·ln10 / ln8⌉ + 2; the error decays like 8^-n.
func borweinTerms(digits int) int {
	return int(math.Ceil(float64(digits)*math.Ln10/math.Log(8))) + 2
}

// borwein evaluates
//
//	ζ(s) = 1 / (2^n (1 - 2^(1-s))) · Σ_{j=0}^{2n-1} (-1)^j e_j / (j+1)^s
//
// with e_j = 2^n for j < n and e_j = 2^n - Σ_{k=0}^{j-n} C(n,k) otherwise.
// The weights are exact integers; only the powers are rounded.
//
// Complexity: O(n) decimal powers at the current precision.
func borwein(pc *precision.Context, s *decimal.Big, o Options) (*decimal.Big, error) {
	ctx := pc.Decimal()
	n := borweinTerms(pc.Digits())
	o.logger.V(1).Info("borwein", "n", n, "terms", 2*n, "digits", pc.Digits())

	pow2 := new(big.Int).Lsh(big.NewInt(1), uint(n))
	var (
		partial = new(big.Int) // Σ_{k=0}^{j-n} C(n,k)
		e       = new(big.Int).Set(pow2)
		binom   = new(big.Int)
		sum     = new(decimal.Big)
		term    = new(decimal.Big)
	)
	for j := 0; j < 2*n; j++ {
		if j >= n {
			partial.Add(partial, binom.Binomial(int64(n), int64(j-n)))
			e.Sub(pow2, partial)
		}
		ctx.Mul(term, bigDec(e), powNeg(ctx, int64(j+1), s))
		if j%2 == 1 {
			ctx.Neg(term, term)
		}
		ctx.Add(sum, sum, term)
	}

	// 2^n (1 - 2^(1-s))
	sm1 := ctx.Sub(new(decimal.Big), s, dec(1))
	den := ctx.Sub(new(decimal.Big), dec(1), powNeg(ctx, 2, sm1))
	if den.Sign() == 0 {
		return nil, ErrPole
	}
	ctx.Mul(den, den, bigDec(pow2))

	return ctx.Quo(sum, sum, den), nil
}
