package zeta

import (
	"math"

	"github.com/ericlagergren/decimal"

	"github.com/katalvlaran/specfun/precision"
)

// Zeta3 returns Apéry's constant ζ(3) rounded to the working precision of
// pc, from the central-binomial series
//
//	ζ(3) = 5/2 · Σ_{k≥1} (-1)^(k+1) / (k³·C(2k,k))
//
// The terms shrink by about 1/4 per step. Summation stops when the running
// sum no longer changes at the working precision; ErrConvergence if that
// does not happen within the iteration cap (WithMaxIterations).
// WithAlgorithm and WithGuardDigits do not apply here.
func Zeta3(pc *precision.Context, opts ...Option) (*decimal.Big, error) {
	o := gatherOptions(opts...)
	if pc == nil {
		pc = precision.Default()
	}
	v, err := zeta3(pc, o)
	if err != nil {
		return nil, zetaErrorf(opZeta3, err)
	}

	return v, nil
}

// zeta3Guard is ⌈log10 p⌉ + 1, enough to absorb the rounding of ~1.7p terms.
func zeta3Guard(digits int) int {
	return int(math.Ceil(math.Log10(float64(digits)))) + 1
}

func zeta3(pc *precision.Context, o Options) (*decimal.Big, error) {
	restore := pc.Elevate(zeta3Guard(pc.Digits()))
	defer restore()
	ctx := pc.Decimal()

	var (
		term = dec(1) // 2(-1)^(k+1) / (k·C(2k,k))
		sum  = dec(1)
		prev = new(decimal.Big)
		add  = new(decimal.Big)
	)
	for k := int64(1); k <= int64(o.maxIter); k++ {
		// term_{k+1} = -term_k · k² / ((2k+1)·2k)
		ctx.Mul(term, term, dec(k*k))
		ctx.Quo(term, term, dec((2*k+1)*(2*k)))
		ctx.Neg(term, term)

		prev.Copy(sum)
		ctx.Quo(add, term, dec((k+1)*(k+1)))
		ctx.Add(sum, sum, add)
		if sum.Cmp(prev) == 0 {
			o.logger.V(1).Info("zeta3", "terms", k+1, "digits", pc.Digits())
			ctx.Mul(sum, sum, decimal.New(125, 2)) // ·5/4
			restore()

			return pc.Round(sum), nil
		}
	}

	return nil, ErrConvergence
}
