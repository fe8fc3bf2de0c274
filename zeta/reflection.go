package zeta

import (
	"github.com/ericlagergren/decimal"

	"github.com/katalvlaran/specfun/precision"
)

// reflection evaluates ζ(s) for s < 1/2 from the functional equation
//
//	ζ(s) = 2^s · π^(s-1) · sin(πs/2) · Γ(1-s) · ζ(1-s)
//
// ζ(1-s) re-enters the dispatch with 1-s > 1/2, so the recursion is one
// level deep. Extra digits cover the argument reduction of sin(πs/2) at
// large |s|.
func reflection(pc *precision.Context, s *decimal.Big, o Options) (*decimal.Big, error) {
	sf, _ := s.Float64()
	restore := pc.Elevate(decimalDigits(sf))
	defer restore()
	ctx := pc.Decimal()

	t := ctx.Sub(new(decimal.Big), dec(1), s) // 1-s
	zr, err := zeta(pc, t, o)
	if err != nil {
		return nil, err
	}
	g, err := gamma(pc, t)
	if err != nil {
		return nil, err
	}

	pi := ctx.Pi(new(decimal.Big))

	// π^(s-1) = exp(-(1-s)·ln π)
	piPow := ctx.Log(new(decimal.Big), pi)
	ctx.Mul(piPow, piPow, t)
	ctx.Neg(piPow, piPow)
	ctx.Exp(piPow, piPow)

	// sin(πs/2)
	sn := ctx.Mul(new(decimal.Big), pi, s)
	ctx.Quo(sn, sn, dec(2))
	ctx.Sin(sn, sn)

	v := powNeg(ctx, 2, ctx.Neg(new(decimal.Big), s)) // 2^s
	ctx.Mul(v, v, piPow)
	ctx.Mul(v, v, sn)
	ctx.Mul(v, v, g)
	ctx.Mul(v, v, zr)
	o.logger.V(1).Info("reflection", "s", s.String(), "digits", pc.Digits())

	return v, nil
}
