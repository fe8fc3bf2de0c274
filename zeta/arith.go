package zeta

import (
	"math"
	"math/big"

	"github.com/ericlagergren/decimal"
)

// maxExactExponent bounds the integer powers computed with big.Int before
// falling back to exp(-s·ln b).
const maxExactExponent = 256

// dec returns the integer v as a decimal.
func dec(v int64) *decimal.Big { return decimal.New(v, 0) }

// bigDec returns the integer v as a decimal without rounding.
func bigDec(v *big.Int) *decimal.Big { return new(decimal.Big).SetBigMantScale(v, 0) }

// ratDec rounds the rational r into ctx.
func ratDec(ctx decimal.Context, r *big.Rat) *decimal.Big {
	return ctx.Quo(new(decimal.Big), bigDec(r.Num()), bigDec(r.Denom()))
}

// smallInt reports whether x is an integer with |x| ≤ maxExactExponent.
func smallInt(x *decimal.Big) (int64, bool) {
	if !x.IsInt() {
		return 0, false
	}
	k, ok := x.Int64()
	if !ok || k > maxExactExponent || k < -maxExactExponent {
		return 0, false
	}

	return k, true
}

// powNeg returns base^(-s) rounded to ctx. Integer exponents go through an
// exact big.Int power; the rest through exp(-s·ln base).
func powNeg(ctx decimal.Context, base int64, s *decimal.Big) *decimal.Big {
	z := new(decimal.Big)
	if k, ok := smallInt(s); ok {
		e := k
		if e < 0 {
			e = -e
		}
		p := bigDec(new(big.Int).Exp(big.NewInt(base), big.NewInt(e), nil))
		if k >= 0 {
			return ctx.Quo(z, dec(1), p)
		}

		return ctx.Mul(z, p, dec(1))
	}
	t := ctx.Log(new(decimal.Big), dec(base))
	ctx.Mul(t, t, s)
	ctx.Neg(t, t)

	return ctx.Exp(z, t)
}

// decimalDigits is the number of decimal digits in the integer part of
// |v|, at least 1.
func decimalDigits(v float64) int {
	v = math.Abs(v)
	if v < 10 {
		return 1
	}

	return int(math.Floor(math.Log10(v))) + 1
}
