package zeta

import (
	"math"
	"math/big"

	"github.com/ericlagergren/decimal"

	"github.com/katalvlaran/specfun/precision"
)

// maxFactorialArg bounds the integer fast path of Γ.
const maxFactorialArg = 1 << 12

// Gamma returns Γ(x) for real x rounded to the working precision of pc.
// A nil pc evaluates at precision.DefaultDigits.
//
// Positive integers take the exact factorial; x < 1/2 uses the reflection
// Γ(x) = π / (sin(πx)·Γ(1-x)); everything else the Stirling series.
// Non-positive integers return ErrPole.
func Gamma(pc *precision.Context, x *decimal.Big, opts ...Option) (*decimal.Big, error) {
	o := gatherOptions(opts...)
	if pc == nil {
		pc = precision.Default()
	}
	if x == nil || !x.IsFinite() {
		return nil, zetaErrorf(opGamma, ErrDomain)
	}

	restore := pc.Elevate(o.guard)
	defer restore()
	v, err := gamma(pc, x)
	if err != nil {
		return nil, zetaErrorf(opGamma, err)
	}
	restore()

	return pc.Round(v), nil
}

// gamma evaluates at pc's current digits.
func gamma(pc *precision.Context, x *decimal.Big) (*decimal.Big, error) {
	if x.IsInt() {
		if x.Sign() <= 0 {
			return nil, ErrPole
		}
		if k, ok := x.Int64(); ok && k <= maxFactorialArg {
			f := new(big.Int).MulRange(1, k-1)

			return pc.Round(bigDec(f)), nil
		}
	}
	if x.Cmp(decimal.New(5, 1)) < 0 {
		return gammaReflect(pc, x)
	}

	return stirling(pc, x), nil
}

// gammaReflect is Γ(x) = π / (sin(πx)·Γ(1-x)) for non-integer x < 1/2.
func gammaReflect(pc *precision.Context, x *decimal.Big) (*decimal.Big, error) {
	xf, _ := x.Float64()
	restore := pc.Elevate(decimalDigits(xf))
	defer restore()
	ctx := pc.Decimal()

	t := ctx.Sub(new(decimal.Big), dec(1), x)
	g, err := gamma(pc, t)
	if err != nil {
		return nil, err
	}
	pi := ctx.Pi(new(decimal.Big))
	sn := ctx.Mul(new(decimal.Big), pi, x)
	ctx.Sin(sn, sn)
	ctx.Mul(sn, sn, g)

	return ctx.Quo(new(decimal.Big), pi, sn), nil
}

// stirling evaluates Γ(x), x ≥ 1/2, as exp(ln Γ(x+m)) / (x(x+1)…(x+m-1))
// where the shift m makes z = x+m ≥ p+10 and
//
//	ln Γ(z) = (z-1/2)·ln z - z + ln(2π)/2 + Σ_k B_2k / (2k(2k-1)·z^(2k-1))
//
// is summed until a term drops below 10^-(p+2).
func stirling(pc *precision.Context, x *decimal.Big) *decimal.Big {
	digits := pc.Digits()
	zmin := float64(digits + 10)
	xf, _ := x.Float64()
	zf := math.Max(xf, zmin)
	// exp amplifies the absolute error of ln Γ(z) ≈ z ln z; the shift
	// product accumulates one rounding per factor.
	restore := pc.Elevate(decimalDigits(zf*math.Log(zf)) + decimalDigits(zmin) + 3)
	defer restore()
	ctx := pc.Decimal()

	z := new(decimal.Big).Copy(x)
	shift := dec(1)
	limit := dec(int64(digits + 10))
	for z.Cmp(limit) < 0 {
		ctx.Mul(shift, shift, z)
		ctx.Add(z, z, dec(1))
	}

	// (z - 1/2)·ln z - z + ln(2π)/2
	lnz := ctx.Log(new(decimal.Big), z)
	lg := ctx.Sub(new(decimal.Big), z, decimal.New(5, 1))
	ctx.Mul(lg, lg, lnz)
	ctx.Sub(lg, lg, z)
	half := ctx.Mul(new(decimal.Big), ctx.Pi(new(decimal.Big)), dec(2))
	ctx.Log(half, half)
	ctx.Quo(half, half, dec(2))
	ctx.Add(lg, lg, half)

	kmax := digits/2 + 5
	b := bernoulliTable(2 * kmax)
	eps := decimal.New(1, digits+2)
	z2 := ctx.Mul(new(decimal.Big), z, z)
	zp := new(decimal.Big).Copy(z) // z^(2k-1)
	term := new(decimal.Big)
	for k := 1; k <= kmax; k++ {
		// B_2k / (2k(2k-1)·z^(2k-1))
		ratDen := new(big.Rat).Mul(b[2*k], big.NewRat(1, int64(2*k*(2*k-1))))
		ctx.Quo(term, ratDec(ctx, ratDen), zp)
		ctx.Add(lg, lg, term)
		if term.CmpAbs(eps) < 0 {
			break
		}
		ctx.Mul(zp, zp, z2)
	}

	v := ctx.Exp(new(decimal.Big), lg)

	return ctx.Quo(v, v, shift)
}
