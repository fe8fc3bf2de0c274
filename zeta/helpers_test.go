package zeta_test

import (
	"math"
	"testing"

	"github.com/ericlagergren/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/specfun/precision"
)

// ctxAt returns a fresh precision register at digits.
func ctxAt(t testing.TB, digits int) *precision.Context {
	t.Helper()
	pc, err := precision.New(digits)
	require.NoError(t, err)

	return pc
}

// d parses a decimal literal.
func d(t testing.TB, s string) *decimal.Big {
	t.Helper()
	x, ok := new(decimal.Big).SetString(s)
	require.True(t, ok, "bad literal %q", s)

	return x
}

// f64 converts x for comparisons against float64 references.
func f64(t testing.TB, x *decimal.Big) float64 {
	t.Helper()
	// ok is false for any inexact conversion; only overflow matters here.
	v, _ := x.Float64()
	require.False(t, math.IsInf(v, 0), "%s does not fit a float64", x)

	return v
}

// requireDigits checks that got agrees with the decimal literal want to a
// relative error of at most 10^-(digits-1).
func requireDigits(t testing.TB, want string, got *decimal.Big, digits int, msgAndArgs ...interface{}) {
	t.Helper()
	w := d(t, want)
	ctx := decimal.Context{Precision: digits + 10}
	diff := ctx.Sub(new(decimal.Big), got, w)
	if w.Sign() != 0 {
		ctx.Quo(diff, diff, w)
	}
	require.LessOrEqual(t, diff.CmpAbs(decimal.New(1, digits-1)), 0, msgAndArgs...)
}

// requireRestored checks that no elevation leaked out of a call.
func requireRestored(t testing.TB, pc *precision.Context, digits int) {
	t.Helper()
	require.Equal(t, digits, pc.Digits())
	require.Zero(t, pc.Depth())
}
