package zeta_test

import (
	"strconv"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/specfun/zeta"
)

func TestZeta_KnownValues(t *testing.T) {
	cases := []struct {
		s      string
		digits int
		want   string
	}{
		{"2", 15, "1.64493406684823"},   // π²/6
		{"-1", 10, "-0.08333333333"},    // -1/12, reflection
		{"0", 10, "-0.5"},
		{"-2", 10, "0"},                 // trivial zero
		{"-3", 10, "0.008333333333"},    // 1/120
		{"0.5", 15, "-1.46035450880959"},
		{"3", 15, "1.20205690315959"},
		{"4", 15, "1.08232323371114"},   // π⁴/90
		{"20", 15, "1.00000095396203"},  // direct branch
	}
	for _, tc := range cases {
		pc := ctxAt(t, tc.digits)
		v, err := zeta.Zeta(pc, d(t, tc.s))
		require.NoError(t, err, "s=%s", tc.s)
		assert.Equal(t, tc.want, v.String(), "s=%s", tc.s)
		requireRestored(t, pc, tc.digits)
	}
}

func TestZeta3_MatchesGeneralEvaluator(t *testing.T) {
	pc := ctxAt(t, 15)
	z3, err := zeta.Zeta3(pc)
	require.NoError(t, err)
	assert.Equal(t, "1.20205690315959", z3.String())
	requireRestored(t, pc, 15)

	z, err := zeta.Zeta(pc, d(t, "3"))
	require.NoError(t, err)
	assert.Zero(t, z3.Cmp(z))
}

func TestZeta3_HighPrecision(t *testing.T) {
	pc := ctxAt(t, 40)
	z3, err := zeta.Zeta3(pc)
	require.NoError(t, err)
	assert.Equal(t, "1.202056903159594285399738161511449990765", z3.String())
}

// TestZeta_FortyDigits pins every evaluation path well past float64.
func TestZeta_FortyDigits(t *testing.T) {
	const digits = 40
	cases := []struct {
		s    string
		algo zeta.Algorithm
		want string
	}{
		{"2", zeta.Auto, "1.644934066848226436472415166646025189219"},       // borwein
		{"0.5", zeta.Auto, "-1.460354508809586812889499152515298012467"},    // borwein
		{"-1", zeta.Auto, "-0.08333333333333333333333333333333333333333"},   // reflection
		{"-2.5", zeta.Auto, "0.008516928777850330542358567028344486936276"}, // reflection
		{"20", zeta.Auto, "1.000000953962033872796113152038683449346"},      // direct
		{"20", zeta.Borwein, "1.000000953962033872796113152038683449346"},
		{"20", zeta.EulerProduct, "1.000000953962033872796113152038683449346"},
	}
	for _, tc := range cases {
		pc := ctxAt(t, digits)
		v, err := zeta.Zeta(pc, d(t, tc.s), zeta.WithAlgorithm(tc.algo))
		require.NoError(t, err, "s=%s %s", tc.s, tc.algo)
		requireDigits(t, tc.want, v, digits, "s=%s %s: got %s", tc.s, tc.algo, v)
		requireRestored(t, pc, digits)
	}

	pc := ctxAt(t, digits)
	z3, err := zeta.Zeta3(pc)
	require.NoError(t, err)
	z, err := zeta.Zeta(pc, d(t, "3"))
	require.NoError(t, err)
	assert.Zero(t, z3.Cmp(z), "Zeta3 %s, Zeta(3) %s", z3, z)
}

// TestZeta_AgreesWithGonum cross-checks against the float64 Hurwitz zeta.
func TestZeta_AgreesWithGonum(t *testing.T) {
	pc := ctxAt(t, 20)
	for _, s := range []float64{1.5, 2, 3.25, 7, 13.75, 30} {
		v, err := zeta.Zeta(pc, d(t, formatFloat(s)))
		require.NoError(t, err)
		want := mathext.Zeta(s, 1)
		assert.InEpsilon(t, want, f64(t, v), 1e-13, "s=%v", s)
	}
}

// TestZeta_AlgorithmsAgree compares the interchangeable s > 1 paths.
func TestZeta_AlgorithmsAgree(t *testing.T) {
	pc := ctxAt(t, 15)
	for _, s := range []string{"6", "13.5", "21.25"} {
		ref, err := zeta.Zeta(pc, d(t, s), zeta.WithAlgorithm(zeta.Borwein))
		require.NoError(t, err)
		for _, alg := range []zeta.Algorithm{zeta.Auto, zeta.Direct, zeta.EulerProduct} {
			v, err := zeta.Zeta(pc, d(t, s), zeta.WithAlgorithm(alg))
			require.NoError(t, err, "%s s=%s", alg, s)
			assert.InEpsilon(t, f64(t, ref), f64(t, v), 2e-14, "%s s=%s", alg, s)
		}
		requireRestored(t, pc, 15)
	}
}

func TestZeta_Errors(t *testing.T) {
	pc := ctxAt(t, 15)

	for _, alg := range []zeta.Algorithm{zeta.Auto, zeta.Borwein, zeta.Direct, zeta.EulerProduct} {
		_, err := zeta.Zeta(pc, d(t, "1"), zeta.WithAlgorithm(alg))
		assert.ErrorIs(t, err, zeta.ErrPole, alg.String())
		requireRestored(t, pc, 15)
	}

	_, err := zeta.Zeta(pc, nil)
	assert.ErrorIs(t, err, zeta.ErrDomain)

	// direct sums diverge below the pole
	_, err = zeta.Zeta(pc, d(t, "0.75"), zeta.WithAlgorithm(zeta.Direct))
	assert.ErrorIs(t, err, zeta.ErrDomain)
	requireRestored(t, pc, 15)

	// 10^(22/0.5) terms
	_, err = zeta.Zeta(pc, d(t, "1.5"), zeta.WithAlgorithm(zeta.Direct))
	assert.ErrorIs(t, err, zeta.ErrConvergence)
	requireRestored(t, pc, 15)

	_, err = zeta.Zeta3(pc, zeta.WithMaxIterations(1))
	assert.ErrorIs(t, err, zeta.ErrConvergence)
	requireRestored(t, pc, 15)
}

// TestZeta_ReflectionRestoresPrecision goes through the one-level recursion.
func TestZeta_ReflectionRestoresPrecision(t *testing.T) {
	pc := ctxAt(t, 12)
	log := testr.NewWithOptions(t, testr.Options{Verbosity: 1})
	v, err := zeta.Zeta(pc, d(t, "-2.5"), zeta.WithLogger(log))
	require.NoError(t, err)
	requireRestored(t, pc, 12)
	assert.InDelta(t, 0.00851692877785, f64(t, v), 1e-13)
}

func TestZeta_Idempotent(t *testing.T) {
	pc := ctxAt(t, 25)
	for _, s := range []string{"-7.5", "0.75", "2.5", "40"} {
		a, err := zeta.Zeta(pc, d(t, s))
		require.NoError(t, err)
		b, err := zeta.Zeta(pc, d(t, s))
		require.NoError(t, err)
		assert.Equal(t, a.String(), b.String(), "s=%s", s)
	}
}

// TestZeta_IndependentContexts runs evaluations concurrently, one register
// per goroutine.
func TestZeta_IndependentContexts(t *testing.T) {
	base := ctxAt(t, 15)
	two := d(t, "2")
	var g errgroup.Group
	results := make([]string, 8)
	for i := range results {
		i := i
		pc := base.Clone()
		g.Go(func() error {
			v, err := zeta.Zeta(pc, two)
			if err != nil {
				return err
			}
			results[i] = v.String()

			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, r := range results {
		assert.Equal(t, "1.64493406684823", r)
	}
}

func TestZeta_NilContextUsesDefault(t *testing.T) {
	v, err := zeta.Zeta(nil, d(t, "2"))
	require.NoError(t, err)
	assert.Equal(t, "1.644934067", v.String())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { zeta.WithGuardDigits(-1) })
	assert.Panics(t, func() { zeta.WithMaxIterations(0) })
	assert.Panics(t, func() { zeta.WithAlgorithm(zeta.Algorithm(42)) })
	assert.NotPanics(t, func() { zeta.WithGuardDigits(0) })
}

func TestAlgorithm_String(t *testing.T) {
	assert.Equal(t, "auto", zeta.Auto.String())
	assert.Equal(t, "borwein", zeta.Borwein.String())
	assert.Equal(t, "direct", zeta.Direct.String())
	assert.Equal(t, "euler", zeta.EulerProduct.String())
	assert.Equal(t, "Algorithm(9)", zeta.Algorithm(9).String())
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
