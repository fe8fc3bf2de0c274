package orthopoly

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSelectCoeffRule_Order checks the closed forms shadow the recurrence and
// that an empty table reports the dispatch gap.
func TestSelectCoeffRule_Order(t *testing.T) {
	zero := []*big.Rat{new(big.Rat), new(big.Rat)}

	r, err := selectCoeffRule(coeffRules, Jacobi, zero, true)
	require.NoError(t, err)
	assert.Equal(t, "legendre", r.name)

	r, err = selectCoeffRule(coeffRules, Jacobi, []*big.Rat{big.NewRat(1, 2), new(big.Rat)}, true)
	require.NoError(t, err)
	assert.Equal(t, "recurrence", r.name)

	r, err = selectCoeffRule(coeffRules, ChebyshevU, nil, false)
	require.NoError(t, err)
	assert.Equal(t, "recurrence", r.name, "fast rules are skipped when disabled")

	r, err = selectCoeffRule(coeffRules, Gegenbauer, []*big.Rat{big.NewRat(1, 1)}, true)
	require.NoError(t, err)
	assert.Equal(t, "recurrence", r.name, "Gegenbauer has no closed form")

	_, err = selectCoeffRule(nil, Hermite, nil, true)
	assert.ErrorIs(t, err, ErrNoMatchingRule)

	_, err = coeffsWith(coeffRules[:1], Hermite, 3, nil, defaultOptions())
	assert.ErrorIs(t, err, ErrNoMatchingRule)
}

// TestRecurrenceCoeffs_BufferReuse verifies the rotated buffers never leak
// stale entries above the current degree.
func TestRecurrenceCoeffs_BufferReuse(t *testing.T) {
	r := &registry[Hermite]
	for n := 0; n <= 12; n++ {
		c, err := recurrenceCoeffs(r, n, nil)
		require.NoError(t, err)
		require.Len(t, c, n+1)
		for i := n - 1; i >= 0; i -= 2 {
			assert.Zero(t, c[i].Sign(), "H_%d has parity %d; x^%d must vanish", n, n%2, i)
		}
	}
}

func TestDoubleFactorial(t *testing.T) {
	assert.Equal(t, "1", doubleFactorial(-1).String())
	assert.Equal(t, "1", doubleFactorial(0).String())
	assert.Equal(t, "15", doubleFactorial(5).String())
	assert.Equal(t, "48", doubleFactorial(6).String())
	assert.Equal(t, "120", factorial(5).String())
	assert.Equal(t, "1", factorial(0).String())
}
