package precision

import (
	"github.com/ericlagergren/decimal"
)

const (
	// DefaultDigits is the working precision of a fresh host session.
	DefaultDigits = 10

	// MaxDigits bounds the register. Beyond it the series lengths of the
	// zeta algorithms stop being meaningful for an in-memory library.
	MaxDigits = 1 << 16
)

// Context is a decimal working-precision register with save/restore
// discipline. The zero value is not usable; construct with New or Default.
type Context struct {
	digits int   // current working precision
	saved  []int // digits before each active elevation (LIFO)
}

// New returns a Context at the given precision.
// Returns ErrBadDigits if digits is outside [1, MaxDigits].
func New(digits int) (*Context, error) {
	if err := validateDigits(digits); err != nil {
		return nil, err
	}

	return &Context{digits: digits}, nil
}

// Default returns a Context at DefaultDigits.
func Default() *Context {
	return &Context{digits: DefaultDigits}
}

// Digits reports the current working precision, including any active
// elevation.
func (c *Context) Digits() int { return c.digits }

// Depth reports how many elevations are currently active.
func (c *Context) Depth() int { return len(c.saved) }

// Set changes the ambient precision. It is rejected while an elevation is
// active so that a restore cannot silently undo the caller's setting.
func (c *Context) Set(digits int) error {
	if err := validateDigits(digits); err != nil {
		return err
	}
	if len(c.saved) > 0 {
		return ErrBadDigits
	}
	c.digits = digits

	return nil
}

// Elevate raises the working precision by guard digits and returns the
// function that restores it.
//
// Contract:
//   - restore is idempotent; calling it twice is a no-op.
//   - restoring an outer elevation also unwinds every inner one still active.
//   - guard < 0 is a programmer error and panics.
//
// Complexity: O(1).
func (c *Context) Elevate(guard int) (restore func()) {
	if guard < 0 {
		panic(panicNegativeGuard)
	}
	depth := len(c.saved)
	c.saved = append(c.saved, c.digits)
	c.digits += guard
	if c.digits > MaxDigits {
		c.digits = MaxDigits
	}

	var done bool

	return func() {
		if done {
			return
		}
		done = true
		// already unwound by an outer restore
		if depth >= len(c.saved) {
			return
		}
		c.digits = c.saved[depth]
		c.saved = c.saved[:depth]
	}
}

// Clone returns an independent Context with the same current precision and
// no active elevations.
func (c *Context) Clone() *Context {
	return &Context{digits: c.digits}
}

// Decimal returns a decimal.Context operating at the current precision with
// round-half-even.
func (c *Context) Decimal() decimal.Context {
	return decimal.Context{
		Precision:    c.digits,
		RoundingMode: decimal.ToNearestEven,
	}
}

// Round returns a fresh copy of x rounded to the current precision.
// x is not modified.
func (c *Context) Round(x *decimal.Big) *decimal.Big {
	z := new(decimal.Big)
	z.Context = c.Decimal()
	z.Copy(x)

	return z.Round(c.digits)
}

func validateDigits(digits int) error {
	if digits < 1 || digits > MaxDigits {
		return ErrBadDigits
	}

	return nil
}
