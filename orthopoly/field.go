package orthopoly

import (
	"math/big"

	"github.com/ericlagergren/decimal"

	"github.com/katalvlaran/specfun/precision"
)

// Field is the arithmetic an evaluation runs in. Recurrence coefficients are
// always produced exactly (as *big.Rat) and lifted into the field with
// FromRat, so the same registry serves every element type.
//
// Exact fields take the coefficient route (materialise the monomial
// coefficients, then Horner); inexact fields take the O(n) scalar recurrence.
type Field[T any] interface {
	// Exact reports whether Add and Mul are free of rounding.
	Exact() bool
	// FromRat converts an exact rational into the field.
	FromRat(r *big.Rat) T
	// Add returns a+b without mutating either operand.
	Add(a, b T) T
	// Mul returns a·b without mutating either operand.
	Mul(a, b T) T
}

// Rational is the exact field over *big.Rat.
type Rational struct{}

func (Rational) Exact() bool                 { return true }
func (Rational) FromRat(r *big.Rat) *big.Rat { return new(big.Rat).Set(r) }
func (Rational) Add(a, b *big.Rat) *big.Rat  { return new(big.Rat).Add(a, b) }
func (Rational) Mul(a, b *big.Rat) *big.Rat  { return new(big.Rat).Mul(a, b) }

// Float64 is IEEE-754 double precision.
type Float64 struct{}

func (Float64) Exact() bool { return false }

func (Float64) FromRat(r *big.Rat) float64 {
	f, _ := r.Float64()

	return f
}

func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Mul(a, b float64) float64 { return a * b }

// Complex128 evaluates at complex points in double precision.
type Complex128 struct{}

func (Complex128) Exact() bool { return false }

func (Complex128) FromRat(r *big.Rat) complex128 {
	f, _ := r.Float64()

	return complex(f, 0)
}

func (Complex128) Add(a, b complex128) complex128 { return a + b }
func (Complex128) Mul(a, b complex128) complex128 { return a * b }

// Decimal is arbitrary-precision decimal arithmetic bound to a precision
// register. Every operation reads the register's current digits, so guard
// elevations made by the caller apply to the evaluation.
type Decimal struct {
	pc *precision.Context
}

// NewDecimal binds a Decimal field to pc. A nil pc uses precision.Default().
func NewDecimal(pc *precision.Context) Decimal {
	if pc == nil {
		pc = precision.Default()
	}

	return Decimal{pc: pc}
}

func (Decimal) Exact() bool { return false }

func (d Decimal) FromRat(r *big.Rat) *decimal.Big {
	ctx := d.pc.Decimal()
	num := new(decimal.Big).SetBigMantScale(r.Num(), 0)
	den := new(decimal.Big).SetBigMantScale(r.Denom(), 0)

	return ctx.Quo(new(decimal.Big), num, den)
}

func (d Decimal) Add(a, b *decimal.Big) *decimal.Big {
	ctx := d.pc.Decimal()

	return ctx.Add(new(decimal.Big), a, b)
}

func (d Decimal) Mul(a, b *decimal.Big) *decimal.Big {
	ctx := d.pc.Decimal()

	return ctx.Mul(new(decimal.Big), a, b)
}

// isNil reports a nil operand of the pointer-valued fields (Rational,
// Decimal), which their arithmetic would dereference.
func isNil[T any](v T) bool {
	switch p := any(v).(type) {
	case *big.Rat:
		return p == nil
	case *decimal.Big:
		return p == nil
	}

	return false
}
