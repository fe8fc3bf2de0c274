package precision

import "errors"

var (
	// ErrBadDigits indicates a non-positive or oversized digit count.
	ErrBadDigits = errors.New("precision: digits must be in [1, MaxDigits]")
)

const panicNegativeGuard = "precision: Elevate: guard digits must be non-negative"
