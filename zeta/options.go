package zeta

import (
	"fmt"

	"github.com/go-logr/logr"
)

// Algorithm selects how ζ(s) is evaluated for s ≥ 1/2.
type Algorithm int

const (
	// Auto picks direct summation above the crossover threshold and
	// Borwein's algorithm below it.
	Auto Algorithm = iota
	// Borwein forces Borwein's accelerated alternating series.
	Borwein
	// Direct forces Σ i^-s; only valid for s > 1.
	Direct
	// EulerProduct forces Π (1 - p^-s)^-1 over primes; only valid for s > 1.
	// Auto never selects it.
	EulerProduct
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case Borwein:
		return "borwein"
	case Direct:
		return "direct"
	case EulerProduct:
		return "euler"
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

const (
	// DefaultGuardDigits is the elevation applied around every evaluation
	// before the result is rounded back to the caller's precision.
	DefaultGuardDigits = 5

	// DefaultMaxIterations caps the direct sum length, the Euler product
	// prime bound and the Zeta(3) stagnation loop.
	DefaultMaxIterations = 1 << 20
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger    logr.Logger // logr.Discard() unless WithLogger
	algorithm Algorithm   // Auto
	guard     int         // DefaultGuardDigits
	maxIter   int         // DefaultMaxIterations
}

// WithLogger routes V(1) traces (rule chosen, series lengths) to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithAlgorithm forces the algorithm used in the s ≥ 1/2 region.
// Exact values (s = 0, trivial zeros), the pole and the reflection branch
// still take precedence. Panics on an unknown Algorithm.
func WithAlgorithm(a Algorithm) Option {
	if a < Auto || a > EulerProduct {
		panic(panicBadAlgorithm)
	}

	return func(o *Options) { o.algorithm = a }
}

// WithGuardDigits sets the guard digits carried above the caller's precision.
// Panics if g < 0.
func WithGuardDigits(g int) Option {
	if g < 0 {
		panic(panicNegativeGuard)
	}

	return func(o *Options) { o.guard = g }
}

// WithMaxIterations caps series lengths. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicBadIterations)
	}

	return func(o *Options) { o.maxIter = n }
}

func defaultOptions() Options {
	return Options{
		logger:    logr.Discard(),
		algorithm: Auto,
		guard:     DefaultGuardDigits,
		maxIter:   DefaultMaxIterations,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
