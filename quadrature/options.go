package quadrature

import "github.com/go-logr/logr"

const (
	// DefaultTolerance is the off-diagonal threshold of the eigen solver,
	// relative to the largest absolute matrix entry.
	DefaultTolerance = 1e-15

	// DefaultRotationsPerEntry scales the rotation cap with n²: the solver
	// gives up after DefaultRotationsPerEntry·n² rotations.
	DefaultRotationsPerEntry = 50
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger       logr.Logger // logr.Discard() unless WithLogger
	tol          float64     // DefaultTolerance
	maxRotations int         // 0 = DefaultRotationsPerEntry·n²
}

// WithLogger routes V(1) traces (matrix size, rotations used) to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithTolerance sets the relative off-diagonal threshold. Panics if tol ≤ 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic(panicBadTolerance)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxRotations caps the number of Jacobi rotations. Panics if n < 1.
func WithMaxRotations(n int) Option {
	if n < 1 {
		panic(panicBadRotations)
	}

	return func(o *Options) { o.maxRotations = n }
}

func defaultOptions() Options {
	return Options{
		logger: logr.Discard(),
		tol:    DefaultTolerance,
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

// rotationCap resolves the rotation cap for an n×n problem.
func (o Options) rotationCap(n int) int {
	if o.maxRotations > 0 {
		return o.maxRotations
	}

	return DefaultRotationsPerEntry * n * n
}
