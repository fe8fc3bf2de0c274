package orthopoly

import "github.com/go-logr/logr"

// DefaultFastPaths enables the closed-form coefficient shortcuts. They are
// drop-in replacements for the recurrence and agree with it exactly.
const DefaultFastPaths = true

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	logger    logr.Logger // logr.Discard() unless WithLogger
	fastPaths bool        // DefaultFastPaths
}

// WithLogger routes V(1) traces (rule selection, orders) to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithFastPaths toggles the closed-form coefficient rules. Disabling them
// forces the general three-term recurrence for every family.
func WithFastPaths(on bool) Option {
	return func(o *Options) { o.fastPaths = on }
}

func defaultOptions() Options {
	return Options{
		logger:    logr.Discard(),
		fastPaths: DefaultFastPaths,
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
