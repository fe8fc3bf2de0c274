package zeta

import (
	"github.com/ericlagergren/decimal"

	"github.com/katalvlaran/specfun/precision"
)

// zetaRule is one (predicate, implementation) pair of the ζ dispatch.
// Rules are tried top to bottom; the first match wins.
type zetaRule struct {
	name  string
	match func(s *decimal.Big, digits int, o Options) bool
	eval  func(pc *precision.Context, s *decimal.Big, o Options) (*decimal.Big, error)
}

// zetaRules is the ordered ζ dispatch table. Exact values and the pole come
// first, then reflection for s < 1/2, then the s ≥ 1/2 algorithms.
// Filled in init: reflection re-enters zeta, which reads the table.
var zetaRules []zetaRule

func init() {
	zetaRules = []zetaRule{
		{
			name:  "zero",
			match: func(s *decimal.Big, _ int, _ Options) bool { return s.Sign() == 0 },
			eval: func(*precision.Context, *decimal.Big, Options) (*decimal.Big, error) {
				return decimal.New(-5, 1), nil
			},
		},
		{
			name:  "pole",
			match: func(s *decimal.Big, _ int, _ Options) bool { return s.Cmp(dec(1)) == 0 },
			eval: func(*precision.Context, *decimal.Big, Options) (*decimal.Big, error) {
				return nil, ErrPole
			},
		},
		{
			name:  "trivial-zero",
			match: func(s *decimal.Big, _ int, _ Options) bool { return isNegativeEven(s) },
			eval: func(*precision.Context, *decimal.Big, Options) (*decimal.Big, error) {
				return decimal.New(0, 0), nil
			},
		},
		{
			name:  "reflection",
			match: func(s *decimal.Big, _ int, _ Options) bool { return s.Cmp(decimal.New(5, 1)) < 0 },
			eval:  reflection,
		},
		{
			name:  "euler",
			match: func(_ *decimal.Big, _ int, o Options) bool { return o.algorithm == EulerProduct },
			eval:  eulerProduct,
		},
		{
			name: "direct",
			match: func(s *decimal.Big, digits int, o Options) bool {
				switch o.algorithm {
				case Direct:
					return true
				case Auto:
					f, _ := s.Float64()

					return f >= directThreshold(digits)
				}

				return false
			},
			eval: direct,
		},
		{
			name:  "borwein",
			match: func(_ *decimal.Big, _ int, o Options) bool { return o.algorithm == Auto || o.algorithm == Borwein },
			eval:  borwein,
		},
	}
}

// Zeta returns the Riemann zeta function ζ(s) for real s, rounded to the
// working precision of pc. A nil pc evaluates at precision.DefaultDigits.
//
// Branches, in order:
//   - s = 0: -1/2 exactly.
//   - s = 1: ErrPole.
//   - s = -2, -4, …: 0 exactly.
//   - s < 1/2: ζ(s) = 2^s π^(s-1) sin(πs/2) Γ(1-s) ζ(1-s).
//   - s above 1 + p·ln10/(ln p + 0.1): direct summation.
//   - otherwise: Borwein's alternating series.
//
// WithAlgorithm replaces the last two branches. The precision register is
// elevated by the guard digits for the duration of the call and restored on
// every exit path, including errors.
func Zeta(pc *precision.Context, s *decimal.Big, opts ...Option) (*decimal.Big, error) {
	o := gatherOptions(opts...)
	if pc == nil {
		pc = precision.Default()
	}
	if s == nil || !s.IsFinite() {
		return nil, zetaErrorf(opZeta, ErrDomain)
	}
	v, err := zeta(pc, s, o)
	if err != nil {
		return nil, zetaErrorf(opZeta, err)
	}

	return v, nil
}

// zeta evaluates at pc's current digits. The reflection rule re-enters here.
func zeta(pc *precision.Context, s *decimal.Big, o Options) (*decimal.Big, error) {
	digits := pc.Digits()
	rule, err := selectZetaRule(zetaRules, s, digits, o)
	if err != nil {
		return nil, err
	}
	o.logger.V(1).Info("zeta", "s", s.String(), "digits", digits, "rule", rule.name)

	restore := pc.Elevate(o.guard)
	defer restore()
	v, err := rule.eval(pc, s, o)
	if err != nil {
		return nil, err
	}
	restore()

	return pc.Round(v), nil
}

// selectZetaRule walks rules in order and returns the first match.
func selectZetaRule(rules []zetaRule, s *decimal.Big, digits int, o Options) (*zetaRule, error) {
	for i := range rules {
		if rules[i].match(s, digits, o) {
			return &rules[i], nil
		}
	}

	return nil, ErrNoMatchingRule
}

// isNegativeEven reports s ∈ {-2, -4, …}.
func isNegativeEven(s *decimal.Big) bool {
	if s.Sign() >= 0 || !s.IsInt() {
		return false
	}
	k, ok := s.Int64()

	return ok && k%2 == 0
}
