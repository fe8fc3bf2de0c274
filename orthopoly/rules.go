package orthopoly

import "math/big"

// coeffRule is one (predicate, implementation) pair of the coefficient
// dispatch. Rules are tried top to bottom; the first match wins, so the
// closed-form rules shadow the general recurrence for their shapes.
type coeffRule struct {
	name  string
	fast  bool // skipped when fast paths are disabled
	match func(f Family, p []*big.Rat) bool
	build func(r *recurrence, n int, p []*big.Rat) ([]*big.Rat, error)
}

// coeffRules is the ordered coefficient dispatch table.
var coeffRules = []coeffRule{
	{
		name: "legendre",
		fast: true,
		match: func(f Family, p []*big.Rat) bool {
			return f == Jacobi && p[0].Sign() == 0 && p[1].Sign() == 0
		},
		build: func(_ *recurrence, n int, _ []*big.Rat) ([]*big.Rat, error) {
			return legendreCoeffs(n), nil
		},
	},
	{
		name:  "hermite",
		fast:  true,
		match: func(f Family, _ []*big.Rat) bool { return f == Hermite },
		build: func(_ *recurrence, n int, _ []*big.Rat) ([]*big.Rat, error) {
			return hermiteCoeffs(n), nil
		},
	},
	{
		name:  "laguerre",
		fast:  true,
		match: func(f Family, _ []*big.Rat) bool { return f == Laguerre },
		build: func(_ *recurrence, n int, p []*big.Rat) ([]*big.Rat, error) {
			return laguerreCoeffs(n, p[0]), nil
		},
	},
	{
		name:  "tscheb1",
		fast:  true,
		match: func(f Family, _ []*big.Rat) bool { return f == ChebyshevT },
		build: func(_ *recurrence, n int, _ []*big.Rat) ([]*big.Rat, error) {
			return chebyshevCoeffs(n, false), nil
		},
	},
	{
		name:  "tscheb2",
		fast:  true,
		match: func(f Family, _ []*big.Rat) bool { return f == ChebyshevU },
		build: func(_ *recurrence, n int, _ []*big.Rat) ([]*big.Rat, error) {
			return chebyshevCoeffs(n, true), nil
		},
	},
	{
		name:  "recurrence",
		match: func(Family, []*big.Rat) bool { return true },
		build: recurrenceCoeffs,
	},
}

// selectCoeffRule walks rules in order and returns the first match.
// ErrNoMatchingRule means the table has a gap for (f, p).
func selectCoeffRule(rules []coeffRule, f Family, p []*big.Rat, fast bool) (*coeffRule, error) {
	for i := range rules {
		if rules[i].fast && !fast {
			continue
		}
		if rules[i].match(f, p) {
			return &rules[i], nil
		}
	}

	return nil, ErrNoMatchingRule
}

// Coeffs returns the n+1 exact monomial coefficients of the family's degree-n
// polynomial; index i holds the coefficient of x^i.
//
// Contract:
//   - n ≥ 0, len(params) == f.Arity(), no nil parameter.
//   - parameter domains are NOT checked here (see OrthoP & co.).
//
// Errors: ErrUnknownFamily, ErrArity, ErrDomain (n < 0 or a vanishing
// recurrence denominator), ErrNoMatchingRule.
//
// Complexity: O(n) for the closed forms, O(n²) for the recurrence.
func Coeffs(f Family, n int, params []*big.Rat, opts ...Option) ([]*big.Rat, error) {
	o := gatherOptions(opts...)
	c, err := coeffsWith(coeffRules, f, n, params, o)
	if err != nil {
		return nil, polyErrorf(opCoeffs, err)
	}

	return c, nil
}

func coeffsWith(rules []coeffRule, f Family, n int, params []*big.Rat, o Options) ([]*big.Rat, error) {
	r, err := lookup(f, params)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrDomain
	}
	rule, err := selectCoeffRule(rules, f, params, o.fastPaths)
	if err != nil {
		return nil, err
	}
	o.logger.V(1).Info("coefficients", "family", f.String(), "order", n, "rule", rule.name)

	return rule.build(r, n, params)
}
