package orthopoly

import (
	"math/big"
	"strings"
)

// Family enumerates the closed set of classical orthogonal polynomial kinds.
type Family int

const (
	// Jacobi polynomials P_n^(a,b), a,b > -1. Legendre is Jacobi(0,0).
	Jacobi Family = iota
	// Gegenbauer (ultraspherical) polynomials C_n^(a), a > -1/2.
	Gegenbauer
	// Hermite polynomials H_n (physicists' normalisation).
	Hermite
	// Laguerre polynomials L_n^(a), a > -1.
	Laguerre
	// ChebyshevT polynomials of the first kind T_n ("Tscheb1").
	ChebyshevT
	// ChebyshevU polynomials of the second kind U_n ("Tscheb2").
	ChebyshevU

	familyCount
)

// String returns the registry name of f.
func (f Family) String() string {
	if f < 0 || f >= familyCount {
		return "Family(?)"
	}

	return registry[f].name
}

// Arity reports how many parameters the family takes.
func (f Family) Arity() int {
	if f < 0 || f >= familyCount {
		return 0
	}

	return registry[f].arity
}

// ParseFamily maps a registry name (case-insensitive) to its Family.
// Accepted: Jacobi, Gegenbauer, Hermite, Laguerre, Tscheb1, Tscheb2 and the
// aliases ChebyshevT, ChebyshevU. "Legendre" is not a family of its own; use
// Jacobi with a=b=0.
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "jacobi":
		return Jacobi, nil
	case "gegenbauer":
		return Gegenbauer, nil
	case "hermite":
		return Hermite, nil
	case "laguerre":
		return Laguerre, nil
	case "tscheb1", "chebyshevt":
		return ChebyshevT, nil
	case "tscheb2", "chebyshevu":
		return ChebyshevU, nil
	}

	return 0, ErrUnknownFamily
}

// recurrence describes one family: P_1 = A + Bx from seed, and for n ≥ 2
// P_n = (A + Bx)·P_{n-1} + C·P_{n-2} from step. Both are pure functions of
// (n, params); they never see the history of the recurrence.
type recurrence struct {
	name  string
	arity int
	seed  func(p []*big.Rat) (a, b *big.Rat)
	step  func(n int64, p []*big.Rat) (a, b, c *big.Rat, err error)
}

// registry is the fixed family table, indexed by Family. Built once at
// package initialisation and never mutated.
var registry = [familyCount]recurrence{
	Jacobi: {
		name:  "Jacobi",
		arity: 2,
		seed: func(p []*big.Rat) (*big.Rat, *big.Rat) {
			a, b := p[0], p[1]
			// ((a-b)/2, 1+(a+b)/2)
			sa := new(big.Rat).Sub(a, b)
			sa.Quo(sa, rat(2))
			sb := new(big.Rat).Add(a, b)
			sb.Quo(sb, rat(2))
			sb.Add(sb, rat(1))

			return sa, sb
		},
		step: jacobiStep,
	},
	Gegenbauer: {
		name:  "Gegenbauer",
		arity: 1,
		seed: func(p []*big.Rat) (*big.Rat, *big.Rat) {
			return rat(0), new(big.Rat).Mul(rat(2), p[0])
		},
		step: func(n int64, p []*big.Rat) (*big.Rat, *big.Rat, *big.Rat, error) {
			// r = 2(a-1)/n ; (0, 2+r, -1-r)
			r := new(big.Rat).Sub(p[0], rat(1))
			r.Mul(r, big.NewRat(2, n))
			b := new(big.Rat).Add(rat(2), r)
			c := new(big.Rat).Sub(rat(-1), r)

			return rat(0), b, c, nil
		},
	},
	Hermite: {
		name:  "Hermite",
		arity: 0,
		seed: func([]*big.Rat) (*big.Rat, *big.Rat) {
			return rat(0), rat(2)
		},
		step: func(n int64, _ []*big.Rat) (*big.Rat, *big.Rat, *big.Rat, error) {
			return rat(0), rat(2), rat(-2 * (n - 1)), nil
		},
	},
	Laguerre: {
		name:  "Laguerre",
		arity: 1,
		seed: func(p []*big.Rat) (*big.Rat, *big.Rat) {
			return new(big.Rat).Add(p[0], rat(1)), rat(-1)
		},
		step: func(n int64, p []*big.Rat) (*big.Rat, *big.Rat, *big.Rat, error) {
			// r = (a-1)/n ; (2+r, -1/n, -1-r)
			r := new(big.Rat).Sub(p[0], rat(1))
			r.Mul(r, big.NewRat(1, n))
			a := new(big.Rat).Add(rat(2), r)
			c := new(big.Rat).Sub(rat(-1), r)

			return a, big.NewRat(-1, n), c, nil
		},
	},
	ChebyshevT: {
		name:  "Tscheb1",
		arity: 0,
		seed: func([]*big.Rat) (*big.Rat, *big.Rat) {
			return rat(0), rat(1)
		},
		step: func(int64, []*big.Rat) (*big.Rat, *big.Rat, *big.Rat, error) {
			return rat(0), rat(2), rat(-1), nil
		},
	},
	ChebyshevU: {
		name:  "Tscheb2",
		arity: 0,
		seed: func([]*big.Rat) (*big.Rat, *big.Rat) {
			return rat(0), rat(2)
		},
		step: func(int64, []*big.Rat) (*big.Rat, *big.Rat, *big.Rat, error) {
			return rat(0), rat(2), rat(-1), nil
		},
	},
}

// jacobiStep evaluates the Jacobi three-term coefficients for order n:
//
//	A = (2n+a+b-1)(a²-b²) / (2n(n+a+b)(2n+a+b-2))
//	B = (2n+a+b-1)(2n+a+b) / (2n(n+a+b))
//	C = -(n+a-1)(n+b-1)(2n+a+b) / (n(n+a+b)(2n+a+b-2))
//
// Outside the domain a denominator can vanish; that is reported as ErrDomain
// instead of dividing by zero.
func jacobiStep(n int64, p []*big.Rat) (*big.Rat, *big.Rat, *big.Rat, error) {
	a, b := p[0], p[1]
	nr := rat(n)
	s := new(big.Rat).Add(a, b)                // a+b
	t := new(big.Rat).Add(rat(2*n), s)         // 2n+a+b
	t1 := new(big.Rat).Sub(t, rat(1))          // 2n+a+b-1
	t2 := new(big.Rat).Sub(t, rat(2))          // 2n+a+b-2
	ns := new(big.Rat).Add(nr, s)              // n+a+b
	den := new(big.Rat).Mul(rat(2*n), ns)      // 2n(n+a+b)
	if den.Sign() == 0 || t2.Sign() == 0 {
		return nil, nil, nil, ErrDomain
	}

	// A
	a2b2 := new(big.Rat).Mul(a, a)
	a2b2.Sub(a2b2, new(big.Rat).Mul(b, b))
	ca := new(big.Rat).Mul(t1, a2b2)
	ca.Quo(ca, new(big.Rat).Mul(den, t2))

	// B
	cb := new(big.Rat).Mul(t1, t)
	cb.Quo(cb, den)

	// C
	cc := new(big.Rat).Add(nr, a)
	cc.Sub(cc, rat(1))
	nb := new(big.Rat).Add(nr, b)
	nb.Sub(nb, rat(1))
	cc.Mul(cc, nb)
	cc.Mul(cc, t)
	cc.Neg(cc)
	dc := new(big.Rat).Mul(nr, ns)
	dc.Mul(dc, t2)
	cc.Quo(cc, dc)

	return ca, cb, cc, nil
}

// lookup resolves f and checks the parameter count.
func lookup(f Family, params []*big.Rat) (*recurrence, error) {
	if f < 0 || f >= familyCount {
		return nil, ErrUnknownFamily
	}
	r := &registry[f]
	if len(params) != r.arity {
		return nil, ErrArity
	}
	for _, p := range params {
		if p == nil {
			return nil, ErrDomain
		}
	}

	return r, nil
}

// Seed returns (A, B) with P_1(x) = A + Bx for the family f.
// The returned values are fresh and owned by the caller.
func Seed(f Family, params []*big.Rat) (a, b *big.Rat, err error) {
	r, err := lookup(f, params)
	if err != nil {
		return nil, nil, err
	}
	a, b = r.seed(params)

	return a, b, nil
}

// Step returns (A, B, C) with P_n = (A + Bx)·P_{n-1} + C·P_{n-2}.
// The step is undefined below order 2; n < 2 yields ErrDomain.
func Step(f Family, n int, params []*big.Rat) (a, b, c *big.Rat, err error) {
	r, err := lookup(f, params)
	if err != nil {
		return nil, nil, nil, err
	}
	if n < 2 {
		return nil, nil, nil, ErrDomain
	}

	return r.step(int64(n), params)
}

// rat returns a fresh *big.Rat holding the integer v.
func rat(v int64) *big.Rat { return new(big.Rat).SetInt64(v) }
