package orthopoly

import "math/big"

// Closed-form coefficient builders. Each one must agree entry-for-entry with
// recurrenceCoeffs for the parameter shape its rule accepts; all divisions
// are exact rational divisions.

// legendreCoeffs: c[n] = (2n-1)!!/n!, then stride-2 downward
// c[n-2i] = -c[n-2i+2]·(n-2i+1)(n-2i+2) / ((2n-2i+1)·2i).
func legendreCoeffs(n int) []*big.Rat {
	c := zeroVector(n + 1)
	c[n].SetFrac(doubleFactorial(2*n-1), factorial(n))

	var i, m int
	for i = 1; 2*i <= n; i++ {
		m = n - 2*i
		c[m].Mul(c[m+2], rat(int64((m+1)*(m+2))))
		c[m].Quo(c[m], rat(int64((2*n-2*i+1)*2*i)))
		c[m].Neg(c[m])
	}

	return c
}

// hermiteCoeffs for the physicists' H_n.
//
//	even n=2k: c[0] = (-2)^k (n-1)!!,   c[2i]   = -2c[2i-2](k-i+1)/((2i-1)i)
//	odd n=2k+1: c[1] = 2(-2)^k n!!,     c[2i+1] = -2c[2i-1](k-i+1)/(i(2i+1))
func hermiteCoeffs(n int) []*big.Rat {
	c := zeroVector(n + 1)
	k := n / 2
	lead := new(big.Int).Exp(big.NewInt(-2), big.NewInt(int64(k)), nil)

	var i int
	if n%2 == 0 {
		c[0].SetInt(lead.Mul(lead, doubleFactorial(n-1)))
		for i = 1; i <= k; i++ {
			c[2*i].Mul(c[2*i-2], rat(int64(-2*(k-i+1))))
			c[2*i].Quo(c[2*i], rat(int64((2*i-1)*i)))
		}

		return c
	}

	lead.Mul(lead, doubleFactorial(n))
	c[1].SetInt(lead.Lsh(lead, 1))
	for i = 1; i <= k; i++ {
		c[2*i+1].Mul(c[2*i-1], rat(int64(-2*(k-i+1))))
		c[2*i+1].Quo(c[2*i+1], rat(int64(i*(2*i+1))))
	}

	return c
}

// laguerreCoeffs for L_n^(a): c[n] = (-1)^n/n!, then for i = n..1
// c[i-1] = -c[i]·i·(a+i)/(n-i+1).
func laguerreCoeffs(n int, a *big.Rat) []*big.Rat {
	c := zeroVector(n + 1)
	c[n].SetFrac(big.NewInt(1), factorial(n))
	if n%2 == 1 {
		c[n].Neg(c[n])
	}

	var (
		i   int
		api = new(big.Rat)
	)
	for i = n; i >= 1; i-- {
		api.Add(a, rat(int64(i)))
		c[i-1].Mul(c[i], api)
		c[i-1].Mul(c[i-1], rat(int64(-i)))
		c[i-1].Quo(c[i-1], rat(int64(n-i+1)))
	}

	return c
}

// chebyshevCoeffs covers both kinds. First kind: c[n] = 2^(n-1),
// c[n-2i] = -c[n-2i+2](n-2i+2)(n-2i+1)/((n-i)·4i). Second kind: c[n] = 2^n
// and the divisor uses (n-i+1).
func chebyshevCoeffs(n int, second bool) []*big.Rat {
	if n == 0 {
		return []*big.Rat{rat(1)}
	}
	c := zeroVector(n + 1)
	shift := uint(n - 1)
	if second {
		shift = uint(n)
	}
	c[n].SetInt(new(big.Int).Lsh(big.NewInt(1), shift))

	var i, m, d int
	for i = 1; 2*i <= n; i++ {
		m = n - 2*i
		d = n - i
		if second {
			d++
		}
		c[m].Mul(c[m+2], rat(int64(-(m+2)*(m+1))))
		c[m].Quo(c[m], rat(int64(d*4*i)))
	}

	return c
}

// factorial returns n! (1 for n ≤ 1).
func factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}

// doubleFactorial returns n!! = n(n-2)(n-4)…; (-1)!! = 0!! = 1.
func doubleFactorial(n int) *big.Int {
	r := big.NewInt(1)
	for k := n; k > 1; k -= 2 {
		r.Mul(r, big.NewInt(int64(k)))
	}

	return r
}
