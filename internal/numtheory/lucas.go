package numtheory

import (
	"fmt"
	"io"
	"math/big"

	"github.com/vaultsandbox/rsakit/internal/random"
)

// PoolBound is the sieve bound for the Lucas factor pool.
const PoolBound = 128

// Certificate proves that N is prime: Factors multiply to N-1 and Witness
// satisfies the Lucas criterion for every distinct factor.
type Certificate struct {
	N       *big.Int
	Factors []*big.Int
	Witness *big.Int
}

// LucasParams controls candidate construction.
type LucasParams struct {
	// Pool holds the odd primes a factor set is drawn from. 2 is always added.
	Pool []int64
	// MinFactors and MaxFactors bound the number of odd primes drawn.
	MinFactors int
	MaxFactors int
	// Lower and Upper are exclusive bounds on the candidate.
	Lower *big.Int
	Upper *big.Int
}

// DefaultLucasParams returns the parameters for candidates in (2^123, 2^128)
// built from 4 to 20 odd primes below 128.
func DefaultLucasParams() LucasParams {
	return LucasParams{
		Pool:       SmallPrimes(PoolBound)[1:],
		MinFactors: 4,
		MaxFactors: 20,
		Lower:      new(big.Int).Lsh(one, 123),
		Upper:      new(big.Int).Lsh(one, 128),
	}
}

// Validate checks that the parameters can produce a candidate.
func (p LucasParams) Validate() error {
	switch {
	case p.MinFactors < 1:
		return &ArgumentError{Op: "lucas", Message: "at least one odd factor is required"}
	case p.MaxFactors < p.MinFactors:
		return &ArgumentError{Op: "lucas", Message: "max factors below min factors"}
	case p.MaxFactors > len(p.Pool):
		return &ArgumentError{Op: "lucas", Message: fmt.Sprintf("max factors %d exceeds pool of %d primes", p.MaxFactors, len(p.Pool))}
	case p.Lower == nil || p.Upper == nil || p.Lower.Sign() <= 0:
		return &ArgumentError{Op: "lucas", Message: "bounds must be positive"}
	case new(big.Int).Lsh(p.Lower, 1).Cmp(new(big.Int).Sub(p.Upper, one)) >= 0:
		return &ArgumentError{Op: "lucas", Message: "upper bound must exceed twice the lower bound plus one"}
	}
	for _, q := range p.Pool {
		if q <= 2 {
			return &ArgumentError{Op: "lucas", Message: "pool must hold odd primes only"}
		}
	}
	return nil
}

// LucasCandidate builds n = (product of small primes) + 1 with n in
// (Lower, Upper) and returns it with the factor multiset of n-1 in the order
// generated. It returns a nil n when the initial product already leaves the
// range; callers treat that as a failed attempt.
func LucasCandidate(r io.Reader, p LucasParams) (*big.Int, []*big.Int, error) {
	span := p.MaxFactors - p.MinFactors + 1
	k, err := random.Intn(r, span)
	if err != nil {
		return nil, nil, err
	}
	k += p.MinFactors

	set, err := sample(r, p.Pool, k)
	if err != nil {
		return nil, nil, err
	}
	set = append([]int64{2}, set...)

	n := big.NewInt(1)
	factors := make([]*big.Int, 0, len(set))
	for _, q := range set {
		f := big.NewInt(q)
		factors = append(factors, f)
		n.Mul(n, f)
	}

	limit := new(big.Int).Sub(p.Upper, one)
	if n.Cmp(limit) >= 0 {
		return nil, nil, nil
	}

	next := new(big.Int)
	eligible := make([]*big.Int, 0, len(set))
	for n.Cmp(p.Lower) <= 0 {
		eligible = eligible[:0]
		for _, f := range factors[:len(set)] {
			if next.Mul(n, f).Cmp(limit) < 0 {
				eligible = append(eligible, f)
			}
		}
		// Doubling stays in range while n <= Lower, so eligible always holds 2.
		i, err := random.Intn(r, len(eligible))
		if err != nil {
			return nil, nil, err
		}
		n.Mul(n, eligible[i])
		factors = append(factors, eligible[i])
	}

	return n.Add(n, one), factors, nil
}

// sample draws k distinct elements of pool with a partial Fisher-Yates shuffle.
func sample(r io.Reader, pool []int64, k int) ([]int64, error) {
	shuffled := append([]int64(nil), pool...)
	for i := 0; i < k; i++ {
		j, err := random.Intn(r, len(shuffled)-i)
		if err != nil {
			return nil, err
		}
		shuffled[i], shuffled[i+j] = shuffled[i+j], shuffled[i]
	}
	return shuffled[:k], nil
}

// LucasWitness returns the smallest a in [2, floor(ln n)] with a^(n-1) = 1
// and a^((n-1)/p) != 1 (mod n) for every prime p in factors, or nil when
// there is none. factors must multiply to n-1.
func LucasWitness(n *big.Int, factors []*big.Int) *big.Int {
	nMinus1 := new(big.Int).Sub(n, one)
	exps := make([]*big.Int, 0, len(factors))
	for _, p := range distinct(factors) {
		exps = append(exps, new(big.Int).Quo(nMinus1, p))
	}

	limit := int64(LnFloor(n))
	for a := int64(2); a <= limit; a++ {
		base := big.NewInt(a)
		// A Fermat witness proves n composite; no later base can certify it.
		if powMod(n, base, nMinus1).Cmp(one) != 0 {
			return nil
		}
		if lucasHolds(n, base, exps) {
			return base
		}
	}
	return nil
}

func lucasHolds(n, a *big.Int, exps []*big.Int) bool {
	for _, e := range exps {
		if powMod(n, a, e).Cmp(one) == 0 {
			return false
		}
	}
	return true
}

func distinct(factors []*big.Int) []*big.Int {
	seen := make(map[string]struct{}, len(factors))
	out := make([]*big.Int, 0, len(factors))
	for _, f := range factors {
		key := f.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return out
}

// Verify checks the certificate: every factor is prime, the factors multiply
// to N-1, and Witness satisfies the Lucas criterion.
func (c *Certificate) Verify() error {
	if c == nil || c.N == nil || c.Witness == nil {
		return fmt.Errorf("%w: missing fields", ErrInvalidCertificate)
	}
	if c.N.Cmp(two) <= 0 {
		return fmt.Errorf("%w: n must exceed 2", ErrInvalidCertificate)
	}
	if c.Witness.Cmp(two) < 0 || c.Witness.Cmp(c.N) >= 0 {
		return fmt.Errorf("%w: witness %s out of range", ErrInvalidCertificate, c.Witness)
	}

	product := big.NewInt(1)
	for _, f := range c.Factors {
		if f == nil || !f.ProbablyPrime(20) {
			return fmt.Errorf("%w: factor %v is not prime", ErrInvalidCertificate, f)
		}
		product.Mul(product, f)
	}
	nMinus1 := new(big.Int).Sub(c.N, one)
	if product.Cmp(nMinus1) != 0 {
		return fmt.Errorf("%w: factors multiply to %s, want %s", ErrInvalidCertificate, product, nMinus1)
	}

	if powMod(c.N, c.Witness, nMinus1).Cmp(one) != 0 {
		return fmt.Errorf("%w: witness^(n-1) != 1", ErrInvalidCertificate)
	}
	for _, p := range distinct(c.Factors) {
		e := new(big.Int).Quo(nMinus1, p)
		if powMod(c.N, c.Witness, e).Cmp(one) == 0 {
			return fmt.Errorf("%w: witness^((n-1)/%s) = 1", ErrInvalidCertificate, p)
		}
	}
	return nil
}
