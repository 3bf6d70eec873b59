package rsakit

import (
	"math/big"

	"github.com/vaultsandbox/rsakit/internal/numtheory"
)

// Certificate is a Lucas primality certificate: N - 1 is the product of
// Factors, and Witness has order N - 1 modulo N.
type Certificate = numtheory.Certificate

// ModExp returns a^d mod n by square-and-multiply. n must be positive and d
// non-negative.
func ModExp(n, a, d *big.Int) (*big.Int, error) {
	r, err := numtheory.ModExp(n, a, d)
	return r, wrapError(err)
}

// SmallPrimes returns the primes p with 2 <= p <= bound in ascending order.
func SmallPrimes(bound int) []int64 {
	return numtheory.SmallPrimes(bound)
}

// ExtGCD returns s and t such that a*s + b*t = gcd(a, b). b must be non-zero.
func ExtGCD(a, b *big.Int) (s, t *big.Int, err error) {
	_, s, t, err = numtheory.ExtGCD(a, b)
	return s, t, wrapError(err)
}

// GCD returns the non-negative gcd(a, b). b must be non-zero.
func GCD(a, b *big.Int) (*big.Int, error) {
	g, _, _, err := numtheory.ExtGCD(a, b)
	return g, wrapError(err)
}

// ModInverse returns x in [0, m) with a*x = 1 (mod m).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	x, err := numtheory.ModInverse(a, m)
	return x, wrapError(err)
}

// FactorSemiprime runs Pollard's rho for at most cutoff iterations and
// returns a nontrivial divisor of n, or 1 if none was found.
// cutoff <= 0 selects ceil(ln n).
func FactorSemiprime(n *big.Int, cutoff int) *big.Int {
	return numtheory.PollardRho(n, cutoff)
}
