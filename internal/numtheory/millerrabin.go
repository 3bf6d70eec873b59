package numtheory

import (
	"fmt"
	"io"
	"math/big"

	"github.com/vaultsandbox/rsakit/internal/random"
)

// ExtraRounds is added to ceil(ln n) by MillerRabinRounds.
const ExtraRounds = 10

// MillerRabinRounds returns the number of independent trials used for n:
// ceil(ln n) + ExtraRounds.
func MillerRabinRounds(n *big.Int) int {
	return LnCeil(n) + ExtraRounds
}

// MillerRabin reports whether n survives rounds Miller-Rabin trials with
// bases drawn uniformly from [2, n-1] using r. 2 is prime; every other even
// number and every n < 2 is composite without consuming randomness.
func MillerRabin(n *big.Int, rounds int, r io.Reader) (bool, error) {
	if n == nil {
		return false, &ArgumentError{Op: "miller_rabin", Message: "nil candidate"}
	}
	if n.Cmp(two) < 0 {
		return false, nil
	}
	if n.Cmp(two) == 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	nMinus1 := new(big.Int).Sub(n, one)
	odd, pot := splitPowerOfTwo(nMinus1)

	for i := 0; i < rounds; i++ {
		a, err := random.IntRange(r, two, nMinus1)
		if err != nil {
			return false, fmt.Errorf("draw base: %w", err)
		}
		if !strongProbablePrime(n, nMinus1, odd, pot, a) {
			return false, nil
		}
	}
	return true, nil
}

// IsStrongProbablePrime reports whether odd n > 2 passes a single
// Miller-Rabin trial with base a.
func IsStrongProbablePrime(n, a *big.Int) bool {
	if n.Cmp(two) <= 0 || n.Bit(0) == 0 {
		return n.Cmp(two) == 0
	}
	nMinus1 := new(big.Int).Sub(n, one)
	odd, pot := splitPowerOfTwo(nMinus1)
	return strongProbablePrime(n, nMinus1, odd, pot, a)
}

// splitPowerOfTwo returns odd and pot with m = odd * 2^pot. m must be positive.
func splitPowerOfTwo(m *big.Int) (*big.Int, int) {
	pot := int(m.TrailingZeroBits())
	return new(big.Int).Rsh(m, uint(pot)), pot
}

func strongProbablePrime(n, nMinus1, odd *big.Int, pot int, a *big.Int) bool {
	x := powMod(n, a, odd)
	if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}

	for j := 1; j < pot; j++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
		// A non-trivial square root of 1.
		if x.Cmp(one) == 0 {
			return false
		}
	}
	return false
}
