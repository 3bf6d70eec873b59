package numtheory

import (
	"fmt"
	"math/big"
)

// ExtGCD returns g = gcd(a, b) together with Bezout coefficients s, t such
// that a*s + b*t = g. g is never negative. b must be non-zero.
func ExtGCD(a, b *big.Int) (g, s, t *big.Int, err error) {
	if a == nil || b == nil {
		return nil, nil, nil, &ArgumentError{Op: "ext_gcd", Message: "nil operand"}
	}
	if b.Sign() == 0 {
		return nil, nil, nil, &ArgumentError{Op: "ext_gcd", Message: "b must be non-zero"}
	}

	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Quo(oldR, r)
		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}

	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}
	return oldR, oldS, oldT, nil
}

// ModInverse returns x in [0, m) with a*x = 1 (mod m).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if a == nil || m == nil {
		return nil, &ArgumentError{Op: "mod_inverse", Message: "nil operand"}
	}
	if m.Sign() <= 0 {
		return nil, &ArgumentError{Op: "mod_inverse", Message: "modulus must be positive"}
	}

	g, s, _, err := ExtGCD(a, m)
	if err != nil {
		return nil, err
	}
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrNotInvertible, a, m, g)
	}
	return s.Mod(s, m), nil
}
