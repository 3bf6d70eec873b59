package numtheory

import "math/big"

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// ModExp returns a^d mod n.
//
// The base is reduced into [0, n) first, so negative and oversized bases are
// accepted. d = 0 yields 1 mod n. n must be positive and d non-negative.
func ModExp(n, a, d *big.Int) (*big.Int, error) {
	if n == nil || a == nil || d == nil {
		return nil, &ArgumentError{Op: "modexp", Message: "nil operand"}
	}
	if n.Sign() <= 0 {
		return nil, &ArgumentError{Op: "modexp", Message: "modulus must be positive"}
	}
	if d.Sign() < 0 {
		return nil, &ArgumentError{Op: "modexp", Message: "exponent must be non-negative"}
	}
	return powMod(n, a, d), nil
}

// powMod is ModExp without argument checks. n must be positive, d non-negative.
func powMod(n, a, d *big.Int) *big.Int {
	res := new(big.Int).Mod(one, n)
	base := new(big.Int).Mod(a, n)
	e := new(big.Int).Set(d)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			res.Mul(res, base)
			res.Mod(res, n)
		}
		base.Mul(base, base)
		base.Mod(base, n)
		e.Rsh(e, 1)
	}
	return res
}
