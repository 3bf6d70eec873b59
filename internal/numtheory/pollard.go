package numtheory

import "math/big"

// PollardRho looks for a nontrivial divisor of n with Floyd cycle detection
// on x -> x^2 + 1 (mod n), starting from 2, for at most cutoff iterations.
// It returns 1 when no divisor is found. cutoff <= 0 means ceil(ln n).
func PollardRho(n *big.Int, cutoff int) *big.Int {
	if n == nil || n.Cmp(big.NewInt(4)) < 0 {
		return big.NewInt(1)
	}
	if n.Bit(0) == 0 {
		return big.NewInt(2)
	}
	if cutoff <= 0 {
		cutoff = LnCeil(n)
	}

	step := func(v *big.Int) {
		v.Mul(v, v)
		v.Add(v, one)
		v.Mod(v, n)
	}

	x, y := big.NewInt(2), big.NewInt(2)
	diff, d := new(big.Int), new(big.Int)
	for i := 0; i < cutoff; i++ {
		step(x)
		step(y)
		step(y)

		diff.Sub(x, y)
		diff.Abs(diff)
		d.GCD(nil, nil, diff, n)

		switch {
		case d.Cmp(one) == 0:
			continue
		case d.Cmp(n) == 0:
			// The sequence cycled without separating the factors.
			return big.NewInt(1)
		default:
			return d
		}
	}
	return big.NewInt(1)
}
