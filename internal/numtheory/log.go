package numtheory

import (
	"math"
	"math/big"
)

// Ln returns the natural logarithm of n. It returns -Inf for n <= 0.
func Ln(n *big.Int) float64 {
	if n.Sign() <= 0 {
		return math.Inf(-1)
	}
	mant := new(big.Float)
	exp := new(big.Float).SetInt(n).MantExp(mant)
	m, _ := mant.Float64()
	return math.Log(m) + float64(exp)*math.Ln2
}

// LnFloor returns floor(ln n), or 0 for n < 1.
func LnFloor(n *big.Int) int {
	if n.Sign() <= 0 {
		return 0
	}
	return int(math.Floor(Ln(n)))
}

// LnCeil returns ceil(ln n), or 0 for n < 1.
func LnCeil(n *big.Int) int {
	if n.Sign() <= 0 {
		return 0
	}
	return int(math.Ceil(Ln(n)))
}
