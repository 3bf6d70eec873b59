package numtheory

import (
	"math"
	"math/big"
	"testing"
)

func TestLn(t *testing.T) {
	tests := []struct {
		n    *big.Int
		want float64
	}{
		{big.NewInt(1), 0},
		{big.NewInt(1000), math.Log(1000)},
		{big.NewInt(8051), math.Log(8051)},
		{new(big.Int).Lsh(big.NewInt(1), 128), 128 * math.Ln2},
		{new(big.Int).Lsh(big.NewInt(3), 500), math.Log(3) + 500*math.Ln2},
	}

	for _, tt := range tests {
		got := Ln(tt.n)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Ln(%s) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestLnFloorCeil(t *testing.T) {
	pow128 := new(big.Int).Lsh(big.NewInt(1), 128)

	if got := LnFloor(pow128); got != 88 {
		t.Errorf("LnFloor(2^128) = %d, want 88", got)
	}
	if got := LnCeil(pow128); got != 89 {
		t.Errorf("LnCeil(2^128) = %d, want 89", got)
	}
	if got := LnFloor(big.NewInt(8051)); got != 8 {
		t.Errorf("LnFloor(8051) = %d, want 8", got)
	}
	if got := LnCeil(big.NewInt(0)); got != 0 {
		t.Errorf("LnCeil(0) = %d, want 0", got)
	}
	if got := LnFloor(big.NewInt(-5)); got != 0 {
		t.Errorf("LnFloor(-5) = %d, want 0", got)
	}
	if !math.IsInf(Ln(big.NewInt(0)), -1) {
		t.Error("Ln(0) should be -Inf")
	}
}
