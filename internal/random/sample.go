package random

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

var one = big.NewInt(1)

// ReadError reports a failure of the underlying random source.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("random source: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// Int returns a uniform value in [0, max). max must be positive.
func Int(r io.Reader, max *big.Int) (*big.Int, error) {
	if max.Sign() <= 0 {
		return nil, errors.New("random: max must be positive")
	}

	top := new(big.Int).Sub(max, one)
	bitLen := top.BitLen()
	if bitLen == 0 {
		return new(big.Int), nil
	}

	b := uint(bitLen % 8)
	if b == 0 {
		b = 8
	}

	buf := make([]byte, (bitLen+7)/8)
	n := new(big.Int)

	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, &ReadError{Err: err}
		}

		// Clear bits in the first byte so the candidate has at most bitLen bits.
		buf[0] &= uint8(int(1<<b) - 1)

		n.SetBytes(buf)
		if n.Cmp(max) < 0 {
			return n, nil
		}
	}
}

// IntRange returns a uniform value in the closed range [lo, hi].
func IntRange(r io.Reader, lo, hi *big.Int) (*big.Int, error) {
	if hi.Cmp(lo) < 0 {
		return nil, fmt.Errorf("random: empty range [%s, %s]", lo, hi)
	}
	width := new(big.Int).Sub(hi, lo)
	width.Add(width, one)

	n, err := Int(r, width)
	if err != nil {
		return nil, err
	}
	return n.Add(n, lo), nil
}

// Intn returns a uniform int in [0, n). n must be positive.
func Intn(r io.Reader, n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("random: n must be positive")
	}
	v, err := Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
