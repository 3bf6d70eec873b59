package rsakit

import (
	"fmt"
	"math/big"

	"github.com/vaultsandbox/rsakit/internal/numtheory"
)

// Encrypt returns message^e mod n. The message is not range checked; values
// at or above n do not survive a round trip. Use CheckMessage first.
func Encrypt(n, e, message *big.Int) (*big.Int, error) {
	c, err := numtheory.ModExp(n, message, e)
	return c, wrapError(err)
}

// Decrypt returns ciphertext^d mod n.
func Decrypt(n, d, ciphertext *big.Int) (*big.Int, error) {
	m, err := numtheory.ModExp(n, ciphertext, d)
	return m, wrapError(err)
}

// CheckMessage reports whether message lies in [0, n).
func CheckMessage(n, message *big.Int) error {
	if n == nil || message == nil {
		return &ArgumentError{Op: "check_message", Message: "nil operand"}
	}
	if message.Sign() < 0 || message.Cmp(n) >= 0 {
		return fmt.Errorf("%w: %s not in [0, %s)", ErrMessageOutOfRange, message, n)
	}
	return nil
}
