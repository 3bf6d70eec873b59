package numtheory

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a caller violates a precondition,
	// such as a non-positive modulus.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotInvertible is returned when a value has no inverse modulo m.
	ErrNotInvertible = errors.New("value is not invertible")

	// ErrInvalidCertificate is returned when a primality certificate does not
	// satisfy the Lucas criterion or its factorization is wrong.
	ErrInvalidCertificate = errors.New("invalid primality certificate")
)

// ArgumentError describes a precondition violation.
type ArgumentError struct {
	Op      string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
