package rsakit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vaultsandbox/rsakit/internal/numtheory"
	"github.com/vaultsandbox/rsakit/internal/random"
	"github.com/vaultsandbox/rsakit/internal/search"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidArgument is returned when an input violates a precondition,
	// such as a zero modulus or a zero divisor in ExtGCD.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrExhausted is returned when a generator spends its attempt budget
	// without producing a result.
	ErrExhausted = errors.New("generation exhausted")

	// ErrRandomSource is returned when the random source fails.
	ErrRandomSource = errors.New("random source failed")

	// ErrInvalidKey is returned when key material violates an RSA invariant.
	ErrInvalidKey = errors.New("invalid key")

	// ErrMessageOutOfRange is returned by CheckMessage for messages outside [0, n).
	ErrMessageOutOfRange = errors.New("message out of range")

	// ErrNotInvertible is returned when a value has no modular inverse.
	ErrNotInvertible = numtheory.ErrNotInvertible

	// ErrInvalidCertificate is returned when a primality certificate fails
	// verification.
	ErrInvalidCertificate = numtheory.ErrInvalidCertificate
)

// RSAKitError is implemented by all typed errors of this package.
type RSAKitError interface {
	error
	RSAKitError() // marker method
}

// ArgumentError describes a precondition violation.
type ArgumentError struct {
	Op      string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument: %s", e.Op, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// RSAKitError implements the RSAKitError interface.
func (e *ArgumentError) RSAKitError() {}

// ExhaustedError reports a retry loop that hit its attempt limit.
type ExhaustedError struct {
	Operation string
	Attempts  int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s exhausted after %d attempts", e.Operation, e.Attempts)
}

// Is implements errors.Is for sentinel error matching.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}

// RSAKitError implements the RSAKitError interface.
func (e *ExhaustedError) RSAKitError() {}

// RandomError wraps a failure of the random source.
type RandomError struct {
	Err error
}

func (e *RandomError) Error() string {
	return fmt.Sprintf("random source: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *RandomError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *RandomError) Is(target error) bool {
	return target == ErrRandomSource
}

// RSAKitError implements the RSAKitError interface.
func (e *RandomError) RSAKitError() {}

// ValidationError contains every invariant a key violates.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("key validation failed: %s", strings.Join(e.Errors, "; "))
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidKey
}

// RSAKitError implements the RSAKitError interface.
func (e *ValidationError) RSAKitError() {}

// wrapError converts internal errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var argErr *numtheory.ArgumentError
	if errors.As(err, &argErr) {
		return &ArgumentError{Op: argErr.Op, Message: argErr.Message}
	}

	var exhausted *search.ExhaustedError
	if errors.As(err, &exhausted) {
		return &ExhaustedError{Operation: exhausted.Operation, Attempts: exhausted.Attempts}
	}

	var readErr *random.ReadError
	if errors.As(err, &readErr) {
		return &RandomError{Err: readErr.Err}
	}

	return err
}
