package rsakit

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/vaultsandbox/rsakit/internal/numtheory"
	"github.com/vaultsandbox/rsakit/internal/random"
	"github.com/vaultsandbox/rsakit/internal/search"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrInvalidArgument", ErrInvalidArgument},
		{"ErrExhausted", ErrExhausted},
		{"ErrRandomSource", ErrRandomSource},
		{"ErrInvalidKey", ErrInvalidKey},
		{"ErrMessageOutOfRange", ErrMessageOutOfRange},
		{"ErrNotInvertible", ErrNotInvertible},
		{"ErrInvalidCertificate", ErrInvalidCertificate},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestArgumentError(t *testing.T) {
	err := &ArgumentError{Op: "modexp", Message: "modulus must be positive"}

	if got, want := err.Error(), "modexp: invalid argument: modulus must be positive"; got != want {
		t.Errorf("Error() = %s, want %s", got, want)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("errors.Is(ArgumentError, ErrInvalidArgument) = false")
	}
	if errors.Is(err, ErrExhausted) {
		t.Error("errors.Is(ArgumentError, ErrExhausted) = true")
	}
}

func TestExhaustedError(t *testing.T) {
	err := &ExhaustedError{Operation: "pseudoprime", Attempts: 5}

	if got, want := err.Error(), "pseudoprime exhausted after 5 attempts"; got != want {
		t.Errorf("Error() = %s, want %s", got, want)
	}
	if !errors.Is(err, ErrExhausted) {
		t.Error("errors.Is(ExhaustedError, ErrExhausted) = false")
	}

	wrapped := fmt.Errorf("generate key: %w", err)
	var target *ExhaustedError
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As failed on wrapped ExhaustedError")
	}
	if target.Attempts != 5 {
		t.Errorf("Attempts = %d, want 5", target.Attempts)
	}
}

func TestRandomError(t *testing.T) {
	err := &RandomError{Err: io.ErrUnexpectedEOF}

	if !errors.Is(err, ErrRandomSource) {
		t.Error("errors.Is(RandomError, ErrRandomSource) = false")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("RandomError does not unwrap to its cause")
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Errors: []string{"p equals q", "n != p*q"}}

	if got, want := err.Error(), "key validation failed: p equals q; n != p*q"; got != want {
		t.Errorf("Error() = %s, want %s", got, want)
	}
	if !errors.Is(err, ErrInvalidKey) {
		t.Error("errors.Is(ValidationError, ErrInvalidKey) = false")
	}
}

func TestRSAKitErrorInterface(t *testing.T) {
	errs := []RSAKitError{
		&ArgumentError{},
		&ExhaustedError{},
		&RandomError{},
		&ValidationError{},
	}
	for _, err := range errs {
		var target RSAKitError
		if !errors.As(err, &target) {
			t.Errorf("%T does not satisfy RSAKitError", err)
		}
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "argument",
			err:      &numtheory.ArgumentError{Op: "ext_gcd", Message: "b must be non-zero"},
			sentinel: ErrInvalidArgument,
		},
		{
			name:     "exhausted",
			err:      &search.ExhaustedError{Operation: "pseudoprime", Attempts: 3},
			sentinel: ErrExhausted,
		},
		{
			name:     "random source",
			err:      fmt.Errorf("draw base: %w", &random.ReadError{Err: io.EOF}),
			sentinel: ErrRandomSource,
		},
		{
			name:     "not invertible passes through",
			err:      fmt.Errorf("%w: 4 mod 8", numtheory.ErrNotInvertible),
			sentinel: ErrNotInvertible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapError(tt.err)
			if !errors.Is(got, tt.sentinel) {
				t.Errorf("wrapError(%v) = %v, want match for %v", tt.err, got, tt.sentinel)
			}
		})
	}

	if wrapError(nil) != nil {
		t.Error("wrapError(nil) != nil")
	}
}

func TestWrapError_PublicTypes(t *testing.T) {
	var argErr *ArgumentError
	if !errors.As(wrapError(&numtheory.ArgumentError{Op: "modexp", Message: "x"}), &argErr) {
		t.Fatal("expected *ArgumentError")
	}
	if argErr.Op != "modexp" {
		t.Errorf("Op = %s, want modexp", argErr.Op)
	}

	var exhausted *ExhaustedError
	if !errors.As(wrapError(&search.ExhaustedError{Operation: "lucas", Attempts: 9}), &exhausted) {
		t.Fatal("expected *ExhaustedError")
	}
	if exhausted.Operation != "lucas" || exhausted.Attempts != 9 {
		t.Errorf("got %+v", exhausted)
	}
}
