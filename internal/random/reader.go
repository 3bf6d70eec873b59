package random

import (
	"crypto/rand"
	"io"

	"github.com/cloudflare/circl/xof"
)

// SeedSize is the size in bytes of seeds produced by [Derive] and [NewSeed].
const SeedSize = 32

// defaultReader is the process-wide random source.
var defaultReader io.Reader = rand.Reader

// Default returns the process-wide random source.
func Default() io.Reader {
	return defaultReader
}

// NewSeeded returns a deterministic stream keyed by seed.
func NewSeeded(seed []byte) io.Reader {
	x := xof.SHAKE256.New()
	// Writes to a fresh XOF never fail.
	_, _ = x.Write(seed)
	return x
}

// NewSeed reads a SeedSize seed from r.
func NewSeed(r io.Reader) ([]byte, error) {
	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(r, seed); err != nil {
		return nil, &ReadError{Err: err}
	}
	return seed, nil
}
