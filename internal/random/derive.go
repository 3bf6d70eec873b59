package random

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Derive expands seed into count independent streams. Stream i is keyed by
// HKDF-SHA-512 with a zero salt and info "<label>:<i>", so distinct labels
// give unrelated families.
func Derive(seed []byte, label string, count int) ([]io.Reader, error) {
	salt := make([]byte, sha512.Size)
	streams := make([]io.Reader, count)
	for i := range streams {
		info := fmt.Appendf(nil, "%s:%d", label, i)
		key := make([]byte, SeedSize)
		if _, err := io.ReadFull(hkdf.New(sha512.New, seed, salt, info), key); err != nil {
			return nil, fmt.Errorf("derive stream %d: %w", i, err)
		}
		streams[i] = NewSeeded(key)
	}
	return streams, nil
}
