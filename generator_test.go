package rsakit

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/rsakit/internal/random"
)

// zeroReader yields zero bytes, so every draw is the bottom of its range.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func seeded(t *testing.T, seed string, opts ...Option) *Generator {
	t.Helper()
	g, err := New(append([]Option{WithSeed([]byte(seed))}, opts...)...)
	require.NoError(t, err)
	return g
}

func TestNew_Defaults(t *testing.T) {
	g, err := New()
	require.NoError(t, err)
	assert.NotNil(t, g.rand)
	assert.NotNil(t, g.logger)
	assert.Equal(t, defaultMaxAttempts, g.cfg.maxAttempts)
	assert.Equal(t, defaultConcurrency, g.cfg.concurrency)
	assert.Equal(t, defaultMinFactors, g.lucas.MinFactors)
	assert.Equal(t, defaultMaxFactors, g.lucas.MaxFactors)
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero attempts", WithMaxAttempts(0)},
		{"zero exponent attempts", WithMaxExponentAttempts(0)},
		{"negative extra rounds", WithExtraRounds(-1)},
		{"zero concurrency", WithConcurrency(0)},
		{"inverted factor count", WithFactorCount(10, 4)},
		{"too many factors", WithFactorCount(4, 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestGenerator_IsProbablePrime(t *testing.T) {
	g := seeded(t, "is-probable-prime")

	tests := []struct {
		n    string
		want bool
	}{
		{"2", true},
		{"3", true},
		{"4", false},
		{"561", false},
		{"41041", false},
		{"7919", true},
		{"170141183460469231731687303715884105727", true}, // 2^127 - 1
		{"340282366920938463463374607431768211457", false}, // 2^128 + 1
	}

	for _, tt := range tests {
		t.Run(tt.n, func(t *testing.T) {
			n, ok := new(big.Int).SetString(tt.n, 10)
			require.True(t, ok)
			got, err := g.IsProbablePrime(n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerator_IsProbablePrime_Errors(t *testing.T) {
	g, err := New(WithRand(iotest.ErrReader(errors.New("entropy gone"))))
	require.NoError(t, err)

	_, err = g.IsProbablePrime(big.NewInt(7919))
	assert.ErrorIs(t, err, ErrRandomSource)

	_, err = g.IsProbablePrime(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGenerator_Pseudoprime(t *testing.T) {
	g := seeded(t, "pseudoprime")

	for i := 0; i < 3; i++ {
		p, err := g.Pseudoprime(context.Background())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.Cmp(primeLower), 0)
		assert.LessOrEqual(t, p.Cmp(primeUpper), 0)
		assert.True(t, p.ProbablyPrime(20), "%s is composite", p)
	}
}

func TestGenerator_Pseudoprime_Deterministic(t *testing.T) {
	a, err := seeded(t, "same").Pseudoprime(context.Background())
	require.NoError(t, err)
	b, err := seeded(t, "same").Pseudoprime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, a.Cmp(b))
}

func TestGenerator_Pseudoprime_Exhausted(t *testing.T) {
	// Every draw is 2^123, which is even.
	g, err := New(WithRand(zeroReader{}), WithMaxAttempts(3))
	require.NoError(t, err)

	_, err = g.Pseudoprime(context.Background())
	require.ErrorIs(t, err, ErrExhausted)

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Attempts)
}

func TestGenerator_Pseudoprime_Cancelled(t *testing.T) {
	g := seeded(t, "cancelled")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Pseudoprime(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerator_Pseudoprime_Concurrent(t *testing.T) {
	g := seeded(t, "concurrent", WithConcurrency(4))

	p, err := g.Pseudoprime(context.Background())
	require.NoError(t, err)
	assert.True(t, p.ProbablyPrime(20))
	assert.GreaterOrEqual(t, p.Cmp(primeLower), 0)
}

func TestNew_UsesDefaultReader(t *testing.T) {
	restore := random.SetDefaultReaderForTesting(zeroReader{})
	defer restore()

	g, err := New(WithMaxAttempts(2))
	require.NoError(t, err)

	_, err = g.Pseudoprime(context.Background())
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestGenerator_ProvablePrime(t *testing.T) {
	g := seeded(t, "provable")

	cert, err := g.ProvablePrime(context.Background())
	require.NoError(t, err)
	require.NoError(t, cert.Verify())

	assert.Greater(t, cert.N.Cmp(primeLower), 0)
	assert.Less(t, cert.N.Cmp(primeUpper), 0)
	assert.True(t, cert.N.ProbablyPrime(20))

	product := big.NewInt(1)
	for _, f := range cert.Factors {
		product.Mul(product, f)
	}
	assert.Equal(t, 0, product.Cmp(new(big.Int).Sub(cert.N, big.NewInt(1))))
	assert.Equal(t, int64(2), cert.Factors[0].Int64())
}

func TestGenerator_ProvablePrime_RandomFailure(t *testing.T) {
	g, err := New(WithRand(iotest.ErrReader(errors.New("entropy gone"))))
	require.NoError(t, err)

	_, err = g.ProvablePrime(context.Background())
	assert.ErrorIs(t, err, ErrRandomSource)
}

func TestGenerator_GenerateKey(t *testing.T) {
	g := seeded(t, "keys")
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		key, err := g.GenerateKey(ctx)
		require.NoError(t, err)
		require.NoError(t, key.Validate())

		assert.NotEqual(t, 0, key.P.Cmp(key.Q))
		assert.Less(t, key.E.Cmp(key.N), 0)
		assert.Positive(t, key.E.Sign())

		for _, m := range []int64{0, 1, 2, 42, 1 << 40} {
			msg := big.NewInt(m)
			require.NoError(t, CheckMessage(key.N, msg))

			c, err := key.Public().Encrypt(msg)
			require.NoError(t, err)
			got, err := key.Decrypt(c)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(msg), "round trip of %d", m)
		}
	}
}

func TestGenerator_GenerateKey_RandomMessagesRoundTrip(t *testing.T) {
	g := seeded(t, "random-messages", WithConcurrency(3))
	r := random.NewSeeded([]byte("messages"))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		key, err := g.GenerateKey(ctx)
		require.NoError(t, err)

		last := new(big.Int).Sub(key.N, big.NewInt(1))
		messages := []*big.Int{last}
		for j := 0; j < 30; j++ {
			m, err := random.IntRange(r, big.NewInt(0), last)
			require.NoError(t, err)
			messages = append(messages, m)
		}

		for _, m := range messages {
			c, err := Encrypt(key.N, key.E, m)
			require.NoError(t, err)
			got, err := Decrypt(key.N, key.D, c)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(m), "key %d: round trip of %s", i, m)
		}
	}
}

func TestGenerator_GenerateKey_Deterministic(t *testing.T) {
	a, err := seeded(t, "deterministic-key").GenerateKey(context.Background())
	require.NoError(t, err)
	b, err := seeded(t, "deterministic-key").GenerateKey(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.N.String(), b.N.String())
	assert.Equal(t, a.E.String(), b.E.String())
	assert.Equal(t, a.D.String(), b.D.String())
}

func TestGenerator_GenerateKey_ExponentBelowTotient(t *testing.T) {
	g := seeded(t, "below-phi", WithExponentBelowTotient())

	key, err := g.GenerateKey(context.Background())
	require.NoError(t, err)
	require.NoError(t, key.Validate())
	assert.Less(t, key.E.Cmp(key.Phi()), 0)
}

func TestGenerator_GenerateKey_ProvablePrimes(t *testing.T) {
	g := seeded(t, "provable-key", WithProvablePrimes())

	key, err := g.GenerateKey(context.Background())
	require.NoError(t, err)
	require.NoError(t, key.Validate())
	assert.Greater(t, key.P.Cmp(primeLower), 0)
	assert.Greater(t, key.Q.Cmp(primeLower), 0)
}

func TestGenerator_GenerateKey_Exhausted(t *testing.T) {
	g, err := New(WithRand(zeroReader{}), WithMaxAttempts(2))
	require.NoError(t, err)

	_, err = g.GenerateKey(context.Background())
	assert.ErrorIs(t, err, ErrExhausted)
}
