package rsakit

import (
	"io"
	"log/slog"

	"github.com/vaultsandbox/rsakit/internal/random"
)

const (
	defaultMaxAttempts         = 100000
	defaultMaxExponentAttempts = 10000
	defaultMinFactors          = 4
	defaultMaxFactors          = 20
	defaultConcurrency         = 1
)

// generatorConfig holds configuration for a Generator.
type generatorConfig struct {
	rand   io.Reader
	logger *slog.Logger

	maxAttempts         int
	maxExponentAttempts int
	extraRounds         int
	concurrency         int

	// Lucas factor pool draw
	minFactors int
	maxFactors int

	exponentBelowTotient bool
	provablePrimes       bool
}

// Option configures a Generator.
type Option func(*generatorConfig)

// WithRand sets the random source. The reader must be safe for concurrent
// use if the generator itself is used from several goroutines.
func WithRand(r io.Reader) Option {
	return func(c *generatorConfig) {
		c.rand = r
	}
}

// WithSeed makes the generator deterministic: the same seed and options
// produce the same primes and keys.
func WithSeed(seed []byte) Option {
	return func(c *generatorConfig) {
		c.rand = random.NewSeeded(seed)
	}
}

// WithLogger sets the logger. Generation progress is logged at debug level.
// Default: a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *generatorConfig) {
		c.logger = logger
	}
}

// WithMaxAttempts caps the number of candidates tried by each prime search.
// Default: 100000
func WithMaxAttempts(n int) Option {
	return func(c *generatorConfig) {
		c.maxAttempts = n
	}
}

// WithMaxExponentAttempts caps the number of public exponents drawn during
// key generation.
// Default: 10000
func WithMaxExponentAttempts(n int) Option {
	return func(c *generatorConfig) {
		c.maxExponentAttempts = n
	}
}

// WithExtraRounds adds Miller-Rabin rounds on top of ceil(ln n) + 10.
func WithExtraRounds(n int) Option {
	return func(c *generatorConfig) {
		c.extraRounds = n
	}
}

// WithConcurrency sets the number of search workers used by the prime
// generators. Each worker draws from its own stream derived from the
// generator's random source; the first result wins.
// Default: 1
func WithConcurrency(n int) Option {
	return func(c *generatorConfig) {
		c.concurrency = n
	}
}

// WithFactorCount bounds how many odd small primes the provable prime
// generator draws for each candidate. 2 is always added.
// Default: 4 to 20
func WithFactorCount(min, max int) Option {
	return func(c *generatorConfig) {
		c.minFactors = min
		c.maxFactors = max
	}
}

// WithExponentBelowTotient draws the public exponent from [1, phi-1]
// instead of [1, n-1].
func WithExponentBelowTotient() Option {
	return func(c *generatorConfig) {
		c.exponentBelowTotient = true
	}
}

// WithProvablePrimes makes key generation use Lucas-certified primes instead
// of Miller-Rabin pseudoprimes.
func WithProvablePrimes() Option {
	return func(c *generatorConfig) {
		c.provablePrimes = true
	}
}
