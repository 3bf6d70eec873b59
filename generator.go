package rsakit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"

	"github.com/vaultsandbox/rsakit/internal/numtheory"
	"github.com/vaultsandbox/rsakit/internal/random"
	"github.com/vaultsandbox/rsakit/internal/search"
)

// Prime size bounds. Pseudoprimes are drawn from [2^PrimeMinBits,
// 2^PrimeMaxBits]; provable primes lie strictly inside that range.
const (
	PrimeMinBits = 123
	PrimeMaxBits = 128
)

var (
	primeLower = new(big.Int).Lsh(big.NewInt(1), PrimeMinBits)
	primeUpper = new(big.Int).Lsh(big.NewInt(1), PrimeMaxBits)
)

// Generator produces primes and RSA keys from a random source.
//
// A Generator may be used from several goroutines only if its random source
// is safe for concurrent use; crypto/rand is, seeded streams are not.
type Generator struct {
	rand   io.Reader
	logger *slog.Logger
	cfg    generatorConfig
	lucas  numtheory.LucasParams
}

// New creates a Generator.
func New(opts ...Option) (*Generator, error) {
	cfg := generatorConfig{
		maxAttempts:         defaultMaxAttempts,
		maxExponentAttempts: defaultMaxExponentAttempts,
		concurrency:         defaultConcurrency,
		minFactors:          defaultMinFactors,
		maxFactors:          defaultMaxFactors,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rand == nil {
		cfg.rand = random.Default()
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	switch {
	case cfg.maxAttempts < 1:
		return nil, &ArgumentError{Op: "new", Message: "max attempts must be positive"}
	case cfg.maxExponentAttempts < 1:
		return nil, &ArgumentError{Op: "new", Message: "max exponent attempts must be positive"}
	case cfg.extraRounds < 0:
		return nil, &ArgumentError{Op: "new", Message: "extra rounds must not be negative"}
	case cfg.concurrency < 1:
		return nil, &ArgumentError{Op: "new", Message: "concurrency must be positive"}
	}

	lucas := numtheory.DefaultLucasParams()
	lucas.MinFactors = cfg.minFactors
	lucas.MaxFactors = cfg.maxFactors
	if err := lucas.Validate(); err != nil {
		return nil, wrapError(err)
	}

	return &Generator{
		rand:   cfg.rand,
		logger: cfg.logger,
		cfg:    cfg,
		lucas:  lucas,
	}, nil
}

// IsProbablePrime runs ceil(ln n) + 10 Miller-Rabin rounds on n, plus any
// rounds added with WithExtraRounds. A false result is always correct.
func (g *Generator) IsProbablePrime(n *big.Int) (bool, error) {
	ok, err := g.millerRabin(n, g.rand)
	return ok, wrapError(err)
}

func (g *Generator) millerRabin(n *big.Int, r io.Reader) (bool, error) {
	if n == nil {
		return false, &numtheory.ArgumentError{Op: "miller_rabin", Message: "nil candidate"}
	}
	rounds := numtheory.MillerRabinRounds(n) + g.cfg.extraRounds
	return numtheory.MillerRabin(n, rounds, r)
}

// Pseudoprime samples integers uniformly from [2^123, 2^128] until one
// passes IsProbablePrime.
func (g *Generator) Pseudoprime(ctx context.Context) (*big.Int, error) {
	streams, err := g.streams("rsakit:pseudoprime")
	if err != nil {
		return nil, wrapError(err)
	}

	budget := search.Budget{MaxAttempts: g.cfg.maxAttempts}
	p, err := search.First(ctx, "pseudoprime", budget, streams, g.pseudoprimeStep)
	if err != nil {
		g.logFailure("pseudoprime", err)
		return nil, wrapError(err)
	}
	return p, nil
}

func (g *Generator) pseudoprimeStep(r io.Reader, attempt int) (*big.Int, bool, error) {
	n, err := random.IntRange(r, primeLower, primeUpper)
	if err != nil {
		return nil, false, err
	}
	ok, err := g.millerRabin(n, r)
	if err != nil {
		return nil, false, err
	}
	if ok {
		g.logger.Debug("pseudoprime found", "attempt", attempt, "bits", n.BitLen())
	}
	return n, ok, nil
}

// ProvablePrime builds candidates n = (product of small primes) + 1 in
// (2^123, 2^128) until one is certified prime by the Lucas criterion.
func (g *Generator) ProvablePrime(ctx context.Context) (*Certificate, error) {
	streams, err := g.streams("rsakit:lucas")
	if err != nil {
		return nil, wrapError(err)
	}

	budget := search.Budget{MaxAttempts: g.cfg.maxAttempts}
	cert, err := search.First(ctx, "provable prime", budget, streams, g.lucasStep)
	if err != nil {
		g.logFailure("provable prime", err)
		return nil, wrapError(err)
	}
	return cert, nil
}

func (g *Generator) lucasStep(r io.Reader, attempt int) (*Certificate, bool, error) {
	n, factors, err := numtheory.LucasCandidate(r, g.lucas)
	if err != nil {
		return nil, false, err
	}
	if n == nil {
		return nil, false, nil
	}

	w := numtheory.LucasWitness(n, factors)
	if w == nil {
		return nil, false, nil
	}

	g.logger.Debug("provable prime found",
		"attempt", attempt,
		"bits", n.BitLen(),
		"factors", len(factors),
		"witness", w.Int64(),
	)
	return &Certificate{N: n, Factors: factors, Witness: w}, true, nil
}

// exponent is an accepted public exponent with its Bezout coefficient
// against phi.
type exponent struct {
	e, s *big.Int
}

// GenerateKey produces an RSA key from two distinct primes.
//
// e is drawn uniformly from [1, n-1] (or [1, phi-1] with
// WithExponentBelowTotient) until gcd(e, phi) = 1, and d is the inverse of e
// modulo phi in [0, phi).
func (g *Generator) GenerateKey(ctx context.Context) (*Key, error) {
	p, err := g.prime(ctx)
	if err != nil {
		return nil, err
	}

	budget := search.Budget{MaxAttempts: g.cfg.maxAttempts}
	q, err := search.Run(ctx, "distinct prime", budget, g.rand,
		func(_ io.Reader, _ int) (*big.Int, bool, error) {
			q, err := g.prime(ctx)
			if err != nil {
				return nil, false, err
			}
			return q, q.Cmp(p) != 0, nil
		})
	if err != nil {
		g.logFailure("distinct prime", err)
		return nil, wrapError(err)
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, big.NewInt(1)), new(big.Int).Sub(q, big.NewInt(1)))

	bound := n
	if g.cfg.exponentBelowTotient {
		bound = phi
	}
	hi := new(big.Int).Sub(bound, big.NewInt(1))

	budget = search.Budget{MaxAttempts: g.cfg.maxExponentAttempts}
	exp, err := search.Run(ctx, "public exponent", budget, g.rand,
		func(r io.Reader, _ int) (exponent, bool, error) {
			e, err := random.IntRange(r, big.NewInt(1), hi)
			if err != nil {
				return exponent{}, false, err
			}
			gcd, s, _, err := numtheory.ExtGCD(e, phi)
			if err != nil {
				return exponent{}, false, err
			}
			return exponent{e: e, s: s}, gcd.Cmp(big.NewInt(1)) == 0, nil
		})
	if err != nil {
		g.logFailure("public exponent", err)
		return nil, wrapError(err)
	}

	d := exp.s.Mod(exp.s, phi)

	g.logger.Debug("key generated", "modulus_bits", n.BitLen())
	return &Key{N: n, P: p, Q: q, E: exp.e, D: d}, nil
}

// prime returns one prime for key generation.
func (g *Generator) prime(ctx context.Context) (*big.Int, error) {
	if g.cfg.provablePrimes {
		cert, err := g.ProvablePrime(ctx)
		if err != nil {
			return nil, err
		}
		return cert.N, nil
	}
	return g.Pseudoprime(ctx)
}

// streams returns one random stream per search worker. A single worker reads
// the generator's source directly; several workers get HKDF-derived streams
// keyed by a fresh seed so their candidates are independent.
func (g *Generator) streams(label string) ([]io.Reader, error) {
	if g.cfg.concurrency == 1 {
		return []io.Reader{g.rand}, nil
	}
	seed, err := random.NewSeed(g.rand)
	if err != nil {
		return nil, err
	}
	return random.Derive(seed, label, g.cfg.concurrency)
}

func (g *Generator) logFailure(op string, err error) {
	var exhausted *search.ExhaustedError
	if errors.As(err, &exhausted) {
		g.logger.Warn("generation exhausted", "operation", op, "attempts", exhausted.Attempts)
		return
	}
	g.logger.Debug("generation stopped", "operation", op, "error", err)
}
