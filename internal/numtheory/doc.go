// Package numtheory implements the integer arithmetic behind textbook RSA:
// modular exponentiation, the extended Euclidean algorithm, a small-prime
// sieve, the Miller-Rabin compositeness test, Lucas primality certificates
// and Pollard's rho factorization.
//
// # Conventions
//
// All functions take and return *big.Int values. Inputs are never modified;
// every result is a freshly allocated value owned by the caller.
//
// Exported functions validate their preconditions and report violations as
// an [*ArgumentError], which matches [ErrInvalidArgument] under errors.Is.
// Functions that need randomness take an io.Reader so callers decide between
// crypto/rand and a deterministic stream.
//
// # Soundness
//
// [MillerRabin] has one-sided error: a composite verdict is always correct,
// a probable-prime verdict is wrong with probability at most 4^-rounds.
// A [Certificate] that passes [Certificate.Verify] is a proof of primality,
// since the Lucas criterion only holds for primes once the full factorization
// of n-1 is known.
package numtheory
