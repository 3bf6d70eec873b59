// Package random provides the random sources used by prime and key
// generation.
//
// Three kinds of stream are available:
//
//   - [Default]: crypto/rand.Reader, replaceable in tests with
//     [SetDefaultReaderForTesting].
//   - [NewSeeded]: a deterministic SHAKE256 stream keyed by a seed, for
//     reproducible runs.
//   - [Derive]: independent child streams expanded from one seed with
//     HKDF-SHA-512, one per search worker, so parallel workers never draw
//     correlated candidates.
//
// [Int], [IntRange] and [Intn] draw uniform values from any io.Reader by
// rejection sampling, consuming the stream byte by byte so that seeded
// streams give the same values on every run.
//
// Seeded streams are not safe for concurrent use.
package random
