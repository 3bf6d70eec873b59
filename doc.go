// Package rsakit implements textbook RSA on arbitrary-precision integers,
// together with the number theory it rests on.
//
// The package provides square-and-multiply modular exponentiation, the
// extended Euclidean algorithm, a Miller-Rabin pseudoprime generator, a
// Lucas-certified provable prime generator, RSA key generation, and RSA
// encryption and decryption without padding. It is a teaching and testing
// tool: it makes no attempt at constant-time arithmetic or side-channel
// resistance, and must not protect real data.
//
// Basic usage:
//
//	gen, err := rsakit.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	key, err := gen.GenerateKey(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, _ := rsakit.Encrypt(key.N, key.E, big.NewInt(42))
//	m, _ := rsakit.Decrypt(key.N, key.D, c)
//	fmt.Println(m) // 42
//
// # Randomness
//
// Generators read from crypto/rand by default. [WithSeed] switches to a
// deterministic stream so that runs can be reproduced; [WithRand] accepts any
// io.Reader.
//
// # Bounded generation
//
// Every rejection-sampling loop is capped. When a cap is hit the generator
// returns an [*ExhaustedError]; use errors.Is(err, ErrExhausted).
package rsakit
