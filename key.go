package rsakit

import "math/big"

// PublicKey is the public half of an RSA key.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// Encrypt returns m^E mod N.
func (pk *PublicKey) Encrypt(m *big.Int) (*big.Int, error) {
	return Encrypt(pk.N, pk.E, m)
}

// Key is a full RSA key: N = P*Q, gcd(E, phi) = 1 and D = E^-1 mod phi,
// where phi = (P-1)(Q-1).
type Key struct {
	N *big.Int
	P *big.Int
	Q *big.Int
	E *big.Int
	D *big.Int
}

// Public returns a copy of the public key (N, E).
func (k *Key) Public() *PublicKey {
	return &PublicKey{
		N: new(big.Int).Set(k.N),
		E: new(big.Int).Set(k.E),
	}
}

// Phi returns (P-1)(Q-1).
func (k *Key) Phi() *big.Int {
	p1 := new(big.Int).Sub(k.P, big.NewInt(1))
	q1 := new(big.Int).Sub(k.Q, big.NewInt(1))
	return p1.Mul(p1, q1)
}

// Decrypt returns c^D mod N.
func (k *Key) Decrypt(c *big.Int) (*big.Int, error) {
	return Decrypt(k.N, k.D, c)
}

// Validate checks every RSA invariant of the key and reports all violations
// in a single *ValidationError.
func (k *Key) Validate() error {
	if k == nil || k.N == nil || k.P == nil || k.Q == nil || k.E == nil || k.D == nil {
		return &ValidationError{Errors: []string{"missing key component"}}
	}

	var problems []string

	if k.P.Cmp(k.Q) == 0 {
		problems = append(problems, "p equals q")
	}
	if !k.P.ProbablyPrime(20) {
		problems = append(problems, "p is not prime")
	}
	if !k.Q.ProbablyPrime(20) {
		problems = append(problems, "q is not prime")
	}
	if new(big.Int).Mul(k.P, k.Q).Cmp(k.N) != 0 {
		problems = append(problems, "n != p*q")
	}

	phi := k.Phi()
	if phi.Sign() <= 0 {
		return &ValidationError{Errors: append(problems, "phi is not positive")}
	}

	if k.E.Sign() <= 0 || k.E.Cmp(k.N) >= 0 {
		problems = append(problems, "e outside [1, n)")
	}
	if new(big.Int).GCD(nil, nil, k.E, phi).Cmp(big.NewInt(1)) != 0 {
		problems = append(problems, "gcd(e, phi) != 1")
	}
	if k.D.Sign() < 0 || k.D.Cmp(phi) >= 0 {
		problems = append(problems, "d outside [0, phi)")
	}
	ed := new(big.Int).Mul(k.E, k.D)
	if ed.Mod(ed, phi).Cmp(big.NewInt(1)) != 0 {
		problems = append(problems, "e*d mod phi != 1")
	}

	if len(problems) > 0 {
		return &ValidationError{Errors: problems}
	}
	return nil
}
