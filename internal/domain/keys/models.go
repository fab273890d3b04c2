package keys

import "math/big"

// DefaultExponent is the public exponent used when none is specified.
const DefaultExponent = 65537

// validationProbe is the fixed plaintext round-tripped by KeyPair.IsValid.
const validationProbe = 12345678

// PublicKey holds the public half of an RSA key pair. It can only be used
// for encryption, so passing the wrong key to a cipher operation is a
// compile-time error rather than a runtime one.
type PublicKey struct {
	// E is the public encryption exponent.
	E *big.Int
	// N is the modulus shared by both halves of the pair.
	N *big.Int
}

// PrivateKey holds the private half of an RSA key pair. It can only be
// used for decryption.
type PrivateKey struct {
	// D is the private decryption exponent.
	D *big.Int
	// N is the modulus shared by both halves of the pair.
	N *big.Int
}

// KeyPair contains both halves of an RSA key pair.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
}

// IsDefaultExponent reports whether the public exponent equals
// DefaultExponent.
func (k *PublicKey) IsDefaultExponent() bool {
	return k.E != nil && k.E.Cmp(big.NewInt(DefaultExponent)) == 0
}

// IsValid reports whether the key pair is structurally and semantically
// consistent: both halves present, moduli bit-for-bit equal, public
// exponent not exceeding the modulus, and a fixed probe value surviving
// an encrypt/decrypt round trip through the same modular exponentiation
// used for real data. It is a pure function and never returns an error;
// callers cannot tell from the result which check failed.
func (kp *KeyPair) IsValid() bool {
	if kp.Public == nil || kp.Private == nil {
		return false
	}
	if kp.Public.E == nil || kp.Public.N == nil || kp.Private.D == nil || kp.Private.N == nil {
		return false
	}
	if kp.Public.N.Cmp(kp.Private.N) != 0 {
		return false
	}
	if kp.Public.E.Cmp(kp.Public.N) > 0 {
		return false
	}

	// A structurally well-formed pair can still be functionally broken
	// (e.g. an exponent belonging to a different modulus), so exercise
	// the actual arithmetic.
	plain := big.NewInt(validationProbe)
	encoded := new(big.Int).Exp(plain, kp.Public.E, kp.Public.N)
	decoded := new(big.Int).Exp(encoded, kp.Private.D, kp.Private.N)
	return plain.Cmp(decoded) == 0
}
