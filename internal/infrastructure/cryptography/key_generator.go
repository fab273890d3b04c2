package cryptography

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"rsa_crypt_service/internal/domain/keys"
	"rsa_crypt_service/internal/pkg/logger"
)

// MinModulusBits is the smallest modulus the block cipher can frame:
// below 32 bits the plaintext block capacity S(n)-1 drops to zero.
const MinModulusBits = 32

// keyPairGenerator struct that implements the KeyPairGenerator interface
type keyPairGenerator struct {
	logger logger.Logger
}

// NewKeyPairGenerator creates and returns a new instance of keyPairGenerator
func NewKeyPairGenerator(logger logger.Logger) (keys.KeyPairGenerator, error) {
	return &keyPairGenerator{
		logger: logger,
	}, nil
}

// Generate creates an RSA key pair whose modulus has the given bit length.
// The public exponent is fixed at 65537; the private exponent is its
// modular inverse with respect to phi(n). Prime draws that produce a
// degenerate pair (equal primes, wrong modulus size, no inverse) are
// simply retried.
func (g *keyPairGenerator) Generate(bits int) (*keys.KeyPair, error) {
	if bits < MinModulusBits {
		return nil, fmt.Errorf("key size must be at least %d bits, got %d", MinModulusBits, bits)
	}

	e := big.NewInt(keys.DefaultExponent)
	one := big.NewInt(1)

	for {
		p, err := rand.Prime(rand.Reader, bits/2)
		if err != nil {
			return nil, fmt.Errorf("failed to generate prime: %w", err)
		}
		q, err := rand.Prime(rand.Reader, bits-bits/2)
		if err != nil {
			return nil, fmt.Errorf("failed to generate prime: %w", err)
		}
		if p.Cmp(q) == 0 {
			continue
		}

		n := new(big.Int).Mul(p, q)
		if n.BitLen() != bits {
			continue
		}

		phi := new(big.Int).Mul(
			new(big.Int).Sub(p, one),
			new(big.Int).Sub(q, one),
		)

		d := new(big.Int).ModInverse(e, phi)
		if d == nil {
			// e shares a factor with phi(n); draw new primes.
			continue
		}

		g.logger.Info("Generated RSA key pair with ", bits, " bit modulus")
		return &keys.KeyPair{
			Public:  &keys.PublicKey{E: e, N: n},
			Private: &keys.PrivateKey{D: d, N: n},
		}, nil
	}
}
