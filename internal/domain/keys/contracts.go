package keys

import (
	"context"
)

// KeyPairGenerator defines methods for generating RSA key pairs.
type KeyPairGenerator interface {
	// Generate creates a key pair whose modulus has the given bit length.
	// It returns the generated pair and any error encountered during the
	// generation process.
	Generate(bits int) (*KeyPair, error)
}

// KeyPairStore defines methods for reading and writing key material
// to files.
type KeyPairStore interface {
	// SavePublicKey writes the public key to the given file.
	SavePublicKey(key *PublicKey, filename string) error

	// SavePrivateKey writes the private key to the given file.
	SavePrivateKey(key *PrivateKey, filename string) error

	// ReadPublicKey reads a public key from the given file.
	ReadPublicKey(filename string) (*PublicKey, error)

	// ReadPrivateKey reads a private key from the given file.
	ReadPrivateKey(filename string) (*PrivateKey, error)
}

// KeyPairRepository defines the interface for key pair metadata persistence
type KeyPairRepository interface {
	Create(ctx context.Context, meta *KeyPairMeta) error
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)
	GetByID(ctx context.Context, id string) (*KeyPairMeta, error)
	DeleteByID(ctx context.Context, id string) error
}
