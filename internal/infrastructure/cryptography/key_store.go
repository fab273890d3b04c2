package cryptography

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"rsa_crypt_service/internal/domain/keys"
	"rsa_crypt_service/internal/pkg/logger"
)

// keyPairStore struct that implements the KeyPairStore interface.
//
// Key files are single-line hex text:
//   - public file:  "<modulus>" or "<modulus> <exponent>", the exponent
//     being omitted when it is the default 65537;
//   - private file: "<exponent> <modulus>".
//
// The reader is told which variant it expects, so a private key file fed
// to ReadPublicKey parses but yields a key whose pair fails validation.
type keyPairStore struct {
	logger logger.Logger
}

// NewKeyPairStore creates and returns a new instance of keyPairStore
func NewKeyPairStore(logger logger.Logger) (keys.KeyPairStore, error) {
	return &keyPairStore{
		logger: logger,
	}, nil
}

// SavePublicKey writes the public key to a hex text file, omitting the
// exponent when it is the default.
func (s *keyPairStore) SavePublicKey(key *keys.PublicKey, filename string) error {
	line := fmt.Sprintf("%x", key.N)
	if !key.IsDefaultExponent() {
		line = fmt.Sprintf("%x %x", key.N, key.E)
	}

	if err := os.WriteFile(filepath.Clean(filename), []byte(line+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write public key file: %w", err)
	}

	s.logger.Info("Saved public key ", filename)
	return nil
}

// SavePrivateKey writes the private key to a hex text file.
func (s *keyPairStore) SavePrivateKey(key *keys.PrivateKey, filename string) error {
	line := fmt.Sprintf("%x %x", key.D, key.N)

	if err := os.WriteFile(filepath.Clean(filename), []byte(line+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write private key file: %w", err)
	}

	s.logger.Info("Saved private key ", filename)
	return nil
}

// ReadPublicKey reads a public key from a hex text file. A file with a
// single field carries the default exponent.
func (s *keyPairStore) ReadPublicKey(filename string) (*keys.PublicKey, error) {
	fields, err := readKeyFields(filename)
	if err != nil {
		return nil, err
	}

	switch len(fields) {
	case 1:
		n, err := parseHexInt(fields[0])
		if err != nil {
			return nil, fmt.Errorf("invalid public key file %s: %w", filename, err)
		}
		return &keys.PublicKey{E: big.NewInt(keys.DefaultExponent), N: n}, nil
	case 2:
		n, err := parseHexInt(fields[0])
		if err != nil {
			return nil, fmt.Errorf("invalid public key file %s: %w", filename, err)
		}
		e, err := parseHexInt(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid public key file %s: %w", filename, err)
		}
		return &keys.PublicKey{E: e, N: n}, nil
	default:
		return nil, fmt.Errorf("invalid public key file %s: expected 1 or 2 fields, got %d", filename, len(fields))
	}
}

// ReadPrivateKey reads a private key from a hex text file.
func (s *keyPairStore) ReadPrivateKey(filename string) (*keys.PrivateKey, error) {
	fields, err := readKeyFields(filename)
	if err != nil {
		return nil, err
	}

	if len(fields) != 2 {
		return nil, fmt.Errorf("invalid private key file %s: expected 2 fields, got %d", filename, len(fields))
	}

	d, err := parseHexInt(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid private key file %s: %w", filename, err)
	}
	n, err := parseHexInt(fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid private key file %s: %w", filename, err)
	}

	return &keys.PrivateKey{D: d, N: n}, nil
}

func readKeyFields(filename string) ([]string, error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("unable to read key file: %w", err)
	}
	return strings.Fields(string(data)), nil
}

func parseHexInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("malformed hex integer %q", s)
	}
	return v, nil
}
