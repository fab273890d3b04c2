//go:build unit
// +build unit

package keys

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validTestMeta() *KeyPairMeta {
	return &KeyPairMeta{
		ID:              uuid.NewString(),
		Algorithm:       "RSA",
		KeySize:         2048,
		PublicKeyPath:   "/keys/pair.pub",
		PrivateKeyPath:  "/keys/pair",
		DateTimeCreated: time.Now(),
	}
}

func TestKeyPairMeta_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*KeyPairMeta)
		expectedError bool
	}{
		{
			name:          "valid metadata",
			mutate:        func(*KeyPairMeta) {},
			expectedError: false,
		},
		{
			name:          "missing id",
			mutate:        func(m *KeyPairMeta) { m.ID = "" },
			expectedError: true,
		},
		{
			name:          "non uuid id",
			mutate:        func(m *KeyPairMeta) { m.ID = "not-a-uuid" },
			expectedError: true,
		},
		{
			name:          "unsupported algorithm",
			mutate:        func(m *KeyPairMeta) { m.Algorithm = "ECDSA" },
			expectedError: true,
		},
		{
			name:          "key size below minimum",
			mutate:        func(m *KeyPairMeta) { m.KeySize = 16 },
			expectedError: true,
		},
		{
			name:          "missing public key path",
			mutate:        func(m *KeyPairMeta) { m.PublicKeyPath = "" },
			expectedError: true,
		},
		{
			name:          "missing private key path",
			mutate:        func(m *KeyPairMeta) { m.PrivateKeyPath = "" },
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := validTestMeta()
			tt.mutate(meta)

			err := meta.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKeyPairQuery_Validate(t *testing.T) {
	assert.NoError(t, (&KeyPairQuery{}).Validate())
	assert.NoError(t, (&KeyPairQuery{SortBy: "key_size", SortOrder: "desc", Limit: 10}).Validate())
	assert.Error(t, (&KeyPairQuery{SortBy: "modulus"}).Validate())
	assert.Error(t, (&KeyPairQuery{SortOrder: "sideways"}).Validate())
	assert.Error(t, (&KeyPairQuery{Limit: -1}).Validate())
}
