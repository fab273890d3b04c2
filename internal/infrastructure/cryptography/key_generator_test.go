//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"testing"

	"rsa_crypt_service/internal/domain/keys"
	pkgTesting "rsa_crypt_service/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKeyPairGenerator(t *testing.T) keys.KeyPairGenerator {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)
	generator, err := NewKeyPairGenerator(logger)
	require.NoError(t, err)
	return generator
}

func TestKeyPairGenerator_Generate(t *testing.T) {
	generator := setupKeyPairGenerator(t)

	t.Run("ProducesValidPairs", func(t *testing.T) {
		for _, bits := range []int{32, 64, 128, 256} {
			pair, err := generator.Generate(bits)
			require.NoError(t, err)
			assert.Equal(t, bits, pair.Public.N.BitLen())
			assert.True(t, pair.Public.IsDefaultExponent())
			assert.True(t, pair.IsValid(), "generated %d bit pair must validate", bits)
		}
	})

	t.Run("RejectsTooSmallKeySize", func(t *testing.T) {
		_, err := generator.Generate(16)
		assert.Error(t, err)
	})

	t.Run("GeneratedPairRoundTripsData", func(t *testing.T) {
		logger := pkgTesting.SetupTestLogger(t)
		blockCipher, err := NewBlockCipher(logger)
		require.NoError(t, err)

		pair, err := generator.Generate(128)
		require.NoError(t, err)

		plaintext := []byte("the quick brown fox jumps over the lazy dog")

		var encrypted, decrypted bytes.Buffer
		require.NoError(t, blockCipher.Encrypt(bytes.NewReader(plaintext), &encrypted, pair.Public, nil))
		require.NoError(t, blockCipher.Decrypt(bytes.NewReader(encrypted.Bytes()), &decrypted, pair.Private, nil))

		assert.Equal(t, plaintext, decrypted.Bytes())
	})

	t.Run("DistinctModuli", func(t *testing.T) {
		first, err := generator.Generate(64)
		require.NoError(t, err)
		second, err := generator.Generate(64)
		require.NoError(t, err)
		assert.NotEqual(t, first.Public.N, second.Public.N)
	})
}
