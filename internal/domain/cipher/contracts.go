package cipher

import (
	"io"

	"rsa_crypt_service/internal/domain/keys"
)

// ProgressFunc receives the number of input bytes consumed by each block
// iteration. It is advisory only: implementations may display a progress
// bar, count bytes in tests, or do nothing. A nil ProgressFunc disables
// reporting.
type ProgressFunc func(bytes int64)

// BlockCipher streams a byte stream through RSA modular exponentiation,
// one fixed-size block at a time. Block boundaries are a deterministic
// function of the modulus size alone; the output carries no headers,
// lengths or padding markers.
//
// Both operations read the input sequentially to exhaustion and write
// blocks as they go. Neither closes or repositions the streams. Any read
// or write failure aborts the operation immediately with no partial-block
// recovery.
type BlockCipher interface {
	// Encrypt reads plaintext from reader in blocks of S(n)-1 bytes and
	// writes fixed-width ciphertext blocks of S(n)+1 bytes to writer,
	// where S(n) is the byte size of the key's modulus.
	Encrypt(reader io.Reader, writer io.Writer, key *keys.PublicKey, progress ProgressFunc) error

	// Decrypt reads ciphertext from reader in blocks of S(n)+1 bytes and
	// writes each recovered plaintext chunk at its true byte length,
	// without padding.
	Decrypt(reader io.Reader, writer io.Writer, key *keys.PrivateKey, progress ProgressFunc) error
}
