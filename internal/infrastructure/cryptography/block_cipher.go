package cryptography

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"rsa_crypt_service/internal/domain/cipher"
	"rsa_crypt_service/internal/domain/keys"
	"rsa_crypt_service/internal/pkg/logger"
)

// encryptionByteOffset is the one-byte safety margin applied to the block
// sizes. Reading one byte less than the modulus size keeps every plaintext
// integer strictly below the modulus; writing one byte more guarantees the
// buffer holds any value up to modulus-1.
const encryptionByteOffset = 1

// blockCipher struct that implements the BlockCipher interface
type blockCipher struct {
	logger logger.Logger
}

// NewBlockCipher creates and returns a new instance of blockCipher
func NewBlockCipher(logger logger.Logger) (cipher.BlockCipher, error) {
	return &blockCipher{
		logger: logger,
	}, nil
}

// sizeInBytes returns the number of bytes needed to store all the bits
// of n-1, i.e. the bit length of n rounded down to whole bytes.
func sizeInBytes(n *big.Int) int {
	return n.BitLen() / 8
}

// littleEndianToInt decodes buf as a little-endian unsigned integer.
func littleEndianToInt(buf []byte) *big.Int {
	be := make([]byte, len(buf))
	for i, b := range buf {
		be[len(buf)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}

// intToLittleEndian encodes v as little-endian bytes at its true byte
// length. Zero encodes as a single zero byte.
func intToLittleEndian(v *big.Int) []byte {
	be := v.Bytes()
	if len(be) == 0 {
		return []byte{0}
	}
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	return le
}

// readBlock fills buf from reader, stopping early only at end of stream.
// It returns the number of bytes read; a clean end of stream is not an
// error, whether it happens before or in the middle of a block.
func readBlock(reader io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(reader, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return n, nil
	}
	return n, err
}

// Encrypt reads plaintext blocks of S(n)-1 bytes and writes fixed-width
// ciphertext blocks of S(n)+1 bytes, little-endian, zero-padded on the
// high-order side.
func (c *blockCipher) Encrypt(reader io.Reader, writer io.Writer, key *keys.PublicKey, progress cipher.ProgressFunc) error {
	maxBytesRead := sizeInBytes(key.N) - encryptionByteOffset
	maxBytesWrite := sizeInBytes(key.N) + encryptionByteOffset
	if maxBytesRead < 1 {
		return fmt.Errorf("modulus too small for block encryption: %d bits", key.N.BitLen())
	}

	sourceBytes := make([]byte, maxBytesRead)
	destinyBytes := make([]byte, maxBytesWrite)

	bytesAmountRead := maxBytesRead
	for bytesAmountRead == maxBytesRead {
		// Unread tail bytes must decode as zero.
		for i := range sourceBytes {
			sourceBytes[i] = 0
		}

		var err error
		bytesAmountRead, err = readBlock(reader, sourceBytes)
		if err != nil {
			return fmt.Errorf("failed to read plaintext block: %w", err)
		}
		if bytesAmountRead == 0 {
			break
		}

		message := littleEndianToInt(sourceBytes)
		encrypted := new(big.Int).Exp(message, key.E, key.N)

		encoded := intToLittleEndian(encrypted)
		copy(destinyBytes, encoded)
		for i := len(encoded); i < maxBytesWrite; i++ {
			destinyBytes[i] = 0
		}

		if _, err := writer.Write(destinyBytes); err != nil {
			return fmt.Errorf("failed to write ciphertext block: %w", err)
		}

		if progress != nil {
			progress(int64(bytesAmountRead))
		}
	}

	c.logger.Info("RSA block encryption succeeded")
	return nil
}

// Decrypt reads fixed-width ciphertext blocks of S(n)+1 bytes and writes
// each recovered plaintext chunk at its true byte length. The output is
// intentionally unpadded: the original block may have carried trailing
// zero bytes that must not be reintroduced, and the final block of a
// stream is usually shorter than a full block.
func (c *blockCipher) Decrypt(reader io.Reader, writer io.Writer, key *keys.PrivateKey, progress cipher.ProgressFunc) error {
	maxBytes := sizeInBytes(key.N) + encryptionByteOffset
	if sizeInBytes(key.N) < 2 {
		return fmt.Errorf("modulus too small for block decryption: %d bits", key.N.BitLen())
	}

	sourceBytes := make([]byte, maxBytes)

	bytesAmountRead := maxBytes
	for bytesAmountRead == maxBytes {
		for i := range sourceBytes {
			sourceBytes[i] = 0
		}

		var err error
		bytesAmountRead, err = readBlock(reader, sourceBytes)
		if err != nil {
			return fmt.Errorf("failed to read ciphertext block: %w", err)
		}
		if bytesAmountRead == 0 {
			break
		}

		encrypted := littleEndianToInt(sourceBytes)
		message := new(big.Int).Exp(encrypted, key.D, key.N)

		if _, err := writer.Write(intToLittleEndian(message)); err != nil {
			return fmt.Errorf("failed to write plaintext block: %w", err)
		}

		if progress != nil {
			progress(int64(bytesAmountRead))
		}
	}

	c.logger.Info("RSA block decryption succeeded")
	return nil
}
