package validators

import (
	"github.com/go-playground/validator/v10"
)

// Modulus bit length bounds accepted for generated RSA key pairs. The
// lower bound is dictated by the block framing: a 32 bit modulus is the
// smallest with a non-empty plaintext block.
const (
	MinRSAKeySize = 32
	MaxRSAKeySize = 16384
)

// KeySizeValidation validates the modulus bit length of an RSA key pair.
func KeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Uint()
	return keySize >= MinRSAKeySize && keySize <= MaxRSAKeySize
}
