package keys

import (
	"errors"
	"fmt"
	"time"

	"rsa_crypt_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// KeyPairMeta describes a generated key pair: where its halves live on
// disk and how it was generated. The key material itself is never stored
// here, only paths and parameters.
type KeyPairMeta struct {
	ID              string    `validate:"required,uuid"`
	Algorithm       string    `validate:"required,oneof=RSA"`
	KeySize         uint32    `validate:"required,keysize"`
	PublicKeyPath   string    `validate:"required"`
	PrivateKeyPath  string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate checks that all fields of KeyPairMeta are valid
func (m *KeyPairMeta) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register keysize validation: %w", err)
	}

	err := validate.Struct(m)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// KeyPairQuery filters and paginates key pair metadata listings.
type KeyPairQuery struct {
	Algorithm       string
	DateTimeCreated time.Time

	SortBy    string `validate:"omitempty,oneof=id key_size date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1"`
	Offset    int    `validate:"omitempty,min=0"`
}

// Validate checks that the query parameters are valid
func (q *KeyPairQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for KeyPairQuery: %w", err)
	}
	return nil
}
