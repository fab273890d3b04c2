package models

import (
	"time"

	"rsa_crypt_service/internal/domain/keys"
)

// KeyPairModel is the GORM database model for key pair metadata (infrastructure concern)
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Algorithm       string    `gorm:"not null;type:varchar(20)"`
	KeySize         uint32    `gorm:"not null;type:integer"`
	PublicKeyPath   string    `gorm:"not null;type:varchar(512)"`
	PrivateKeyPath  string    `gorm:"not null;type:varchar(512)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts GORM model to domain entity
func (m *KeyPairModel) ToDomain() *keys.KeyPairMeta {
	return &keys.KeyPairMeta{
		ID:              m.ID,
		Algorithm:       m.Algorithm,
		KeySize:         m.KeySize,
		PublicKeyPath:   m.PublicKeyPath,
		PrivateKeyPath:  m.PrivateKeyPath,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyPairModel) FromDomain(k *keys.KeyPairMeta) {
	m.ID = k.ID
	m.Algorithm = k.Algorithm
	m.KeySize = k.KeySize
	m.PublicKeyPath = k.PublicKeyPath
	m.PrivateKeyPath = k.PrivateKeyPath
	m.DateTimeCreated = k.DateTimeCreated
}
