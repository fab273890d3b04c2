//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"rsa_crypt_service/internal/domain/keys"
	"rsa_crypt_service/internal/pkg/config"
	pkgTesting "rsa_crypt_service/internal/pkg/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSqliteRepository(t *testing.T) keys.KeyPairRepository {
	t.Helper()

	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	logger := pkgTesting.SetupTestLogger(t)
	repo, err := NewGormKeyPairRepository(db, logger)
	require.NoError(t, err)
	return repo
}

func createTestMeta(keySize uint32) *keys.KeyPairMeta {
	id := uuid.NewString()
	return &keys.KeyPairMeta{
		ID:              id,
		Algorithm:       "RSA",
		KeySize:         keySize,
		PublicKeyPath:   "/keys/" + id + "-key.pub",
		PrivateKeyPath:  "/keys/" + id + "-key",
		DateTimeCreated: time.Now(),
	}
}

func TestKeyPairRepository_Create(t *testing.T) {
	repo := setupSqliteRepository(t)

	meta := createTestMeta(2048)
	require.NoError(t, repo.Create(context.Background(), meta))

	fetched, err := repo.GetByID(context.Background(), meta.ID)
	require.NoError(t, err)
	assert.Equal(t, meta.ID, fetched.ID)
	assert.Equal(t, meta.KeySize, fetched.KeySize)
	assert.Equal(t, meta.PublicKeyPath, fetched.PublicKeyPath)
}

func TestKeyPairRepository_Create_ValidationError(t *testing.T) {
	repo := setupSqliteRepository(t)

	invalidMeta := &keys.KeyPairMeta{} // Missing required fields

	err := repo.Create(context.Background(), invalidMeta)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestKeyPairRepository_List(t *testing.T) {
	repo := setupSqliteRepository(t)

	require.NoError(t, repo.Create(context.Background(), createTestMeta(1024)))
	require.NoError(t, repo.Create(context.Background(), createTestMeta(2048)))

	metaList, err := repo.List(context.Background(), &keys.KeyPairQuery{})
	require.NoError(t, err)
	assert.Len(t, metaList, 2)
}

func TestKeyPairRepository_List_WithSortingAndPagination(t *testing.T) {
	repo := setupSqliteRepository(t)

	require.NoError(t, repo.Create(context.Background(), createTestMeta(4096)))
	require.NoError(t, repo.Create(context.Background(), createTestMeta(1024)))
	require.NoError(t, repo.Create(context.Background(), createTestMeta(2048)))

	query := &keys.KeyPairQuery{SortBy: "key_size", SortOrder: "asc", Limit: 2}
	metaList, err := repo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, metaList, 2)
	assert.Equal(t, uint32(1024), metaList[0].KeySize)
	assert.Equal(t, uint32(2048), metaList[1].KeySize)
}

func TestKeyPairRepository_GetByID_NotFound(t *testing.T) {
	repo := setupSqliteRepository(t)

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestKeyPairRepository_DeleteByID(t *testing.T) {
	repo := setupSqliteRepository(t)

	meta := createTestMeta(2048)
	require.NoError(t, repo.Create(context.Background(), meta))
	require.NoError(t, repo.DeleteByID(context.Background(), meta.ID))

	_, err := repo.GetByID(context.Background(), meta.ID)
	assert.Error(t, err)
}
