package persistence

import (
	"context"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, storage config.StorageConfig) KeyValueStoreParams {
	t.Helper()

	return KeyValueStoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Storage: storage},
		Logger: slog.New(slog.DiscardHandler),
	}
}

func TestNewKeyValueStore_Blob(t *testing.T) {
	store, err := NewKeyValueStore(newParams(t, config.StorageConfig{Provider: "blob", BucketURL: "mem://"}))
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestNewKeyValueStore_PostgresWithoutDB(t *testing.T) {
	_, err := NewKeyValueStore(newParams(t, config.StorageConfig{Provider: "postgres"}))
	assert.Error(t, err)
}

func TestNewKeyValueStore_UnknownProvider(t *testing.T) {
	_, err := NewKeyValueStore(newParams(t, config.StorageConfig{Provider: "redis"}))
	assert.Error(t, err)
}
