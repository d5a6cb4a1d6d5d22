package impl

import (
	"context"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/store"
	"storefront/internal/infra/persistence/blob"
	"storefront/internal/infra/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const testBaseURL = "https://shop.example.com/"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestConfig() *config.Config {
	return &config.Config{
		Share: config.ShareConfig{PublicBaseURL: testBaseURL},
	}
}

// newMemoryKV returns a working key-value store backed by an in-memory bucket.
func newMemoryKV(t *testing.T) repository.KeyValueStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return blob.NewKeyValueStore(bucket, newDiscardLogger())
}

func newTestRegistry(t *testing.T, kv repository.KeyValueStore) *store.Registry {
	t.Helper()

	return store.NewRegistry(kv, "sports-store", newDiscardLogger())
}

func newTestSession(t *testing.T, registry *store.Registry) uuid.UUID {
	t.Helper()

	sess, err := registry.Create(context.Background())
	require.NoError(t, err)

	return sess.ID
}

// fillCartAndCheckout adds the given products to the cart and moves the session to checkout.
func fillCartAndCheckout(t *testing.T, registry *store.Registry, sessionID uuid.UUID, productIDs ...string) {
	t.Helper()

	sess := registry.Get(context.Background(), sessionID)
	sess.Lock()
	defer sess.Unlock()

	for _, id := range productIDs {
		product, err := sess.Catalog.GetProduct(id)
		require.NoError(t, err)
		sess.Cart.AddToCart(product)
	}
	sess.Router.ProceedToCheckout()
}

func validCustomer() *entity.CustomerInfo {
	return &entity.CustomerInfo{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		AddressLine: "1 Main St",
		City:        "Springfield",
		PostalCode:  "12345",
	}
}

var testValidate = validation.New()
