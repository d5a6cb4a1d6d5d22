// Package persistence selects the durable key-value backend used by the session stores.
package persistence

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/blob"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// KeyValueStoreParams holds dependencies for KeyValueStore, injected by Fx
type KeyValueStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB `optional:"true"`
}

// NewKeyValueStore creates a KeyValueStore based on configuration
func NewKeyValueStore(params KeyValueStoreParams) (repository.KeyValueStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	switch cfg.Provider {
	case constants.StorageProviderBlob, "":
		bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Using blob key-value store", slog.String("bucket_url", cfg.BucketURL))

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				logger.Info("Closing key-value bucket")

				return errors.WithStack(bucket.Close())
			},
		})

		return blob.NewKeyValueStore(bucket, logger), nil

	case constants.StorageProviderPostgres:
		if params.DB == nil {
			return nil, errors.New("postgres configuration is required for postgres storage provider")
		}
		logger.Info("Using postgres key-value store")

		return postgres.NewKeyValueRepository(params.DB), nil

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		postgres.New,
		NewKeyValueStore,
	),
)
