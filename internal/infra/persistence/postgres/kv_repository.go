package postgres

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// keyValueRepository implements the repository.KeyValueStore interface on the kv_entries table.
type keyValueRepository struct {
	db *gorm.DB
}

// NewKeyValueRepository is the constructor for keyValueRepository.
func NewKeyValueRepository(db *gorm.DB) repository.KeyValueStore {
	return &keyValueRepository{
		db: db,
	}
}

// Get retrieves the value stored under key.
func (repo *keyValueRepository) Get(ctx context.Context, key string) (string, error) {
	var entry model.KeyValueModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.Wrap(err, "failed to find key-value entry")
	}

	return entry.Value, nil
}

// Set upserts the value under key.
func (repo *keyValueRepository) Set(ctx context.Context, key, value string) error {
	entry := &model.KeyValueModel{
		Key:   key,
		Value: value,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(entry).Error; err != nil {
		return errors.Wrap(err, "failed to upsert key-value entry")
	}

	return nil
}
