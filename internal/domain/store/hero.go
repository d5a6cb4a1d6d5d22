package store

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

// HeroPreference remembers which hero image variant the visitor picked.
type HeroPreference struct {
	kv      repository.KeyValueStore
	key     string
	variant entity.HeroVariant
}

// NewHeroPreference loads the stored variant, falling back to the default for missing or unknown values.
func NewHeroPreference(ctx context.Context, kv repository.KeyValueStore, key string, logger *slog.Logger) *HeroPreference {
	h := &HeroPreference{kv: kv, key: key, variant: entity.DefaultHeroVariant}

	raw, err := kv.Get(ctx, key)
	switch {
	case err == nil:
		if v := entity.HeroVariant(raw); v.IsValid() {
			h.variant = v
		}
	case !errors.Is(err, repository.ErrKeyNotFound):
		logger.Warn("Failed to read hero preference, using default",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}

	return h
}

// Variant returns the current hero variant.
func (h *HeroPreference) Variant() entity.HeroVariant {
	return h.variant
}

// SetVariant stores a new hero variant.
func (h *HeroPreference) SetVariant(ctx context.Context, v entity.HeroVariant) error {
	if !v.IsValid() {
		return ErrInvalidHeroVariant
	}

	if err := h.kv.Set(ctx, h.key, string(v)); err != nil {
		return fmt.Errorf("%w: save hero preference: %w", ErrPersistence, err)
	}
	h.variant = v

	return nil
}
