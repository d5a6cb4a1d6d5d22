package impl

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/store"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type preferenceService struct {
	registry *store.Registry
}

// NewPreferenceService creates a new preference service instance
func NewPreferenceService(registry *store.Registry) usecase.PreferenceUsecase {
	return &preferenceService{
		registry: registry,
	}
}

// GetHeroVariant returns the chosen hero image
func (s *preferenceService) GetHeroVariant(ctx context.Context, sessionID uuid.UUID) (entity.HeroVariant, error) {
	sess := s.registry.Get(ctx, sessionID)
	sess.Lock()
	defer sess.Unlock()

	return sess.Hero.Variant(), nil
}

// SetHeroVariant stores a new hero image choice
func (s *preferenceService) SetHeroVariant(ctx context.Context, sessionID uuid.UUID, variant entity.HeroVariant) (entity.HeroVariant, error) {
	sess := s.registry.Get(ctx, sessionID)
	sess.Lock()
	defer sess.Unlock()

	if err := sess.Hero.SetVariant(ctx, variant); err != nil {
		return "", mapStoreError(err)
	}

	return sess.Hero.Variant(), nil
}
