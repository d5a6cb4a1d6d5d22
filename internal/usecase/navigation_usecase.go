package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// NavigationUsecase defines the interface for view routing use cases
type NavigationUsecase interface {
	// GetView returns the active view
	GetView(ctx context.Context, sessionID uuid.UUID) (*ViewResult, error)

	// Navigate applies a navigation action
	Navigate(ctx context.Context, sessionID uuid.UUID, action entity.NavigationAction, productID string) (*ViewResult, error)
}

// PreferenceUsecase defines the interface for visitor display preferences
type PreferenceUsecase interface {
	// GetHeroVariant returns the chosen hero image
	GetHeroVariant(ctx context.Context, sessionID uuid.UUID) (entity.HeroVariant, error)

	// SetHeroVariant stores a new hero image choice
	SetHeroVariant(ctx context.Context, sessionID uuid.UUID, variant entity.HeroVariant) (entity.HeroVariant, error)
}
