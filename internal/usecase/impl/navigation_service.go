package impl

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/store"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type navigationService struct {
	registry      *store.Registry
	publicBaseURL string
}

// NewNavigationService creates a new navigation service instance
func NewNavigationService(registry *store.Registry, cfg *config.Config) usecase.NavigationUsecase {
	return &navigationService{
		registry:      registry,
		publicBaseURL: cfg.Share.PublicBaseURL,
	}
}

// GetView returns the active view
func (s *navigationService) GetView(ctx context.Context, sessionID uuid.UUID) (*usecase.ViewResult, error) {
	sess := s.registry.Get(ctx, sessionID)
	sess.Lock()
	defer sess.Unlock()

	return viewResult(s.publicBaseURL, sess.Router.State()), nil
}

// Navigate applies a navigation action; rejected actions leave the view unchanged
func (s *navigationService) Navigate(
	ctx context.Context,
	sessionID uuid.UUID,
	action entity.NavigationAction,
	productID string,
) (*usecase.ViewResult, error) {
	sess := s.registry.Get(ctx, sessionID)
	sess.Lock()
	defer sess.Unlock()

	if err := sess.Router.Dispatch(action, productID); err != nil {
		return nil, mapStoreError(err)
	}

	return viewResult(s.publicBaseURL, sess.Router.State()), nil
}
