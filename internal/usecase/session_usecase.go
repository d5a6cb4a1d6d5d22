package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// StartSessionInput carries the optional deep link a visitor arrived with.
// ProductID wins over Link when both are set.
type StartSessionInput struct {
	ProductID string `query:"productId"`
	Link      string `query:"link"`
}

// ViewResult is the active view plus the deep link that reproduces it.
type ViewResult struct {
	entity.ViewState
	DeepLink string `json:"deep_link"`
}

// SessionResult is returned when a visitor session starts.
type SessionResult struct {
	SessionID uuid.UUID  `json:"session_id"`
	Token     string     `json:"token"`
	View      ViewResult `json:"view"`
}

// SessionUsecase defines the interface for visitor session use cases
type SessionUsecase interface {
	// StartSession creates a session, applies the deep link and issues its token
	StartSession(ctx context.Context, input *StartSessionInput) (*SessionResult, error)

	// ResolveSession validates a session token and returns the session it names
	ResolveSession(ctx context.Context, token string) (uuid.UUID, error)
}
