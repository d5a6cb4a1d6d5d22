package impl

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/domain/store"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type sessionService struct {
	registry      *store.Registry
	tokenService  service.TokenService
	publicBaseURL string
	logger        *slog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(
	registry *store.Registry,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		registry:      registry,
		tokenService:  tokenService,
		publicBaseURL: cfg.Share.PublicBaseURL,
		logger:        logger,
	}
}

// StartSession creates a session and lands it on the view named by the deep link, if any
func (s *sessionService) StartSession(ctx context.Context, input *usecase.StartSessionInput) (*usecase.SessionResult, error) {
	sess, err := s.registry.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	productID := input.ProductID
	if productID == "" && input.Link != "" {
		productID = store.ProductIDFromLink(input.Link)
	}

	sess.Lock()
	sess.Router.InitFromDeepLink(productID)
	view := viewResult(s.publicBaseURL, sess.Router.State())
	sess.Unlock()

	token, err := s.tokenService.IssueSessionToken(sess.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	deliverycontext.Logger(ctx, s.logger).Info("Session started",
		slog.String("session_id", sess.ID.String()),
		slog.String("view", string(view.View)),
	)

	return &usecase.SessionResult{
		SessionID: sess.ID,
		Token:     token,
		View:      *view,
	}, nil
}

// ResolveSession validates the token; the session itself is rebuilt lazily on first use
func (s *sessionService) ResolveSession(_ context.Context, token string) (uuid.UUID, error) {
	claims, err := s.tokenService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrSessionInvalid, err.Error())
	}
	if claims.SessionID == uuid.Nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrSessionInvalid, "token carries no session")
	}

	return claims.SessionID, nil
}
