package middleware

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionMiddleware resolves the visitor session named by the bearer token.
type SessionMiddleware struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Authenticate rejects requests without a valid session token and stores the session ID for handlers.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || token == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		sessionID, err := m.sessionUC.ResolveSession(c.Request().Context(), token)
		if err != nil {
			deliverycontext.Logger(c.Request().Context(), m.logger).Debug("Session token rejected",
				slog.Any("error", err),
			)

			return response.HandleAppError(c, err)
		}

		deliverycontext.BindSession(c, sessionID, m.logger)

		return next(c)
	}
}
