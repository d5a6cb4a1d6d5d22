package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler starts visitor sessions
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// StartSession creates a session. The productId or link query parameter carries a deep link.
func (h *SessionHandler) StartSession(c echo.Context) error {
	var input usecase.StartSessionInput
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deep link parameters")
	}

	result, err := h.sessionUC.StartSession(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}
