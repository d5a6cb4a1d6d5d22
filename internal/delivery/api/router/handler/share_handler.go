package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	ShareUC usecase.ShareUsecase
	Logger  *slog.Logger
}

// ShareHandler holds dependencies for product sharing handlers
type ShareHandler struct {
	shareUC usecase.ShareUsecase
	logger  *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		shareUC: params.ShareUC,
		logger:  params.Logger,
	}
}

// ShareResponse is the share payload plus the messages the client shows after a clipboard copy
type ShareResponse struct {
	*usecase.ShareLink
	CopiedMessage string `json:"copied_message"`
	FailedMessage string `json:"failed_message"`
}

// ShareProduct handles building the share link of a product
func (h *ShareHandler) ShareProduct(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	link, err := h.shareUC.ShareProduct(c.Request().Context(), sessionID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ShareResponse{
		ShareLink:     link,
		CopiedMessage: usecase.ShareSuccessMessage,
		FailedMessage: usecase.ShareFailureMessage,
	})
}

// ProductQRCode handles rendering the share link as a PNG
func (h *ShareHandler) ProductQRCode(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	image, err := h.shareUC.ProductQRCode(c.Request().Context(), sessionID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, image)
}
