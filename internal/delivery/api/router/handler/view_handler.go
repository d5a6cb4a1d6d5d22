package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ViewHandlerParams holds dependencies for ViewHandler, injected by Fx.
type ViewHandlerParams struct {
	fx.In

	NavigationUC usecase.NavigationUsecase
	PreferenceUC usecase.PreferenceUsecase
}

// ViewHandler exposes the view router and display preferences
type ViewHandler struct {
	navigationUC usecase.NavigationUsecase
	preferenceUC usecase.PreferenceUsecase
}

// NewViewHandler is the constructor for ViewHandler
func NewViewHandler(params ViewHandlerParams) *ViewHandler {
	return &ViewHandler{
		navigationUC: params.NavigationUC,
		preferenceUC: params.PreferenceUC,
	}
}

// NavigateRequest represents the request body for a navigation action
type NavigateRequest struct {
	Action    entity.NavigationAction `json:"action" validate:"required"`
	ProductID string                  `json:"product_id"`
}

// HeroPreferenceRequest represents the request body for choosing a hero image
type HeroPreferenceRequest struct {
	Variant entity.HeroVariant `json:"variant" validate:"required"`
}

// HeroPreferenceResponse is the chosen hero image
type HeroPreferenceResponse struct {
	Variant entity.HeroVariant `json:"variant"`
}

// GetView handles retrieving the active view
func (h *ViewHandler) GetView(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	view, err := h.navigationUC.GetView(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Navigate handles an explicit navigation action
func (h *ViewHandler) Navigate(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	var req NavigateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid navigation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.navigationUC.Navigate(c.Request().Context(), sessionID, req.Action, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// GetHeroVariant handles retrieving the hero image choice
func (h *ViewHandler) GetHeroVariant(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	variant, err := h.preferenceUC.GetHeroVariant(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, HeroPreferenceResponse{Variant: variant})
}

// SetHeroVariant handles storing a new hero image choice
func (h *ViewHandler) SetHeroVariant(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	var req HeroPreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	variant, err := h.preferenceUC.SetHeroVariant(c.Request().Context(), sessionID, req.Variant)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, HeroPreferenceResponse{Variant: variant})
}
