package handler

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for shopping cart handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest represents the request body for adding a product to the cart
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// GetCart handles retrieving the cart summary
func (h *CartHandler) GetCart(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddToCart handles adding one unit of a product
func (h *CartHandler) AddToCart(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.AddToCart(c.Request().Context(), sessionID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// IncrementQuantity handles adding one unit to an existing line
func (h *CartHandler) IncrementQuantity(c echo.Context) error {
	return h.updateLine(c, h.cartUC.IncrementQuantity)
}

// DecrementQuantity handles removing one unit from an existing line
func (h *CartHandler) DecrementQuantity(c echo.Context) error {
	return h.updateLine(c, h.cartUC.DecrementQuantity)
}

// RemoveFromCart handles dropping a line
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	return h.updateLine(c, h.cartUC.RemoveFromCart)
}

// ClearCart handles emptying the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	cart, err := h.cartUC.ClearCart(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

type lineUpdate func(ctx context.Context, sessionID uuid.UUID, productID string) (*usecase.CartSummary, error)

func (h *CartHandler) updateLine(c echo.Context, update lineUpdate) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	cart, err := update(c.Request().Context(), sessionID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}
