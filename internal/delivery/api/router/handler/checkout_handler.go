package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler holds dependencies for order submission and history handlers
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// SubmitOrder handles the checkout form
func (h *CheckoutHandler) SubmitOrder(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	var customer entity.CustomerInfo
	if err := c.Bind(&customer); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	order, err := h.checkoutUC.SubmitOrder(c.Request().Context(), sessionID, &customer)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// GetOrderHistory handles listing the visitor's past orders
func (h *CheckoutHandler) GetOrderHistory(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	orders, err := h.checkoutUC.GetOrderHistory(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}
