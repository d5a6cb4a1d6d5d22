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

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for product and reaction handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts handles listing the catalog with the visitor's reaction flags
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles retrieving a single product
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), sessionID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// AddProduct handles the add-product form
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	var input usecase.AddProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	// Validation runs in the usecase after blank images are dropped
	product, err := h.catalogUC.AddProduct(c.Request().Context(), sessionID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// ToggleLike handles flipping the like flag
func (h *CatalogHandler) ToggleLike(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	reaction, err := h.catalogUC.ToggleLike(c.Request().Context(), sessionID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reaction)
}

// ToggleFavorite handles flipping the favorite flag
func (h *CatalogHandler) ToggleFavorite(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	reaction, err := h.catalogUC.ToggleFavorite(c.Request().Context(), sessionID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reaction)
}

// ListFavorites handles listing favorited products
func (h *CatalogHandler) ListFavorites(c echo.Context) error {
	sessionID, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Session not found in context")
	}

	products, err := h.catalogUC.ListFavorites(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}
