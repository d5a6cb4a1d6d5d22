package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one cart entry as rendered by the cart view.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartSummary is the cart with its derived count and subtotal.
type CartSummary struct {
	Items    []CartLine      `json:"items"`
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartUsecase defines the interface for shopping cart use cases
type CartUsecase interface {
	// GetCart returns the current cart
	GetCart(ctx context.Context, sessionID uuid.UUID) (*CartSummary, error)

	// AddToCart adds one unit of a catalog product
	AddToCart(ctx context.Context, sessionID uuid.UUID, productID string) (*CartSummary, error)

	// IncrementQuantity adds one unit of a product already in the cart
	IncrementQuantity(ctx context.Context, sessionID uuid.UUID, productID string) (*CartSummary, error)

	// DecrementQuantity removes one unit, dropping the line at zero
	DecrementQuantity(ctx context.Context, sessionID uuid.UUID, productID string) (*CartSummary, error)

	// RemoveFromCart drops a line regardless of quantity
	RemoveFromCart(ctx context.Context, sessionID uuid.UUID, productID string) (*CartSummary, error)

	// ClearCart empties the cart
	ClearCart(ctx context.Context, sessionID uuid.UUID) (*CartSummary, error)
}
