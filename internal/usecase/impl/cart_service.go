package impl

import (
	"context"

	"storefront/internal/domain/store"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type cartService struct {
	registry *store.Registry
}

// NewCartService creates a new cart service instance
func NewCartService(registry *store.Registry) usecase.CartUsecase {
	return &cartService{
		registry: registry,
	}
}

// GetCart returns the current cart
func (s *cartService) GetCart(ctx context.Context, sessionID uuid.UUID) (*usecase.CartSummary, error) {
	return s.withCart(ctx, sessionID, func(*store.Session) error { return nil })
}

// AddToCart adds one unit of a catalog product
func (s *cartService) AddToCart(ctx context.Context, sessionID uuid.UUID, productID string) (*usecase.CartSummary, error) {
	return s.withCart(ctx, sessionID, func(sess *store.Session) error {
		product, err := sess.Catalog.GetProduct(productID)
		if err != nil {
			return mapStoreError(err)
		}
		sess.Cart.AddToCart(product)

		return nil
	})
}

// IncrementQuantity adds one unit of a product already in the cart
func (s *cartService) IncrementQuantity(ctx context.Context, sessionID uuid.UUID, productID string) (*usecase.CartSummary, error) {
	return s.withCart(ctx, sessionID, func(sess *store.Session) error {
		sess.Cart.IncrementQuantity(productID)

		return nil
	})
}

// DecrementQuantity removes one unit, dropping the line at zero
func (s *cartService) DecrementQuantity(ctx context.Context, sessionID uuid.UUID, productID string) (*usecase.CartSummary, error) {
	return s.withCart(ctx, sessionID, func(sess *store.Session) error {
		sess.Cart.DecrementQuantity(productID)

		return nil
	})
}

// RemoveFromCart drops a line regardless of quantity
func (s *cartService) RemoveFromCart(ctx context.Context, sessionID uuid.UUID, productID string) (*usecase.CartSummary, error) {
	return s.withCart(ctx, sessionID, func(sess *store.Session) error {
		sess.Cart.RemoveFromCart(productID)

		return nil
	})
}

// ClearCart empties the cart
func (s *cartService) ClearCart(ctx context.Context, sessionID uuid.UUID) (*usecase.CartSummary, error) {
	return s.withCart(ctx, sessionID, func(sess *store.Session) error {
		sess.Cart.ClearCart()

		return nil
	})
}

// withCart runs fn under the session lock and summarises the resulting cart.
func (s *cartService) withCart(ctx context.Context, sessionID uuid.UUID, fn func(*store.Session) error) (*usecase.CartSummary, error) {
	sess := s.registry.Get(ctx, sessionID)
	sess.Lock()
	defer sess.Unlock()

	if err := fn(sess); err != nil {
		return nil, err
	}

	return cartSummary(sess.Cart), nil
}

func cartSummary(cart *store.Cart) *usecase.CartSummary {
	items := cart.Items()
	lines := make([]usecase.CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, usecase.CartLine{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Image:     item.Product.PrimaryImage(),
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}

	return &usecase.CartSummary{
		Items:    lines,
		Count:    cart.CartCount(),
		Subtotal: cart.Subtotal(),
	}
}
