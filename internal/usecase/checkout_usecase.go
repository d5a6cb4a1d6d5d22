package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutUsecase defines the interface for order submission and history
type CheckoutUsecase interface {
	// SubmitOrder records the cart as an order and moves the session to the confirmation view
	SubmitOrder(ctx context.Context, sessionID uuid.UUID, customer *entity.CustomerInfo) (*entity.Order, error)

	// GetOrderHistory returns every order visible to the session, newest first
	GetOrderHistory(ctx context.Context, sessionID uuid.UUID) ([]*entity.Order, error)
}
