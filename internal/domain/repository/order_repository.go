package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrDuplicateOrder is returned when an order id is already taken.
	ErrDuplicateOrder = errors.New("order already exists")
)

// OrderRepository stores orders recorded by the built-in order recorder.
type OrderRepository interface {
	// CreateOrder persists an order and its line items for the given caller.
	CreateOrder(ctx context.Context, callerID string, order *entity.Order) error

	// FindOrdersByCaller retrieves every order recorded for a caller, newest first.
	FindOrdersByCaller(ctx context.Context, callerID string) ([]*entity.Order, error)
}
