package orders

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const maxOrderIDAttempts = 3

// postgresRecorder records orders through the repository layer in one transaction.
type postgresRecorder struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	now       func() time.Time
	logger    *slog.Logger
}

// NewPostgresRecorder creates an OrderRecorder backed by the orders tables.
func NewPostgresRecorder(txManager repository.TransactionManager, orderRepo repository.OrderRepository, logger *slog.Logger) service.OrderRecorder {
	return &postgresRecorder{
		txManager: txManager,
		orderRepo: orderRepo,
		now:       time.Now,
		logger:    logger,
	}
}

// CreateOrder persists the order and its items; a generated id collision is retried.
func (r *postgresRecorder) CreateOrder(ctx context.Context, callerID string, req *service.CreateOrderRequest) (string, error) {
	if callerID == "" {
		return "", service.ErrUnauthorized
	}

	for range maxOrderIDAttempts {
		placedAt := r.now()
		order := buildOrder(newOrderID(placedAt), placedAt, req)

		err := r.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.NewOrderRepository().CreateOrder(ctx, callerID, order)
		})
		if errors.Is(err, repository.ErrDuplicateOrder) {
			r.logger.Warn("Order id collision, retrying", slog.String("order_id", order.OrderID))

			continue
		}
		if err != nil {
			return "", errors.Wrap(err, "failed to record order")
		}

		return order.OrderID, nil
	}

	return "", errors.New("failed to allocate a unique order id")
}

// ListOrders returns the caller's orders, newest first.
func (r *postgresRecorder) ListOrders(ctx context.Context, callerID string) ([]*entity.Order, error) {
	if callerID == "" {
		return nil, service.ErrUnauthorized
	}

	orders, err := r.orderRepo.FindOrdersByCaller(ctx, callerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}
