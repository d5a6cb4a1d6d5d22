package orders

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// memoryRecorder keeps orders in process memory. Intended for development and tests.
type memoryRecorder struct {
	mu     sync.Mutex
	orders map[string][]*entity.Order
	now    func() time.Time
	logger *slog.Logger
}

// NewMemoryRecorder creates an in-process OrderRecorder.
func NewMemoryRecorder(logger *slog.Logger) service.OrderRecorder {
	return newMemoryRecorder(time.Now, logger)
}

func newMemoryRecorder(now func() time.Time, logger *slog.Logger) *memoryRecorder {
	return &memoryRecorder{
		orders: make(map[string][]*entity.Order),
		now:    now,
		logger: logger,
	}
}

// CreateOrder stores the order under the caller and returns its generated id.
func (r *memoryRecorder) CreateOrder(_ context.Context, callerID string, req *service.CreateOrderRequest) (string, error) {
	if callerID == "" {
		return "", service.ErrUnauthorized
	}

	placedAt := r.now()
	order := buildOrder(newOrderID(placedAt), placedAt, req)

	r.mu.Lock()
	r.orders[callerID] = append(r.orders[callerID], order)
	r.mu.Unlock()

	r.logger.Debug("[MemoryOrders] Order recorded",
		slog.String("order_id", order.OrderID),
		slog.Int("items", len(order.Items)),
	)

	return order.OrderID, nil
}

// ListOrders returns the caller's orders, newest first.
func (r *memoryRecorder) ListOrders(_ context.Context, callerID string) ([]*entity.Order, error) {
	if callerID == "" {
		return nil, service.ErrUnauthorized
	}

	r.mu.Lock()
	orders := slices.Clone(r.orders[callerID])
	r.mu.Unlock()

	slices.Reverse(orders)
	if orders == nil {
		orders = []*entity.Order{}
	}

	return orders, nil
}
