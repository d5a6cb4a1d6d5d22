package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/domain/store"
	"storefront/internal/infra/validation"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type checkoutService struct {
	registry  *store.Registry
	recorder  service.OrderRecorder
	publisher service.EventPublisher
	validate  *validator.Validate
	now       func() time.Time
	logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(
	registry *store.Registry,
	recorder service.OrderRecorder,
	publisher service.EventPublisher,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		registry:  registry,
		recorder:  recorder,
		publisher: publisher,
		validate:  validate,
		now:       time.Now,
		logger:    logger,
	}
}

// SubmitOrder checks every precondition before calling the order recorder.
// The recorder call runs without the session lock; the in-flight flag rejects concurrent submissions.
func (s *checkoutService) SubmitOrder(ctx context.Context, sessionID uuid.UUID, customer *entity.CustomerInfo) (*entity.Order, error) {
	logger := deliverycontext.Logger(ctx, s.logger)
	sess := s.registry.Get(ctx, sessionID)

	items, err := s.beginSubmission(sess, customer)
	if err != nil {
		return nil, err
	}

	req := service.NewCreateOrderRequest(*customer, items)
	orderID, err := s.recorder.CreateOrder(ctx, sessionID.String(), req)

	sess.Lock()
	sess.EndSubmission()
	if err != nil {
		sess.Unlock()
		logger.Error("Order submission failed",
			slog.String("session_id", sessionID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrOrderSubmissionFailed, err.Error())
	}

	order := &entity.Order{
		OrderID:      orderID,
		Items:        items,
		Subtotal:     entity.SumOrderItems(items),
		Timestamp:    s.now(),
		CustomerInfo: *customer,
	}
	if err := sess.Router.OrderSucceeded(order); err != nil {
		// The visitor left checkout while the order was in flight; the order still stands.
		sess.Cart.ClearCart()
		logger.Warn("Order confirmed outside checkout view",
			slog.String("session_id", sessionID.String()),
			slog.String("view", string(sess.Router.State().View)),
		)
	}
	sess.InvalidateOrderHistory()
	sess.Unlock()

	logger.Info("Order placed",
		slog.String("session_id", sessionID.String()),
		slog.String("order_id", orderID),
		slog.Int("items", len(items)),
	)

	s.publishOrderPlaced(ctx, logger, sessionID, order)

	return order, nil
}

// beginSubmission validates the session state and input, then marks the submission in flight.
func (s *checkoutService) beginSubmission(sess *store.Session, customer *entity.CustomerInfo) ([]entity.OrderItem, error) {
	sess.Lock()
	defer sess.Unlock()

	if sess.Submitting() {
		return nil, domainerrors.ErrSubmissionInProgress
	}
	if sess.Router.State().View != entity.ViewCheckout {
		return nil, errors.Wrap(domainerrors.ErrInvalidTransition, "orders are submitted from the checkout view")
	}
	if sess.Cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}
	if err := validation.Struct(s.validate, customer); err != nil {
		return nil, err
	}

	items := entity.OrderItemsFromCart(sess.Cart.Items())
	sess.BeginSubmission()

	return items, nil
}

func (s *checkoutService) publishOrderPlaced(ctx context.Context, logger *slog.Logger, sessionID uuid.UUID, order *entity.Order) {
	itemCount := 0
	for _, item := range order.Items {
		itemCount += item.Quantity
	}

	event := &service.OrderPlacedEvent{
		RequestID: deliverycontext.RequestIDFromContext(ctx),
		OrderID:   order.OrderID,
		SessionID: sessionID.String(),
		Email:     order.CustomerInfo.Email,
		ItemCount: itemCount,
		Subtotal:  order.Subtotal,
		PlacedAt:  order.Timestamp,
	}
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.Warn("Failed to publish order placed event",
			slog.String("order_id", order.OrderID),
			slog.Any("error", err),
		)
	}
}

// GetOrderHistory serves the cached history when present; unauthorised callers see no orders
func (s *checkoutService) GetOrderHistory(ctx context.Context, sessionID uuid.UUID) ([]*entity.Order, error) {
	sess := s.registry.Get(ctx, sessionID)

	sess.Lock()
	if cached, ok := sess.CachedOrderHistory(); ok {
		sess.Unlock()

		return cached, nil
	}
	gen := sess.OrderHistoryGeneration()
	sess.Unlock()

	orders, err := s.recorder.ListOrders(ctx, sessionID.String())
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		orders = []*entity.Order{}
	case err != nil:
		deliverycontext.Logger(ctx, s.logger).Error("Failed to load order history",
			slog.String("session_id", sessionID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrOrderHistoryUnavailable, err.Error())
	}

	// An order placed during the fetch invalidated the history; skip caching the older list.
	sess.Lock()
	sess.CacheOrderHistory(gen, orders)
	sess.Unlock()

	return orders, nil
}
