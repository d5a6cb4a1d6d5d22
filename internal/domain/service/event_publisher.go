package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderPlacedEvent is published after a checkout has been recorded.
type OrderPlacedEvent struct {
	RequestID string          `json:"request_id,omitempty"` // For distributed tracing
	OrderID   string          `json:"order_id"`
	SessionID string          `json:"session_id"`
	Email     string          `json:"email"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	PlacedAt  time.Time       `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order placed event for downstream consumers
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
