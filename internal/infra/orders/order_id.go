// Package orders contains the order-recording collaborators used by checkout.
package orders

import (
	"fmt"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

const orderIDSuffixLen = 9

// newOrderID returns an id shaped like ORD-<unix millis>-<9 uppercase chars>.
func newOrderID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:orderIDSuffixLen]

	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

// buildOrder snapshots a create-order request into an order record.
func buildOrder(orderID string, placedAt time.Time, req *service.CreateOrderRequest) *entity.Order {
	items := req.OrderItems()

	return &entity.Order{
		OrderID:      orderID,
		Items:        items,
		Subtotal:     entity.SumOrderItems(items),
		Timestamp:    placedAt,
		CustomerInfo: req.Customer(),
	}
}
