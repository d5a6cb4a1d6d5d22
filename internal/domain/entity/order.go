package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerInfo is the shipping contact captured by the checkout form.
type CustomerInfo struct {
	FullName    string `json:"full_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	AddressLine string `json:"address_line" validate:"required"`
	City        string `json:"city" validate:"required"`
	PostalCode  string `json:"postal_code" validate:"required"`
}

// OrderItem is a snapshot of a cart line at the moment the order was placed.
type OrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// LineTotal returns price multiplied by quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the immutable record of a completed checkout.
type Order struct {
	OrderID      string          `json:"order_id"`
	Items        []OrderItem     `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Timestamp    time.Time       `json:"timestamp"`
	CustomerInfo CustomerInfo    `json:"customer_info"`
}

// OrderItemsFromCart snapshots cart lines into order items.
func OrderItemsFromCart(items []CartItem) []OrderItem {
	out := make([]OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, OrderItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Price:       item.Product.Price,
			Quantity:    item.Quantity,
		})
	}

	return out
}

// SumOrderItems returns the subtotal of the given order lines.
func SumOrderItems(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}

	return total
}
