package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrUnauthorized is returned by an OrderRecorder when the caller may not see any orders.
var ErrUnauthorized = errors.New("unauthorized")

// CustomerInfoPayload is the customer block of a create-order request.
type CustomerInfoPayload struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
}

// OrderItemPayload is one line-item snapshot of a create-order request.
type OrderItemPayload struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// CreateOrderRequest is the canonical request sent to the order-recording collaborator.
type CreateOrderRequest struct {
	CustomerInfo CustomerInfoPayload `json:"customerInfo"`
	Items        []OrderItemPayload  `json:"items"`
}

// NewCreateOrderRequest builds a request from a customer and order line snapshots.
func NewCreateOrderRequest(customer entity.CustomerInfo, items []entity.OrderItem) *CreateOrderRequest {
	req := &CreateOrderRequest{
		CustomerInfo: CustomerInfoPayload{
			FullName:    customer.FullName,
			Email:       customer.Email,
			AddressLine: customer.AddressLine,
			City:        customer.City,
			PostalCode:  customer.PostalCode,
		},
		Items: make([]OrderItemPayload, 0, len(items)),
	}
	for _, item := range items {
		req.Items = append(req.Items, OrderItemPayload{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return req
}

// OrderItems converts the request lines back into order item snapshots.
func (r *CreateOrderRequest) OrderItems() []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return items
}

// Customer converts the request customer block into the domain type.
func (r *CreateOrderRequest) Customer() entity.CustomerInfo {
	return entity.CustomerInfo{
		FullName:    r.CustomerInfo.FullName,
		Email:       r.CustomerInfo.Email,
		AddressLine: r.CustomerInfo.AddressLine,
		City:        r.CustomerInfo.City,
		PostalCode:  r.CustomerInfo.PostalCode,
	}
}

// OrderRecorder is the external collaborator that records orders and lists them back.
type OrderRecorder interface {
	// CreateOrder records the order and returns the identifier it was assigned.
	CreateOrder(ctx context.Context, callerID string, req *CreateOrderRequest) (string, error)

	// ListOrders returns every order visible to the caller.
	// Implementations return ErrUnauthorized when the caller is not allowed to list orders.
	ListOrders(ctx context.Context, callerID string) ([]*entity.Order, error)
}
