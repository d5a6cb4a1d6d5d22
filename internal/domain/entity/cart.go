package entity

import "github.com/shopspring/decimal"

// CartItem is a product and the quantity the visitor intends to buy.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns price multiplied by quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
