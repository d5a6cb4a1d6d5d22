package store

import (
	"slices"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Cart maps product ids to quantities. Every present entry has a quantity of at least one.
// Cart is not safe for concurrent use; Session serialises access.
type Cart struct {
	items map[string]*entity.CartItem
	order []string
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{items: make(map[string]*entity.CartItem)}
}

// AddToCart adds one unit of product, inserting it if absent.
func (c *Cart) AddToCart(product entity.Product) {
	if item, ok := c.items[product.ID]; ok {
		item.Quantity++

		return
	}

	c.items[product.ID] = &entity.CartItem{Product: product, Quantity: 1}
	c.order = append(c.order, product.ID)
}

// IncrementQuantity adds one unit of an existing entry. Unknown ids are ignored.
func (c *Cart) IncrementQuantity(productID string) {
	if item, ok := c.items[productID]; ok {
		item.Quantity++
	}
}

// DecrementQuantity removes one unit, deleting the entry when nothing is left.
func (c *Cart) DecrementQuantity(productID string) {
	item, ok := c.items[productID]
	if !ok {
		return
	}

	item.Quantity--
	if item.Quantity <= 0 {
		c.RemoveFromCart(productID)
	}
}

// RemoveFromCart deletes the entry for productID if present.
func (c *Cart) RemoveFromCart(productID string) {
	if _, ok := c.items[productID]; !ok {
		return
	}

	delete(c.items, productID)
	c.order = slices.DeleteFunc(c.order, func(id string) bool { return id == productID })
}

// ClearCart empties the cart.
func (c *Cart) ClearCart() {
	clear(c.items)
	c.order = c.order[:0]
}

// CartCount is the sum of all quantities.
func (c *Cart) CartCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}

	return count
}

// Subtotal is the sum of price times quantity over all entries.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// Items returns a copy of the entries in the order they were first added.
func (c *Cart) Items() []entity.CartItem {
	out := make([]entity.CartItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}

	return out
}

// Quantity returns the quantity held for productID, zero when absent.
func (c *Cart) Quantity(productID string) int {
	if item, ok := c.items[productID]; ok {
		return item.Quantity
	}

	return 0
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
