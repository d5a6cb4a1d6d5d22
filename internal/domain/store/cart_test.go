package store

import (
	"math/rand/v2"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededProduct(t *testing.T, id string) entity.Product {
	t.Helper()

	for _, p := range SeedProducts() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("seed product %s not found", id)

	return entity.Product{}
}

func TestCart_KnownSubtotal(t *testing.T) {
	cart := NewCart()
	bat := seededProduct(t, "1")
	football := seededProduct(t, "2")

	cart.AddToCart(bat)
	cart.AddToCart(bat)
	cart.AddToCart(football)

	assert.Equal(t, 3, cart.CartCount())
	assert.True(t, decimal.RequireFromString("214.97").Equal(cart.Subtotal()), "subtotal = %s", cart.Subtotal())
}

func TestCart_DecrementLastUnitRemovesEntry(t *testing.T) {
	cart := NewCart()
	bat := seededProduct(t, "1")
	football := seededProduct(t, "2")
	cart.AddToCart(bat)
	cart.AddToCart(football)

	cart.DecrementQuantity(bat.ID)

	assert.Equal(t, 0, cart.Quantity(bat.ID))
	assert.Equal(t, 1, cart.CartCount())
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, football.ID, items[0].Product.ID)
}

func TestCart_OperationsOnAbsentEntriesAreNoOps(t *testing.T) {
	cart := NewCart()

	cart.IncrementQuantity("missing")
	cart.DecrementQuantity("missing")
	cart.RemoveFromCart("missing")

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.CartCount())
	assert.True(t, cart.Subtotal().IsZero())
}

func TestCart_ItemsKeepInsertionOrder(t *testing.T) {
	cart := NewCart()
	ids := []string{"3", "1", "2"}
	for _, id := range ids {
		cart.AddToCart(seededProduct(t, id))
	}
	cart.IncrementQuantity("1")
	cart.AddToCart(seededProduct(t, "3"))

	items := cart.Items()
	require.Len(t, items, 3)
	for i, id := range ids {
		assert.Equal(t, id, items[i].Product.ID)
	}
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, items[1].Quantity)

	cart.RemoveFromCart("1")
	cart.AddToCart(seededProduct(t, "1"))
	items = cart.Items()
	assert.Equal(t, "1", items[2].Product.ID)
	assert.Equal(t, 1, items[2].Quantity)
}

func TestCart_ClearCart(t *testing.T) {
	cart := NewCart()
	cart.AddToCart(seededProduct(t, "4"))
	cart.AddToCart(seededProduct(t, "5"))

	cart.ClearCart()

	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.CartCount())
}

func TestCart_RandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	products := SeedProducts()
	cart := NewCart()

	for step := 0; step < 5000; step++ {
		p := products[rng.IntN(len(products))]
		switch rng.IntN(4) {
		case 0:
			cart.AddToCart(p)
		case 1:
			cart.IncrementQuantity(p.ID)
		case 2:
			cart.DecrementQuantity(p.ID)
		case 3:
			cart.RemoveFromCart(p.ID)
		}

		sum := 0
		subtotal := decimal.Zero
		for _, item := range cart.Items() {
			require.GreaterOrEqual(t, item.Quantity, 1, "step %d", step)
			sum += item.Quantity
			subtotal = subtotal.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		require.Equal(t, sum, cart.CartCount(), "step %d", step)
		require.True(t, subtotal.Equal(cart.Subtotal()), "step %d", step)
	}
}
