// Package store holds the per-session state containers of the storefront: cart, reactions,
// catalog, hero preference and the view router.
package store

import "github.com/pkg/errors"

var (
	// ErrPersistence is returned when a durable write fails; the in-memory state is left unchanged.
	ErrPersistence = errors.New("persistence failed")

	// ErrProductNotFound is returned when a product id does not resolve in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidTransition is returned when a router action is not allowed from the current view.
	ErrInvalidTransition = errors.New("invalid view transition")

	// ErrUnknownAction is returned when a navigation action name is not recognised.
	ErrUnknownAction = errors.New("unknown navigation action")

	// ErrInvalidHeroVariant is returned when setting an unknown hero image variant.
	ErrInvalidHeroVariant = errors.New("invalid hero variant")

	// ErrIDExhausted is returned when no collision-free product id could be generated.
	ErrIDExhausted = errors.New("could not generate a unique product id")
)
