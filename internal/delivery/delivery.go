// Package delivery defines the transports that expose the storefront.
package delivery

import "context"

// Delivery is a transport started by the application once the dependency graph is built.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
