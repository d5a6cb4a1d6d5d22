// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// Domain-specific errors for key-value persistence.
var (
	// ErrKeyNotFound is returned when no value is stored under a key.
	ErrKeyNotFound = errors.New("key not found")
)

// KeyValueStore is durable string-keyed, string-valued storage.
// Set completes the write before returning; a failed write returns an error at the call site.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
