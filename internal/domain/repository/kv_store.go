// Package repository defines the interfaces for the persistence and remote data layers.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// Durable keys. Each key is owned by exactly one store.
const (
	KeyToken    = "token"
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
	KeyCompare  = "compare"
)

// ErrKeyNotFound is returned by Get when the key has never been written or was deleted.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the durable client-side storage (the browser's local storage equivalent).
// Writes are synchronous: once Set returns, a Get from any store sharing the backend sees the value.
// There is no locking across processes; the last writer wins.
type KeyValueStore interface {
	// Get returns the raw value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}
