package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by a Backend when the key was never written.
var ErrKeyNotFound = errors.New("key not found")

// Backend is the durable key-value storage behind CatalogStore.
// Values are opaque serialized collections.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
