package kv

import (
	"context"
)

// Repository is a durable key/value blob store, the local analog of the
// original product's browser storage.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
