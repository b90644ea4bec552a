// Package storage provides the key-value persistence boundary the Store
// writes through: serialized documents addressed by key, with memory,
// file and SQLite backed implementations.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound reports an absent key. Callers treat it as a valid empty
// state, not a failure.
var ErrNotFound = errors.New("key not found")

// KV is a minimal get/set/remove store for serialized documents.
type KV interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
