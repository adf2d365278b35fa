// Package state persists small named slots of console state (such as the
// current session) in the local SQLite database.
package state

import (
	"context"
)

// Repository is a key-value slot store. Get returns nil for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
