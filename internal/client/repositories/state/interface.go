// Package state persists the console's durable client state as a small
// key/value table. The session credential lives here under a fixed key.
package state

import "context"

// Repository is a durable key/value store for client state.
// Get returns nil (not an error) for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
