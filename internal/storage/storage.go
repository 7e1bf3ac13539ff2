// Package storage provides the key-value persistence port the commerce
// stores flush their state into. Values are opaque string blobs; each
// store owns exactly one key.
package storage

import "context"

// Port is a durable key-value store of named string blobs.
type Port interface {
	// Get returns the blob stored under key. The bool reports presence.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
