package store

import (
	"context"
	"time"
)

// Store is an injectable key-value cache with per-entry expiry. Implementations
// are created at process start and torn down with Close; nothing in the
// pipeline reaches for a process-global cache.
type Store interface {
	// Get returns the value for key and whether a live entry existed.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// EvictExpired removes entries whose TTL has passed. Backends that expire
	// on their own may treat this as a no-op.
	EvictExpired(ctx context.Context) error
	Close() error
}
