package cache

import (
	"context"
	"time"
)

// Store caches serialized analysis results keyed by record fingerprint. Both
// backends treat misses and expired entries identically.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, expiration time.Duration)
	Delete(ctx context.Context, key string)
}
