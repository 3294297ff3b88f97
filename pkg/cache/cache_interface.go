package cache

import (
	"context"
	"time"
)

// Cache is the read-through cache used by repositories.
// Implementations: Redis (internal/infrastructure/cache).
type Cache interface {
	// Get loads key into dest.
	// found = false on a miss, dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys.
	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}
