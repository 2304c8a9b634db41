package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache used by taxonomy
// repositories. Implementations must treat a miss as (false, nil), not
// an error, so callers can fall through to the database.
type Cache interface {
	// Get unmarshals the cached value into dest. Returns found=false on
	// a miss, leaving dest untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
