// Package cache provides a small key-value cache used to memoize read-only
// simulation results. Keys embed every input of the computation, so a stale
// entry can never be wrong — the worst case is a miss.
package cache

import (
	"context"
	"time"
)

// Cache is the interface consumed by the service layer.
type Cache interface {
	// Get returns the cached value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores value under key with the given TTL (0 = no expiry).
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
