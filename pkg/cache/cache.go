// Package cache stores rendered documents so repeated renders of the same
// markup for the same roster are served without parsing or layout.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance, selected with MARKUP_REDIS_URL
//   - [NullCache]: never stores anything (--no-cache)
//
// # Keys
//
// Keys are built by a [Keyer]. [DefaultKeyer] hashes the document together
// with every option that changes the output, so a key never maps to stale
// output. [ScopedKeyer] prefixes keys to keep viewers or tenants apart.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// TTLs for cached entries.
const (
	TTLRender = 7 * 24 * time.Hour
	TTLSVG    = 24 * time.Hour
)

// Clearer is implemented by caches that can drop all of their entries.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}
