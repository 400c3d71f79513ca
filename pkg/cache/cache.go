// Package cache provides byte-payload caching for remote document fetches.
//
// Three backends implement the Cache interface:
//   - FileCache: XDG cache directory storage for CLI usage
//   - RedisCache: shared storage for serve mode
//   - NullCache: no-op, used when caching is disabled
//
// Keys are namespaced strings; payloads are opaque bytes with a TTL.
package cache

import (
	"context"
	"time"
)

// Default TTLs per payload category.
const (
	// TTLDocument is how long fetched canvas documents stay fresh.
	TTLDocument = 15 * time.Minute

	// TTLArtifact is how long rendered previews stay cached.
	TTLArtifact = 24 * time.Hour
)

// Cache stores byte payloads under string keys with expiration.
type Cache interface {
	// Get retrieves a payload. The second return value reports a hit;
	// expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a payload. A non-positive ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a payload. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// NullCache is a no-op cache that never stores anything.
// Useful for testing or when caching should be disabled.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always returns a cache miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
