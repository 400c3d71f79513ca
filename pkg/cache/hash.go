package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Key builds a namespaced cache key: "namespace:hash(parts joined)".
// Hashing keeps keys filesystem- and redis-safe regardless of what the
// parts contain.
func Key(namespace string, parts ...string) string {
	joined := make([]byte, 0, 64)
	for i, p := range parts {
		if i > 0 {
			joined = append(joined, 0)
		}
		joined = append(joined, p...)
	}
	return namespace + ":" + Hash(joined)
}
