// Package cache stores transformed output keyed by a hash of the input and
// the options that produced it.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for `transpose serve`
//   - [NullCache]: stores nothing; the default when caching is off
//
// Keys come from [Key], which hashes the raw input together with a
// JSON-serializable description of the options, so the same bytes read with
// a different separator or angle never collide.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// TTLResult is the lifetime of a cached transform result.
const TTLResult = 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Key builds a cache key for input transformed with opts. opts must be
// JSON-serializable; it is hashed alongside the input.
func Key(input []byte, opts any) string {
	o, _ := json.Marshal(opts)
	h := sha256.New()
	h.Write(input)
	h.Write([]byte{0})
	h.Write(o)
	return "result:" + hex.EncodeToString(h.Sum(nil))
}
