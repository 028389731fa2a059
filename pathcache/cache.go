// Package pathcache stores finished path queries so repeated lookups on the
// same grid skip the search.
//
// Keys come from Key, which hashes the grid fingerprint with both endpoints,
// so entries for different grids never collide. Values are Entry records
// encoded as JSON. Backends:
//
//   - Memory: in-process LRU with optional TTL.
//   - Redis:  shared across processes, TTL handled by Redis.
//   - Null:   caches nothing.
package pathcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/jumpgrid/gridgraph"
)

// ErrBadEntry is returned by Decode for data that is not an encoded Entry.
var ErrBadEntry = errors.New("pathcache: malformed entry")

// Cache is a byte-oriented key/value store with per-entry TTL.
// A ttl of 0 means the entry does not expire.
type Cache interface {
	// Get returns the stored data and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Entry is one cached answer. Found=false records a proven no-path result,
// which is as worth caching as a path.
type Entry struct {
	Found bool              `json:"found"`
	Path  []gridgraph.Coord `json:"path,omitempty"`
	Cost  float64           `json:"cost"`
}

// Key returns "jumpgrid:path:<sha256>" for a query on the grid with the
// given fingerprint.
func Key(fingerprint string, from, to gridgraph.Coord) string {
	return hashKey("jumpgrid:path", fingerprint, from, to)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)

	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Encode serializes e.
func Encode(e Entry) ([]byte, error) {
	return json.Marshal(e)
}

// Decode parses data produced by Encode.
func Decode(data []byte) (Entry, error) {
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrBadEntry, err)
	}
	if e.Found && len(e.Path) == 0 {
		return Entry{}, fmt.Errorf("%w: found entry without path", ErrBadEntry)
	}

	return e, nil
}

// Lookup fetches and decodes the entry for key. A malformed entry is deleted
// and reported as a miss.
func Lookup(ctx context.Context, c Cache, key string) (Entry, bool, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return Entry{}, false, err
	}
	e, err := Decode(data)
	if err != nil {
		_ = c.Delete(ctx, key)
		return Entry{}, false, nil
	}

	return e, true, nil
}

// Store encodes e and writes it under key.
func Store(ctx context.Context, c Cache, key string, e Entry, ttl time.Duration) error {
	data, err := Encode(e)
	if err != nil {
		return err
	}

	return c.Set(ctx, key, data, ttl)
}
