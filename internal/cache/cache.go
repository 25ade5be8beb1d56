// Package cache provides the query-result cache injected into the bulk
// query service. It is an explicit collaborator so it can be swapped for
// Redis in deployment and disabled entirely in tests.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key is absent or expired.
var ErrNotFound = errors.New("cache: key not found")

// Cache is a byte-value cache with per-entry TTL and prefix invalidation.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// InvalidatePrefix removes every key starting with prefix. Used to
	// drop all of one owner's entries after a mutation.
	InvalidatePrefix(ctx context.Context, prefix string) error
}
