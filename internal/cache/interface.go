package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrCacheMiss is returned by Get when the key is absent or expired.
	ErrCacheMiss = errors.New("cache miss")
	// ErrCorrupt is returned by Get when a stored payload cannot be decoded.
	ErrCorrupt = errors.New("corrupt cache entry")
)

// SearchCache stores search result lists and single bestiaries.
type SearchCache interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeleteLists drops every cached search list and reports how many
	// entries were removed.
	DeleteLists(ctx context.Context) (int, error)
	BuildListKey(settingsKey string) string
	BuildRecordKey(id int64) string
	Close() error
}
