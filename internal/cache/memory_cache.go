package cache

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const memoryBackend = "memory"

type memoryItem struct {
	data      []byte
	expiresAt time.Time
}

// MemorySearchCache is an in-process SearchCache backed by an expirable LRU.
// Entries are stored encoded so readers never share slices with writers.
type MemorySearchCache struct {
	keyspace
	lru *expirable.LRU[string, memoryItem]
	now func() time.Time
}

// NewMemorySearchCache creates an LRU cache holding at most size entries.
// maxTTL bounds every entry; Set may use a shorter ttl.
func NewMemorySearchCache(size int, maxTTL time.Duration, prefix string) *MemorySearchCache {
	if size <= 0 {
		size = 1024
	}
	return &MemorySearchCache{
		keyspace: keyspace{prefix: prefix},
		lru:      expirable.NewLRU[string, memoryItem](size, nil, maxTTL),
		now:      time.Now,
	}
}

func (c *MemorySearchCache) Get(_ context.Context, key string) (entry *Entry, err error) {
	defer func() { observeLookup(memoryBackend, err) }()

	item, ok := c.lru.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}
	if !item.expiresAt.IsZero() && !c.now().Before(item.expiresAt) {
		c.lru.Remove(key)
		return nil, ErrCacheMiss
	}

	return Decode(item.data)
}

func (c *MemorySearchCache) Set(_ context.Context, key string, entry *Entry, ttl time.Duration) error {
	data, err := Encode(entry)
	if err != nil {
		return err
	}

	item := memoryItem{data: data}
	if ttl > 0 {
		item.expiresAt = c.now().Add(ttl)
	}
	c.lru.Add(key, item)
	return nil
}

func (c *MemorySearchCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		c.lru.Remove(key)
	}
	return nil
}

func (c *MemorySearchCache) DeleteLists(_ context.Context) (int, error) {
	prefix := c.listPrefix()
	deleted := 0
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) && c.lru.Remove(key) {
			deleted++
		}
	}
	return deleted, nil
}

func (c *MemorySearchCache) Close() error {
	c.lru.Purge()
	return nil
}
