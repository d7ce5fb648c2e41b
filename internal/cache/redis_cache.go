package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/weiawesome/bestiary-search/internal/config"
)

const (
	redisBackend  = "redis"
	scanBatchSize = 256
)

type RedisSearchCache struct {
	keyspace
	client *redis.Client
}

// NewRedisSearchCache creates a new Redis-based search cache.
func NewRedisSearchCache(cfg config.RedisConfig, prefix string) (*RedisSearchCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisSearchCacheFromClient(client, prefix), nil
}

// NewRedisSearchCacheFromClient wraps an existing client.
func NewRedisSearchCacheFromClient(client *redis.Client, prefix string) *RedisSearchCache {
	return &RedisSearchCache{
		keyspace: keyspace{prefix: prefix},
		client:   client,
	}
}

func (c *RedisSearchCache) Get(ctx context.Context, key string) (entry *Entry, err error) {
	defer func() { observeLookup(redisBackend, err) }()

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	return Decode(data)
}

func (c *RedisSearchCache) Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) error {
	data, err := Encode(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in redis: %w", err)
	}

	return nil
}

func (c *RedisSearchCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}

	return nil
}

func (c *RedisSearchCache) DeleteLists(ctx context.Context) (int, error) {
	pattern := escapeGlob(c.listPrefix()) + "*"
	iter := c.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()

	var (
		batch   []string
		deleted int
	)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := c.client.Del(ctx, batch...).Result()
		if err != nil {
			return fmt.Errorf("failed to delete from redis: %w", err)
		}
		deleted += int(n)
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) >= scanBatchSize {
			if err := flush(); err != nil {
				return deleted, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("failed to scan redis: %w", err)
	}
	if err := flush(); err != nil {
		return deleted, err
	}

	return deleted, nil
}

func (c *RedisSearchCache) Close() error {
	return c.client.Close()
}

// escapeGlob quotes the characters Redis MATCH treats as wildcards.
func escapeGlob(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
