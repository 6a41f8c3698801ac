package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/custodia-labs/postnav/internal/core/ports/driven"
)

// DefaultRedisPrefix namespaces postnav keys in a shared Redis.
const DefaultRedisPrefix = "postnav:"

var _ driven.ResultCache = (*Redis)(nil)

// Redis is a result cache stored in Redis, shared by every process
// pointing at the same server.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis creates a Redis cache from a redis:// URL.
func NewRedis(url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	return NewRedisWithClient(redis.NewClient(opts), ttl), nil
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		prefix: DefaultRedisPrefix,
		ttl:    ttl,
	}
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Get returns the value stored under group and key.
func (r *Redis) Get(ctx context.Context, group, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, r.key(group, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return value, true, nil
}

// Set stores value under group and key with the configured TTL.
func (r *Redis) Set(ctx context.Context, group, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(group, key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *Redis) key(group, key string) string {
	return r.prefix + group + ":" + key
}
