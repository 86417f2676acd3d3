package blob

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobdeck/jobdeck/pkg/types"
)

// defaultRedisKey is the key holding the table blob when none is configured.
const defaultRedisKey = "jobdeck:applications"

// RedisBackend stores the table blob under a single key on a remote Redis
// instance. Redis SET is all-or-nothing, which gives the atomic-write
// guarantee the contract requires.
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisBackend connects to the configured Redis instance and verifies
// the connection with a ping.
func NewRedisBackend(cfg types.RedisConfig) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}

	key := cfg.Key
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisBackend{client: client, key: key}, nil
}

// Read returns the blob stored under the configured key, or ErrBlobNotFound
// when the key does not exist.
func (b *RedisBackend) Read() ([]byte, error) {
	data, err := b.client.Get(context.Background(), b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, types.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading key %s: %w", b.key, err)
	}
	return data, nil
}

// Write replaces the blob under the configured key. No TTL: the table blob
// is the database, not a cache entry.
func (b *RedisBackend) Write(data []byte) error {
	if err := b.client.Set(context.Background(), b.key, data, 0).Err(); err != nil {
		return fmt.Errorf("writing key %s: %w", b.key, err)
	}
	return nil
}

// Close releases the Redis connection.
func (b *RedisBackend) Close() error {
	return b.client.Close()
}
