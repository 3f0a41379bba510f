package transient

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/zerr"
)

// RedisClient is the subset of go-redis client methods Redis uses. Keeping
// it narrow lets tests substitute a miniredis-backed client.
type RedisClient interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

// Redis is a TransientStore backed by a redis server, for deployments where
// several processes share one cache.
type Redis struct {
	client RedisClient
	prefix string
}

// NewRedis connects to the configured server and verifies the connection
// with a ping.
func NewRedis(ctx context.Context, settings domain.RedisSettings) (*Redis, error) {
	opts := &redis.Options{
		Addr: settings.Address,
		DB:   settings.DB,
	}
	if settings.Password != "" {
		opts.Password = settings.Password
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, zerr.With(zerr.Wrap(err, "redis ping failed"), "address", settings.Address)
	}
	return &Redis{client: client, prefix: settings.Prefix}, nil
}

// NewRedisWithClient wraps a pre-built client. Intended for tests.
func NewRedisWithClient(client RedisClient, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// Get returns the stored value, or nil when the key is absent.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "redis get failed"), "key", key)
	}
	return value, nil
}

// Set stores value under key with the given expiry. A non-positive ttl keeps
// the key until deleted.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, r.prefix+key, value, ttl).Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "redis set failed"), "key", key)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "redis delete failed"), "key", key)
	}
	return nil
}

// Close releases the client connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
