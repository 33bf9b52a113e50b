package roster

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-charsheet/internal/redis"
)

const defaultNamespace = "charsheet:"

// RedisStoreConfig contains configuration for the Redis-backed primary store
type RedisStoreConfig struct {
	Client redisclient.Client
	// Namespace prefixes every key; defaults to "charsheet:"
	Namespace string
	// MaxValueBytes rejects larger values when positive, mimicking a capacity-limited cache
	MaxValueBytes int
}

// Validate validates the RedisStoreConfig
func (cfg *RedisStoreConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.MaxValueBytes < 0 {
		return errors.InvalidArgument("max value bytes cannot be negative")
	}
	return nil
}

// RedisStore is the fast primary tier
type RedisStore struct {
	client        redisclient.Client
	namespace     string
	maxValueBytes int
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(cfg *RedisStoreConfig) (*RedisStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	return &RedisStore{
		client:        cfg.Client,
		namespace:     namespace,
		maxValueBytes: cfg.MaxValueBytes,
	}, nil
}

func (r *RedisStore) key(key string) string {
	return r.namespace + key
}

// Get returns the value stored under key
func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	result, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return "", errors.NotFoundf("key %s not found", key)
		}
		slog.DebugContext(ctx, "redis get failed", "key", key, "error", err)
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read from redis")
	}
	return result, nil
}

// Set stores value under key
func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if r.maxValueBytes > 0 && len(value) > r.maxValueBytes {
		return errors.ResourceExhaustedf("value for %s is %d bytes, quota is %d", key, len(value), r.maxValueBytes)
	}
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write to redis")
	}
	return nil
}

// Delete removes key
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete from redis")
	}
	return nil
}
