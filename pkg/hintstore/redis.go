package hintstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds connection settings for a Redis-backed hint store.
type RedisConfig struct {
	ConnectionURL  string        `env:"SESSION_HINT_REDIS_URL" envDefault:"redis://localhost:6379/0"` // format "redis://:password@host:6379/0"
	ConnectTimeout time.Duration `env:"SESSION_HINT_REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
	RetryAttempts  int           `env:"SESSION_HINT_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"SESSION_HINT_REDIS_RETRY_INTERVAL" envDefault:"2s"`
}

// RedisStore persists the hint in Redis under a per-device key. Used by
// kiosk and shared-display dashboard deployments where local disk is
// unavailable or wiped between sessions.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Redis-backed hint store using an established
// client. The key should be unique per device, e.g. "session:hint:<device>".
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

// ConnectRedis establishes a Redis connection for a hint store, retrying
// the initial ping up to cfg.RetryAttempts times.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	for range cfg.RetryAttempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

func (r *RedisStore) Get(ctx context.Context) (bool, error) {
	val, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get hint key: %w", err)
	}
	return val == "1", nil
}

func (r *RedisStore) Set(ctx context.Context, value bool) error {
	if !value {
		return r.Clear(ctx)
	}
	// No TTL: the hint lives until an explicit Clear.
	if err := r.client.Set(ctx, r.key, "1", 0).Err(); err != nil {
		return fmt.Errorf("set hint key: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("delete hint key: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
