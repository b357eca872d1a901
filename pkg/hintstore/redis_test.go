package hintstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penguinmails/sessionkit/pkg/hintstore"
)

func newRedisStore(t *testing.T) *hintstore.RedisStore {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return hintstore.NewRedisStore(client, "session:hint:test-device")
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newRedisStore(t)

	v, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, v, "missing key means no hint")

	require.NoError(t, store.Set(ctx, true))
	v, err = store.Get(ctx)
	require.NoError(t, err)
	assert.True(t, v)

	require.NoError(t, store.Clear(ctx))
	v, err = store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, v)
}

func TestRedisStore_SetFalseClears(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newRedisStore(t)

	require.NoError(t, store.Set(ctx, true))
	require.NoError(t, store.Set(ctx, false))

	v, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, v)
}

func TestConnectRedis_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := hintstore.ConnectRedis(context.Background(), hintstore.RedisConfig{
		ConnectionURL:  "not-a-url",
		ConnectTimeout: 100 * time.Millisecond,
		RetryAttempts:  1,
		RetryInterval:  time.Millisecond,
	})
	assert.ErrorIs(t, err, hintstore.ErrInvalidRedisURL)
}
