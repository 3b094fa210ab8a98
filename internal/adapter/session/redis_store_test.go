package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and load", func(t *testing.T) {
		store, mr := newTestStore(t, time.Hour)
		require.NoError(t, store.Save(ctx, "abc", "0xwallet"))

		got, err := store.Load(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "0xwallet", got)

		val, err := mr.Get("session:abc")
		require.NoError(t, err)
		assert.Equal(t, "0xwallet", val)
		assert.Equal(t, time.Hour, mr.TTL("session:abc"))
	})

	t.Run("save replaces wallet", func(t *testing.T) {
		store, _ := newTestStore(t, time.Hour)
		require.NoError(t, store.Save(ctx, "abc", "0xone"))
		require.NoError(t, store.Save(ctx, "abc", "0xtwo"))

		got, err := store.Load(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "0xtwo", got)
	})

	t.Run("unknown session", func(t *testing.T) {
		store, _ := newTestStore(t, time.Hour)
		got, err := store.Load(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("expired session", func(t *testing.T) {
		store, mr := newTestStore(t, time.Minute)
		require.NoError(t, store.Save(ctx, "abc", "0xwallet"))
		mr.FastForward(2 * time.Minute)

		got, err := store.Load(ctx, "abc")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("backend failure", func(t *testing.T) {
		store, mr := newTestStore(t, time.Minute)
		mr.Close()

		_, err := store.Load(ctx, "abc")
		require.Error(t, err)
	})
}
