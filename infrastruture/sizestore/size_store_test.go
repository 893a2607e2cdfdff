package sizestore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "maze:last_size"

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10)

	size, err := s.LastSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, size)

	require.NoError(t, s.SaveSize(ctx, 17))
	size, err = s.LastSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 17, size)

	assert.ErrorIs(t, s.SaveSize(ctx, 0), ErrInvalidSize)
	size, _ = s.LastSize(ctx)
	assert.Equal(t, 17, size)
}

func newRedisStore(t *testing.T) (*RedisSizeStore, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSizeStore(client, testKey, 10), srv
}

func TestRedisSizeStore(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingKeyGivesDefault", func(t *testing.T) {
		s, _ := newRedisStore(t)
		size, err := s.LastSize(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10, size)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		s, srv := newRedisStore(t)
		require.NoError(t, s.SaveSize(ctx, 23))

		raw, err := srv.Get(testKey)
		require.NoError(t, err)
		assert.Equal(t, "23", raw)

		size, err := s.LastSize(ctx)
		require.NoError(t, err)
		assert.Equal(t, 23, size)
	})

	t.Run("RejectsInvalidSize", func(t *testing.T) {
		s, srv := newRedisStore(t)
		assert.ErrorIs(t, s.SaveSize(ctx, -3), ErrInvalidSize)
		assert.False(t, srv.Exists(testKey))
	})

	t.Run("CorruptValue", func(t *testing.T) {
		s, srv := newRedisStore(t)
		for _, raw := range []string{"abc", "-4", "0"} {
			require.NoError(t, srv.Set(testKey, raw))
			size, err := s.LastSize(ctx)
			assert.ErrorIs(t, err, ErrInvalidSize, raw)
			assert.Equal(t, 10, size, raw)
		}
	})

	t.Run("ServerError", func(t *testing.T) {
		s, srv := newRedisStore(t)
		require.NoError(t, s.SaveSize(ctx, 12))

		srv.SetError("ERR server unavailable")
		size, err := s.LastSize(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidSize)
		assert.Equal(t, 10, size)
	})
}
