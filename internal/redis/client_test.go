package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/petoverse-api/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.Error(t, err)
}

func TestOpenEmbedded(t *testing.T) {
	client, stop, embedded, err := redis.Open("", &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer stop()

	assert.True(t, embedded)

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "k", "v", 0).Err())
	got, err := client.Get(ctx, "k").Result()
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	_, err = client.Get(ctx, "missing").Result()
	assert.ErrorIs(t, err, redis.Nil)
}

func TestOpenEndpoint(t *testing.T) {
	mr := miniredis.RunT(t)

	client, stop, embedded, err := redis.Open(mr.Addr(), nil)
	require.NoError(t, err)
	defer stop()

	assert.False(t, embedded)
	require.NoError(t, client.Ping(context.Background()).Err())
}
