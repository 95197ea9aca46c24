package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/sim-catalog/internal/redis"
	"github.com/KirkDiggler/sim-catalog/internal/testutils"
)

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.Connect([]string{mr.Addr()}, nil)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestConnectValidation(t *testing.T) {
	_, err := redis.Connect(nil, nil)
	assert.Error(t, err)

	_, err = redis.NewClient("", nil)
	assert.Error(t, err)

	_, err = redis.NewClusterClient(nil, nil)
	assert.Error(t, err)

	client, err := redis.Connect([]string{"127.0.0.1:7000", "127.0.0.1:7001"}, &redis.Options{ReadOnly: true})
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}

func TestNewClientRoundTrip(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, client.HSet(ctx, "sim-catalog:snapshot:json", "encoding", "json").Err())

	got, err := client.HGet(ctx, "sim-catalog:snapshot:json", "encoding").Result()
	require.NoError(t, err)
	assert.Equal(t, "json", got)
}
