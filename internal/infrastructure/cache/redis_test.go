package cache_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/config"
	"github.com/DanielPopoola/proofing-gallery/internal/infrastructure/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := cache.Connect(ctx, config.RedisConfig{
		URL:         fmt.Sprintf("redis://%s:%s/0", host, port.Port()),
		DialTimeout: 5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestAccessCodeCache(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()
	c := cache.NewAccessCodeCache(client, time.Minute)

	_, found, err := c.Get(ctx, "code-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "code-1", "gallery-1"))

	galleryID, found, err := c.Get(ctx, "code-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "gallery-1", galleryID)

	ttl, err := client.TTL(ctx, "gallery:access:code-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestConnect_RejectsBadURL(t *testing.T) {
	_, err := cache.Connect(context.Background(), config.RedisConfig{URL: "not a url"},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
