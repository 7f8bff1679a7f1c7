//go:build e2e

package tokenstore_test

import (
	"context"
	"testing"
	"time"

	"event-booking/internal/infra/tokenstore"

	"github.com/docker/go-connections/nat"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort(nat.Port("6379/tcp")).WithStartupTimeout(30 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		},
		Started: true,
	})
	require.NoError(t, err, "Redisコンテナの起動に失敗")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: host + ":" + port.Port()})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisRevocationStore(t *testing.T) {
	client := startRedis(t)
	store := tokenstore.NewRedisRevocationStore(client, "test:")
	ctx := context.Background()

	t.Run("失効したトークンはrevoked扱い", func(t *testing.T) {
		require.NoError(t, store.Revoke(ctx, "jti-revoked", time.Now().Add(time.Minute)))

		revoked, err := store.IsRevoked(ctx, "jti-revoked")
		require.NoError(t, err)
		assert.True(t, revoked)

		ttl, err := client.TTL(ctx, "test:revoked:jti-revoked").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("未失効のトークン", func(t *testing.T) {
		revoked, err := store.IsRevoked(ctx, "jti-active")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("期限切れトークンの失効は何も保存しない", func(t *testing.T) {
		require.NoError(t, store.Revoke(ctx, "jti-expired", time.Now().Add(-time.Minute)))

		n, err := client.Exists(ctx, "test:revoked:jti-expired").Result()
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
