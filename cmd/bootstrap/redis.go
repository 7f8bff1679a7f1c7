package bootstrap

import (
	"context"
	"log/slog"

	"event-booking/internal/infra/db"
	"event-booking/internal/infra/tokenstore"
	"event-booking/internal/pkg/config"
	"event-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRevocationStore,
	),
)

// NewRevocationStore falls back to a no-op store when Redis is disabled; logout then only succeeds client-side.
func NewRevocationStore(lc fx.Lifecycle, cfg config.Config) (shared.TokenRevocationStore, error) {
	if !cfg.Redis.Enabled {
		slog.Info("Redis disabled, token revocation is a no-op")
		return tokenstore.NewNoopRevocationStore(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, cleanup, err := db.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return tokenstore.NewRedisRevocationStore(client, cfg.Redis.KeyPrefix), nil
}
