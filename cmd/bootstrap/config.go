package bootstrap

import (
	"log/slog"

	"event-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

// logConfig records the non-secret settings once at startup.
func logConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"redis_enabled", cfg.Redis.Enabled,
		"upload_dir", cfg.Upload.Dir,
		"admin_seed", cfg.Admin.Enabled(),
	)
}
