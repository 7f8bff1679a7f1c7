package bootstrap

import (
	"context"
	"log/slog"

	"event-booking/internal/pkg/config"
	"event-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedAdmin),
)

// SeedAdmin makes sure the configured administrator exists before the server accepts requests.
func SeedAdmin(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands) {
	if !cfg.Admin.Enabled() {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := auth.EnsureAdmin(ctx, commands.RegisterRequest{
				Name:     cfg.Admin.Name,
				Email:    cfg.Admin.Email,
				Password: cfg.Admin.Password,
			}); err != nil {
				return err
			}
			slog.Info("admin account ensured", "email", cfg.Admin.Email)
			return nil
		},
	})
}
