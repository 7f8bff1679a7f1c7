package bootstrap

import (
	"event-booking/internal/infra/storage"
	"event-booking/internal/pkg/config"
	"event-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			NewImageStore,
			fx.As(new(shared.ImageStore)),
		),
	),
)

func NewImageStore(cfg config.Config) (*storage.LocalImageStore, error) {
	return storage.NewLocalImageStore(cfg.Upload)
}
