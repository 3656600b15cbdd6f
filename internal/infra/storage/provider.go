package storage

import (
	"context"
	"log/slog"

	"solarsavers/config"
	"solarsavers/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the key-value store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the durable store selected by storage.driver and closes it on shutdown.
func New(params Params) (repository.KeyValueStore, error) {
	store, err := Open(params.Ctx, params.Config.Storage, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing key-value store")

			return store.Close()
		},
	})

	return store, nil
}

// Open builds a store without fx; the CLI uses it directly.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (repository.KeyValueStore, error) {
	switch cfg.Driver {
	case config.StorageFile, "":
		logger.Debug("Using file storage", slog.String("dir", cfg.Dir))

		return NewFileStore(cfg.Dir, logger)
	case config.StorageMemory:
		logger.Debug("Using in-memory storage")

		return NewMemoryStore(logger), nil
	case config.StorageRedis:
		return NewRedisStore(ctx, cfg.Redis, logger)
	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
