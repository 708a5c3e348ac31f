package repository

import (
	"context"
	"fmt"
	"log/slog"

	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/pkg/infrastructure"
)

// Open returns the Store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig, log *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return NewSQLiteStore(cfg.Path)
	case "file":
		return NewFileStore(cfg.Path)
	case "memory":
		return NewMemoryStore(), nil
	case "postgres":
		pool, err := infrastructure.NewPool(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		if err := migration.RunMigrations(ctx, pool, log); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrating postgres store: %w", err)
		}
		return NewPGStore(pool), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
