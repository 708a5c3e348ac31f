// Package app wires configuration, storage, the orchestrator and the
// exporter together for the executables.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/editor"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/infrastructure"
)

type App struct {
	Config       *config.Config
	Log          *slog.Logger
	Store        *repository.Adapter
	Orchestrator *usecase.Orchestrator
	Exporter     *usecase.Exporter
}

// New opens the configured store and loads the saved editor state.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := repository.Open(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Storage.Driver, err)
	}
	adapter := repository.NewAdapter(store, log, editor.NewID)

	renderer := infrastructure.NewChromedpRenderer(cfg.Export.ChromePath, cfg.Export.Timeout)
	return &App{
		Config:       cfg,
		Log:          log,
		Store:        adapter,
		Orchestrator: usecase.NewOrchestrator(ctx, editor.New(), adapter, log),
		Exporter:     usecase.NewExporter(renderer, cfg.Export.Dir, cfg.Export.Attempts, log),
	}, nil
}

func (a *App) Close() error {
	return a.Store.Close()
}
