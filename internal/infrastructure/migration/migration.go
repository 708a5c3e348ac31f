package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations creates or upgrades the Postgres schema used by the store.
// Each step is idempotent, so it runs on every startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	log.Info("Starting database migrations")

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			log.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		log.Info("Migration completed", "name", m.Name)
	}

	log.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

var migrations = []Migration{
	{Name: "create_resume_store", Up: execStep(createResumeStore)},
	{Name: "add_updated_at_to_resume_store", Up: execStep(addUpdatedAt)},
}

const createResumeStore = `
	CREATE TABLE IF NOT EXISTS resume_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
`

const addUpdatedAt = `
	ALTER TABLE resume_store
	ADD COLUMN IF NOT EXISTS updated_at TIMESTAMPTZ NOT NULL DEFAULT now();
`

func execStep(query string) func(ctx context.Context, pool *pgxpool.Pool) error {
	return func(ctx context.Context, pool *pgxpool.Pool) error {
		_, err := pool.Exec(ctx, query)
		return err
	}
}
