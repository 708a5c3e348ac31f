package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// SQLiteStore keeps values in a single kv_store table of a local SQLite file.
type SQLiteStore struct {
	dbConn *sqlx.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (creating if needed) the database at path and applies
// pending migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database dir: %w", err)
		}
	}

	// the CLI and the server may share the file
	db, err := sqlx.Connect("sqlite", fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path))
	if err != nil {
		return nil, fmt.Errorf("connecting to db: %w", err)
	}
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting dialect for migrations: %w", err)
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}
	return &SQLiteStore{dbConn: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.dbConn.GetContext(ctx, &value, `SELECT value FROM kv_store WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("getting %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.dbConn.ExecContext(ctx, `INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if err := s.dbConn.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	return nil
}
