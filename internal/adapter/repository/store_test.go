package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) (*SQLiteStore, func()) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore() failed: %v", err)
	}
	teardown := func() {
		store.Close()
		os.Remove(path)
	}
	return store, teardown
}

func testStores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, teardown := setupTestDB(t)
	t.Cleanup(teardown)

	file, err := NewFileStore(filepath.Join(t.TempDir(), "store"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}
	return map[string]Store{
		"sqlite": sqlite,
		"file":   file,
		"memory": NewMemoryStore(),
	}
}

func TestStores_GetSet(t *testing.T) {
	ctx := context.Background()
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Get(ctx, ResumeKey); !errors.Is(err, ErrNotFound) {
				t.Fatalf("wanted ErrNotFound, got %v", err)
			}

			if err := store.Set(ctx, ResumeKey, `{"a":1}`); err != nil {
				t.Fatalf("wanted nil, got %v", err)
			}
			if err := store.Set(ctx, TemplateKey, "modern"); err != nil {
				t.Fatalf("wanted nil, got %v", err)
			}
			if err := store.Set(ctx, ResumeKey, `{"a":2}`); err != nil {
				t.Fatalf("wanted nil, got %v", err)
			}

			got, err := store.Get(ctx, ResumeKey)
			if err != nil {
				t.Fatalf("wanted nil, got %v", err)
			}
			if got != `{"a":2}` {
				t.Fatalf("wanted last write, got %q", got)
			}
			got, err = store.Get(ctx, TemplateKey)
			if err != nil || got != "modern" {
				t.Fatalf("wanted modern, got %q (%v)", got, err)
			}
		})
	}
}

func TestSQLiteStore_RepeatedWritesDoNotGrow(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	ctx := context.Background()
	for i := 0; i < 200; i++ {
		if err := store.Set(ctx, ResumeKey, fmt.Sprintf("value-%d", i)); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	var rows int
	if err := store.dbConn.Get(&rows, "SELECT COUNT(*) FROM kv_store"); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("wanted 1 row, got %d", rows)
	}
}

func TestSQLiteStore_ConnectionPragmas(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	var mode string
	if err := store.dbConn.Get(&mode, "PRAGMA journal_mode"); err != nil {
		t.Fatalf("reading journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Fatalf("wanted wal journal, got %q", mode)
	}

	var timeout int
	if err := store.dbConn.Get(&timeout, "PRAGMA busy_timeout"); err != nil {
		t.Fatalf("reading busy_timeout: %v", err)
	}
	if timeout != 5000 {
		t.Fatalf("wanted busy_timeout 5000, got %d", timeout)
	}
}

func TestSQLiteStore_ReopenKeepsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "resume.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Set(ctx, TemplateKey, "executive"); err != nil {
		t.Fatalf("set: %v", err)
	}
	first.Close()

	second, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	got, err := second.Get(ctx, TemplateKey)
	if err != nil || got != "executive" {
		t.Fatalf("wanted executive, got %q (%v)", got, err)
	}
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}
	ctx := context.Background()
	for i := 0; i < 20; i++ {
		if err := store.Set(ctx, ResumeKey, fmt.Sprint(i)); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != ResumeKey {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("wanted only %s, got %v", ResumeKey, names)
	}
}
