package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")
	t.Setenv("CHROME_PATH", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("RESUME_CONFIG", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("wanted nil, got %v", err)
	}
	if cfg.Server.Port != 3000 || cfg.Storage.Driver != "sqlite" || cfg.Storage.Path != "resume-data/resume.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Export.Attempts != 3 || cfg.Export.Timeout != 60*time.Second {
		t.Fatalf("unexpected export defaults: %+v", cfg.Export)
	}
	if cfg.Server.Addr() != "127.0.0.1:3000" {
		t.Fatalf("wanted 127.0.0.1:3000, got %s", cfg.Server.Addr())
	}
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("RESUME_CONFIG", "")

	path := filepath.Join(dir, "resume.yaml")
	yaml := "storage:\n  driver: file\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RESUME_EXPORT_ATTEMPTS", "5")
	t.Setenv("CHROME_PATH", "/opt/chrome")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("wanted nil, got %v", err)
	}
	if cfg.Storage.Driver != "file" || cfg.Storage.Path != "resume-data/store" {
		t.Fatalf("wanted file driver with its default path, got %+v", cfg.Storage)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("wanted debug, got %s", cfg.Log.Level)
	}
	if cfg.Export.Attempts != 5 {
		t.Fatalf("wanted env override 5, got %d", cfg.Export.Attempts)
	}
	if cfg.Export.ChromePath != "/opt/chrome" {
		t.Fatalf("wanted legacy CHROME_PATH honoured, got %q", cfg.Export.ChromePath)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "")
	t.Setenv("RESUME_CONFIG", "")

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("RESUME_STORAGE_DRIVER", "mongo")
		if _, err := Load(""); err == nil {
			t.Fatal("wanted an error")
		}
	})
	t.Run("postgres without dsn", func(t *testing.T) {
		t.Setenv("RESUME_STORAGE_DRIVER", "postgres")
		if _, err := Load(""); err == nil {
			t.Fatal("wanted an error")
		}
	})
	t.Run("missing named file", func(t *testing.T) {
		if _, err := Load("/does/not/exist.yaml"); err == nil {
			t.Fatal("wanted an error")
		}
	})
}
