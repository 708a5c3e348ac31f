package app

import (
	"context"
	"path/filepath"
	"testing"

	"resume-builder/internal/config"
	"resume-builder/internal/domain"
	"resume-builder/internal/logging"
	"resume-builder/internal/usecase"
)

func TestNew_StateSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: "sqlite", Path: filepath.Join(dir, "resume.db")},
		Export:  config.ExportConfig{Dir: filepath.Join(dir, "out"), Attempts: 1},
	}
	ctx := context.Background()

	first, err := New(ctx, cfg, logging.Discard())
	if err != nil {
		t.Fatalf("wanted nil, got %v", err)
	}
	if _, err := first.Orchestrator.Dispatch(ctx, usecase.AddSkill{Name: "Go", Level: 4}); err != nil {
		t.Fatal(err)
	}
	first.Orchestrator.SelectTemplate(ctx, domain.TemplateCreative)
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	second, err := New(ctx, cfg, logging.Discard())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	d, _ := second.Orchestrator.Snapshot()
	if len(d.Skills) != 1 || d.Skills[0].Name != "Go" || d.Skills[0].Level != 4 {
		t.Fatalf("skills not restored: %+v", d.Skills)
	}
	if second.Orchestrator.Template() != domain.TemplateCreative {
		t.Fatalf("template not restored: %s", second.Orchestrator.Template())
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "tape"}}
	if _, err := New(context.Background(), cfg, logging.Discard()); err == nil {
		t.Fatal("wanted an error")
	}
}
