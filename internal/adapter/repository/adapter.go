package repository

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// Adapter persists the editor state (the resume snapshot and the selected
// template) in a Store. Reads degrade to defaults and writes never return
// errors; both log what they had to swallow.
type Adapter struct {
	store Store
	log   *slog.Logger
	newID func() string
}

func NewAdapter(store Store, log *slog.Logger, newID func() string) *Adapter {
	if log == nil {
		log = slog.Default()
	}
	return &Adapter{store: store, log: log, newID: newID}
}

// Load returns the saved snapshot and template id. A missing, unreadable or
// structurally incompatible snapshot yields domain.Empty(); a missing
// template yields domain.DefaultTemplate. Unknown template ids are returned
// as stored and resolved at render time.
func (a *Adapter) Load(ctx context.Context) (domain.ResumeData, domain.TemplateID) {
	return a.LoadResume(ctx), a.LoadTemplate(ctx)
}

func (a *Adapter) LoadResume(ctx context.Context) domain.ResumeData {
	raw, err := a.store.Get(ctx, ResumeKey)
	if errors.Is(err, ErrNotFound) {
		return domain.Empty()
	}
	if err != nil {
		a.log.Warn("repository: reading saved resume failed, using empty resume", "key", ResumeKey, "error", err)
		return domain.Empty()
	}
	d, err := model.DecodeSnapshot([]byte(raw), a.newID)
	if err != nil {
		a.log.Warn("repository: saved resume is not usable, using empty resume", "key", ResumeKey, "error", err)
		return domain.Empty()
	}
	return d
}

func (a *Adapter) LoadTemplate(ctx context.Context) domain.TemplateID {
	raw, err := a.store.Get(ctx, TemplateKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			a.log.Warn("repository: reading saved template failed", "key", TemplateKey, "error", err)
		}
		return domain.DefaultTemplate
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.DefaultTemplate
	}
	return domain.TemplateID(raw)
}

// Save replaces the stored snapshot with d.
func (a *Adapter) Save(ctx context.Context, d domain.ResumeData) {
	b, err := model.EncodeSnapshot(d)
	if err != nil {
		a.log.Warn("repository: encoding resume failed", "error", err)
		return
	}
	if err := a.store.Set(ctx, ResumeKey, string(b)); err != nil {
		a.log.Warn("repository: saving resume failed", "key", ResumeKey, "error", err)
	}
}

// SaveTemplate replaces the stored template id with id.
func (a *Adapter) SaveTemplate(ctx context.Context, id domain.TemplateID) {
	if err := a.store.Set(ctx, TemplateKey, string(id)); err != nil {
		a.log.Warn("repository: saving template failed", "key", TemplateKey, "error", err)
	}
}

func (a *Adapter) Close() error { return a.store.Close() }
