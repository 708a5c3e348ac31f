package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"resume-builder/internal/domain"
	"resume-builder/internal/editor"
	"resume-builder/internal/render"
)

// StateStore is the persistence the orchestrator needs. Writes are fire and
// forget; the store logs its own failures.
type StateStore interface {
	Load(ctx context.Context) (domain.ResumeData, domain.TemplateID)
	Save(ctx context.Context, d domain.ResumeData)
	SaveTemplate(ctx context.Context, id domain.TemplateID)
}

// Result describes the outcome of a dispatched action.
type Result struct {
	// ID is the entry the action created or touched, if any.
	ID      string
	Changed bool
	Version uint64
}

// Orchestrator owns the live snapshot and the selected template. Actions are
// applied one at a time; every change is persisted before Dispatch returns.
type Orchestrator struct {
	mu       sync.Mutex
	ed       *editor.Editor
	store    StateStore
	log      *slog.Logger
	data     domain.ResumeData
	template domain.TemplateID
	version  uint64

	preview struct {
		valid    bool
		version  uint64
		template domain.TemplateID
		doc      render.Document
	}
}

// NewOrchestrator loads the saved state and returns an orchestrator over it.
func NewOrchestrator(ctx context.Context, ed *editor.Editor, store StateStore, log *slog.Logger) *Orchestrator {
	if ed == nil {
		ed = editor.New()
	}
	if log == nil {
		log = slog.Default()
	}
	data, tpl := store.Load(ctx)
	log.Info("orchestrator: state loaded",
		"template", tpl,
		"experiences", len(data.Experiences),
		"education", len(data.Education),
		"projects", len(data.Projects),
		"skills", len(data.Skills),
	)
	return &Orchestrator{ed: ed, store: store, log: log, data: data.Clone(), template: tpl}
}

// Dispatch applies a to the current snapshot. A failing action leaves the
// snapshot untouched.
func (o *Orchestrator) Dispatch(ctx context.Context, a Action) (Result, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	next, id, err := a.apply(o.ed, o.data.Clone())
	if err != nil {
		return Result{Version: o.version}, err
	}
	if reflect.DeepEqual(next, o.data) {
		return Result{ID: id, Version: o.version}, nil
	}

	o.data = next
	o.version++
	o.store.Save(ctx, o.data)
	o.log.Debug("orchestrator: action applied", "action", fmt.Sprintf("%T", a), "version", o.version)
	return Result{ID: id, Changed: true, Version: o.version}, nil
}

// SelectTemplate records id as the selected template. Unknown ids are kept
// and render with the default template.
func (o *Orchestrator) SelectTemplate(ctx context.Context, id domain.TemplateID) domain.TemplateID {
	id = domain.TemplateID(strings.TrimSpace(string(id)))

	o.mu.Lock()
	defer o.mu.Unlock()
	if !id.Known() {
		o.log.Info("orchestrator: unknown template selected, rendering with default", "template", id, "default", domain.DefaultTemplate)
	}
	o.template = id
	o.store.SaveTemplate(ctx, id)
	return render.Lookup(id).ID()
}

// Template returns the selected template id as stored.
func (o *Orchestrator) Template() domain.TemplateID {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.template
}

// Snapshot returns a copy of the current snapshot and its version.
func (o *Orchestrator) Snapshot() (domain.ResumeData, uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.data.Clone(), o.version
}

// Preview renders the current snapshot with the selected template. The
// document is cached until the snapshot or the template changes.
func (o *Orchestrator) Preview() (render.Document, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	p := &o.preview
	if p.valid && p.version == o.version && p.template == o.template {
		return p.doc, nil
	}
	doc, err := render.Render(o.template, o.data)
	if err != nil {
		return render.Document{}, err
	}
	p.valid, p.version, p.template, p.doc = true, o.version, o.template, doc
	return doc, nil
}

// IngestProfilePicture reads and encodes an image without blocking the
// caller. The picture is applied through Dispatch once encoded; the returned
// channel yields exactly one value and is then closed.
func (o *Orchestrator) IngestProfilePicture(ctx context.Context, r io.Reader) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		uri, err := editor.ReadImage(r)
		if err != nil {
			o.log.Warn("orchestrator: profile picture rejected", "error", err)
			done <- err
			return
		}
		if err := ctx.Err(); err != nil {
			done <- err
			return
		}
		_, err = o.Dispatch(ctx, SetProfilePicture{Picture: uri})
		done <- err
	}()
	return done
}
