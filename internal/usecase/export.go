package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yosssi/gohtml"

	"resume-builder/internal/render"
)

// PDFRenderer prints an HTML document to PDF.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ExportResult reports what an export produced. PDFErr is set when every
// print attempt failed; the HTML artifact is still written in that case.
// ExportResult describes one export. Both artifacts are written to a fresh
// directory under the export dir and named after FileName.
type ExportResult struct {
	FileName string
	HTMLPath string
	PDFPath  string
	PDF      []byte
	PDFErr   error
}

type Exporter struct {
	renderer PDFRenderer
	dir      string
	attempts int
	backoff  time.Duration
	log      *slog.Logger
	now      func() time.Time
}

type ExporterOption func(*Exporter)

// WithBackoff sets the delay before the second attempt; it doubles after
// every further failure.
func WithBackoff(d time.Duration) ExporterOption {
	return func(e *Exporter) { e.backoff = d }
}

func WithClock(now func() time.Time) ExporterOption {
	return func(e *Exporter) { e.now = now }
}

func NewExporter(r PDFRenderer, dir string, attempts int, log *slog.Logger, opts ...ExporterOption) *Exporter {
	if attempts < 1 {
		attempts = 1
	}
	if log == nil {
		log = slog.Default()
	}
	e := &Exporter{renderer: r, dir: dir, attempts: attempts, backoff: time.Second, log: log, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExportFileName derives the download name from the person's full name.
func ExportFileName(fullName string) string {
	name := strings.TrimSpace(fullName)
	name = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':' || r < 0x20:
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = "Resume"
	}
	return name + "_Resume.pdf"
}

// Export writes doc as a formatted HTML artifact, then prints it to PDF
// with retries. Only failures to write artifacts or a cancelled context are
// returned as errors.
func (e *Exporter) Export(ctx context.Context, doc render.Document, fullName string) (ExportResult, error) {
	res := ExportResult{FileName: ExportFileName(fullName)}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return res, fmt.Errorf("creating export dir: %w", err)
	}
	// one directory per export, so repeated exports never overwrite each other
	stamp := e.now().Format("20060102T150405.000")
	runDir, err := os.MkdirTemp(e.dir, "resume_"+stamp+"_")
	if err != nil {
		return res, fmt.Errorf("creating export run dir: %w", err)
	}
	res.HTMLPath = filepath.Join(runDir, strings.TrimSuffix(res.FileName, ".pdf")+".html")

	// save HTML before printing so it survives a failed print
	if err := os.WriteFile(res.HTMLPath, gohtml.FormatBytes([]byte(doc.HTML)), 0o644); err != nil {
		return res, fmt.Errorf("writing html artifact: %w", err)
	}

	var pdf []byte
	var renderErr error
	for i := 0; i < e.attempts; i++ {
		pdf, renderErr = e.renderer.RenderHTMLToPDF(ctx, doc.HTML)
		if renderErr == nil {
			if bytes.HasPrefix(pdf, []byte("%PDF")) {
				break
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		e.log.Warn("export: render attempt failed", "attempt", i+1, "error", renderErr)
		if i < e.attempts-1 {
			select {
			case <-time.After(e.backoff << i):
			case <-ctx.Done():
				return res, ctx.Err()
			}
		}
	}
	if renderErr != nil {
		e.log.Warn("export: rendering failed", "attempts", e.attempts, "error", renderErr, "html", res.HTMLPath)
		res.PDFErr = renderErr
		return res, nil
	}

	res.PDFPath = filepath.Join(runDir, res.FileName)
	if err := os.WriteFile(res.PDFPath, pdf, 0o644); err != nil {
		return res, fmt.Errorf("writing pdf: %w", err)
	}
	res.PDF = pdf
	e.log.Info("export: done", "template", doc.Template, "pdf", res.PDFPath, "bytes", len(pdf))
	return res, nil
}
