package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 in inches.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
)

// ChromedpRenderer prints HTML to PDF with a headless Chrome.
type ChromedpRenderer struct {
	execPath string
	timeout  time.Duration
}

// NewChromedpRenderer uses execPath when set, otherwise $CHROME_PATH, and
// otherwise whatever Chrome chromedp finds.
func NewChromedpRenderer(execPath string, timeout time.Duration) *ChromedpRenderer {
	if execPath == "" {
		execPath = os.Getenv("CHROME_PATH")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromedpRenderer{execPath: execPath, timeout: timeout}
}

func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, r.timeout)
	defer cancelRun()

	// documents are self-contained, so a lone file in a temp dir is enough
	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
