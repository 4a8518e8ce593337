package export

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/adaeze/cv-studio/internal/types"
)

// Generator converts page-flow trees to PDF bytes through a headless
// browser. Requires Chrome/Chromium to be installed on the system. The zero
// value is ready to use; a Generator is safe for concurrent use because every
// call runs its own browser context.
type Generator struct {
	// Timeout bounds one conversion. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout is the per-conversion browser deadline.
const DefaultTimeout = 45 * time.Second

// PDF builds the export document for the CV and returns the finished PDF. A
// failed conversion returns no bytes; the caller can retry with the same
// input.
func (g *Generator) PDF(ctx context.Context, cv types.CV, id types.TemplateID) ([]byte, error) {
	doc, err := Build(cv, id)
	if err != nil {
		return nil, &GenerateError{Message: "building document tree", Cause: err}
	}
	pdf, err := g.print(ctx, SerializeHTML(doc))
	if err != nil {
		return nil, &GenerateError{Message: "converting to PDF", Cause: err}
	}
	return pdf, nil
}

func (g *Generator) print(ctx context.Context, html string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// Page geometry comes from the document's @page rule.
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}
