package export

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Letter page dimensions in inches
const (
	pageWidthInches  = 8.5
	pageHeightInches = 11.0
	pageMarginInches = 0.0
)

// DefaultPrintTimeout bounds a single headless print run
const DefaultPrintTimeout = 30 * time.Second

// ToPDF prints rendered resume HTML to a PDF using a headless browser.
// zoomPercent maps to the print scale (100 = 1.0). Requires Chrome/Chromium
// on the system.
func ToPDF(ctx context.Context, htmlContent string, zoomPercent int, timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		timeout = DefaultPrintTimeout
	}

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

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	scale := float64(zoomPercent) / 100.0
	if scale <= 0 {
		scale = 1.0
	}

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(htmlContent)),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPaperWidth(pageWidthInches).
				WithPaperHeight(pageHeightInches).
				WithMarginTop(pageMarginInches).
				WithMarginBottom(pageMarginInches).
				WithMarginLeft(pageMarginInches).
				WithMarginRight(pageMarginInches).
				WithScale(scale).
				WithPrintBackground(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	return pdf, nil
}
