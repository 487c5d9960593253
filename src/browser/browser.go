// Package browser rasterizes the HTML infographic with a headless Chrome
// instance. It reproduces the page's own export flow from the outside: hide
// the chrome elements, screenshot the full document at the requested scale,
// then restore the chrome before tearing the browser down.
package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	"github.com/zaidi-96/quantum-computing/src/applog"
)

// DefaultTimeout bounds one full navigate-and-capture run.
const DefaultTimeout = 60 * time.Second

const hideChromeJS = `
['header', 'export-btn'].forEach(function (id) {
	var el = document.getElementById(id);
	if (el) { el.style.visibility = 'hidden'; }
});
window.scrollTo(0, 0);`

const restoreChromeJS = `
['header', 'export-btn'].forEach(function (id) {
	var el = document.getElementById(id);
	if (el) { el.style.visibility = ''; }
});`

// Capture renders the given HTML document and returns a PNG of the full
// document height (not just the viewport) at the given device scale.
func Capture(parent context.Context, html string, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}

	// chromedp needs a URL; external chart scripts resolve fine from a
	// file:// document.
	tmpDir, err := os.MkdirTemp("", "infographic-")
	if err != nil {
		return nil, fmt.Errorf("temp dir for page: %w", err)
	}
	defer os.RemoveAll(tmpDir)
	pagePath := filepath.Join(tmpDir, "infographic.html")
	if err := os.WriteFile(pagePath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("write page: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.DisableGPU,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	defer cancelAlloc()

	ctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()
	ctx, cancelTimeout := context.WithTimeout(ctx, DefaultTimeout)
	defer cancelTimeout()

	var shot []byte
	var width, height int64
	tasks := chromedp.Tasks{
		chromedp.Navigate("file://" + pagePath),
		// The charts are ready once their canvases exist.
		chromedp.WaitVisible(`canvas`, chromedp.ByQuery),
		chromedp.Evaluate(hideChromeJS, nil),
		chromedp.Evaluate(`document.body.scrollWidth`, &width),
		chromedp.Evaluate(`document.body.scrollHeight`, &height),
		chromedp.ActionFunc(func(ctx context.Context) error {
			applog.Debugf("capturing %dx%d document at scale %.1f", width, height, scale)
			return emulation.SetDeviceMetricsOverride(width, height, scale, false).Do(ctx)
		}),
		chromedp.FullScreenshot(&shot, 100),
		chromedp.Evaluate(restoreChromeJS, nil),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("headless capture: %w", err)
	}
	if len(shot) == 0 {
		return nil, fmt.Errorf("headless capture: empty screenshot")
	}
	return shot, nil
}
