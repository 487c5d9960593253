package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/zaidi-96/quantum-computing/src/applog"
	"github.com/zaidi-96/quantum-computing/src/browser"
	"github.com/zaidi-96/quantum-computing/src/capture"
	"github.com/zaidi-96/quantum-computing/src/infographic"
	"github.com/zaidi-96/quantum-computing/src/page"
	"github.com/zaidi-96/quantum-computing/src/render"
)

// exportInfographic runs the export workflow: hide the page chrome,
// rasterize the full document at the configured scale, restore the chrome
// and write the fixed-name PNG. Overlapping triggers are ignored while an
// export is in flight; the chrome is restored exactly once per run on both
// the success and the failure path.
func exportInfographic(st *uiState) error {
	if !st.exporting.CompareAndSwap(false, true) {
		applog.Debugf("export already in flight; trigger ignored")
		return nil
	}
	defer st.exporting.Store(false)

	img, err := capture.Run(st.chrome, func() (image.Image, error) {
		return render.Document(st.charts, st.scale)
	})
	if err != nil {
		return fmt.Errorf("rasterize document: %w", err)
	}
	outPath := filepath.Join(st.outDir, exportFilename)
	if err := writePNG(outPath, img); err != nil {
		return err
	}
	applog.Infof("exported %s", outPath)
	return nil
}

func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// runHeadless renders the composed infographic plus the individual panels
// as PNGs under outDir without creating a UI window.
func runHeadless(outDir string, scale int) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	charts := infographic.Charts()

	doc, err := render.Document(charts, scale)
	if err != nil {
		return err
	}
	if err := writePNG(filepath.Join(outDir, exportFilename), doc); err != nil {
		return err
	}

	toRender := []struct {
		name string
		fn   func() (image.Image, error)
	}{
		{"qubits_by_year.png", func() (image.Image, error) {
			return render.Line(charts[0], render.PanelWidth, render.LineHeight)
		}},
		{"platform_readiness.png", func() (image.Image, error) {
			return render.Radar(charts[1], render.RadarSize)
		}},
		{"algorithm_speedup.png", func() (image.Image, error) {
			return render.HBar(charts[2], render.PanelWidth, render.HBarHeight)
		}},
	}
	for _, item := range toRender {
		img, err := item.fn()
		if err != nil {
			return fmt.Errorf("render %s: %w", item.name, err)
		}
		if err := writePNG(filepath.Join(outDir, item.name), img); err != nil {
			return err
		}
	}
	applog.Infof("wrote %d PNGs under %s", len(toRender)+1, outDir)
	return nil
}

// runHTMLMode writes the infographic as a standalone HTML page.
func runHTMLMode(outPath string) error {
	html, err := page.Build(infographic.Charts())
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	applog.Infof("wrote %s", outPath)
	return nil
}

// runBrowserMode rasterizes the HTML page with headless Chrome, mirroring
// the page's own in-browser export.
func runBrowserMode(outDir string, scale int) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	html, err := page.Build(infographic.Charts())
	if err != nil {
		return err
	}
	shot, err := browser.Capture(context.Background(), html, float64(scale))
	if err != nil {
		return err
	}
	outPath := filepath.Join(outDir, exportFilename)
	if err := os.WriteFile(outPath, shot, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	applog.Infof("exported %s", outPath)
	return nil
}
