package render

import (
	"image"
	"testing"

	"github.com/zaidi-96/quantum-computing/src/infographic"
)

func TestLine_RendersPanel(t *testing.T) {
	img, err := Line(infographic.QubitGrowth(), PanelWidth, LineHeight)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != PanelWidth || b.Dy() != LineHeight {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestLine_EmptyChartFails(t *testing.T) {
	if _, err := Line(infographic.Chart{Title: "empty"}, 400, 200); err == nil {
		t.Fatalf("expected error for empty chart")
	}
}

func TestRadar_RendersPanel(t *testing.T) {
	img, err := Radar(infographic.PlatformReadiness(), RadarSize)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != RadarSize {
		t.Fatalf("unexpected width %d", b.Dx())
	}
	// Series polygons must leave non-background pixels near the center.
	if !hasForeground(img, image.Rect(RadarSize/2-40, RadarSize/2-40, RadarSize/2+40, RadarSize/2+40)) {
		t.Fatalf("no series pixels near web center")
	}
}

func TestRadar_RejectsTooFewAxes(t *testing.T) {
	c := infographic.Chart{Title: "tiny", RawLabels: []string{"a", "b"}}
	c.Labels = nil
	if _, err := Radar(c, RadarSize); err == nil {
		t.Fatalf("expected error for <3 axes")
	}
}

func TestHBar_RendersPanel(t *testing.T) {
	c := infographic.AlgorithmSpeedup()
	img, err := HBar(c, PanelWidth, HBarHeight)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	plotY, plotH := HBarPlot(HBarHeight)
	n := len(c.Labels)
	barH, _ := computeBarGeometry(n, plotH)
	// Row 0 (Shor, 1e8 = top decade) spans nearly the whole plot width.
	top := RowTop(0, n, plotY, plotH)
	farX := hbarGutter + (PanelWidth-hbarGutter-hbarRightPad)*9/10
	if !hasForeground(img, image.Rect(farX, top, farX+2, top+barH)) {
		t.Fatalf("full-decade bar missing pixels near plot end")
	}
	// Row 3 (QAOA, 1e2) must not reach half the plot width.
	top3 := RowTop(3, n, plotY, plotH)
	midX := hbarGutter + (PanelWidth-hbarGutter-hbarRightPad)/2
	if hasBarColor(img, image.Rect(midX+20, top3, midX+40, top3+barH)) {
		t.Fatalf("short bar extends too far")
	}
}

func TestRowIndexAtY_RoundTripsRowTops(t *testing.T) {
	plotY, plotH := HBarPlot(HBarHeight)
	n := 4
	barH, _ := computeBarGeometry(n, plotH)
	for i := 0; i < n; i++ {
		top := RowTop(i, n, plotY, plotH)
		if got := RowIndexAtY(top+barH/2, n, plotY, plotH); got != i {
			t.Fatalf("row %d center maps to %d", i, got)
		}
	}
	if RowIndexAtY(plotY-1, n, plotY, plotH) != -1 {
		t.Fatalf("above plot should map to -1")
	}
	if RowIndexAtY(plotY+plotH, n, plotY, plotH) != -1 {
		t.Fatalf("below plot should map to -1")
	}
}

func TestDocument_ComposesAndScales(t *testing.T) {
	doc, err := Document(infographic.Charts(), 2)
	if err != nil {
		t.Fatalf("document failed: %v", err)
	}
	b := doc.Bounds()
	if b.Dx() != PanelWidth*2 {
		t.Fatalf("document width %d, want %d", b.Dx(), PanelWidth*2)
	}
	wantMinH := (LineHeight + RadarSize + HBarHeight) * 2
	if b.Dy() < wantMinH {
		t.Fatalf("document height %d shorter than panels %d", b.Dy(), wantMinH)
	}
	if _, err := Document(infographic.Charts()[:2], 1); err == nil {
		t.Fatalf("expected error for wrong panel count")
	}
}

// hasForeground reports whether any pixel in r differs from the background.
func hasForeground(img image.Image, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			br, bg, bb, _ := colBackground.RGBA()
			if pr != br || pg != bg || pb != bb {
				return true
			}
		}
	}
	return false
}

// hasBarColor reports whether any pixel in r matches the first series color.
func hasBarColor(img image.Image, r image.Rectangle) bool {
	want := seriesColor(0)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			if uint8(pr>>8) == want.R && uint8(pg>>8) == want.G && uint8(pb>>8) == want.B {
				return true
			}
		}
	}
	return false
}
