package main

import (
	"testing"

	"github.com/zaidi-96/quantum-computing/src/infographic"
	"github.com/zaidi-96/quantum-computing/src/render"
)

func TestTooltipText_ReconstructsWrappedCaption(t *testing.T) {
	c := infographic.AlgorithmSpeedup()
	cases := map[int]string{
		0: "Shor Factoring: 100M×",
		1: "Grover Search: 10k×",
		2: "Quantum Simulation: 1M×",
		3: "Optimization (QAOA): 100×",
	}
	for row, want := range cases {
		if got := tooltipText(c, row); got != want {
			t.Fatalf("tooltipText(%d) = %q, want %q", row, got, want)
		}
	}
}

func TestTooltipText_OutOfRange(t *testing.T) {
	c := infographic.AlgorithmSpeedup()
	if got := tooltipText(c, -1); got != "" {
		t.Fatalf("negative row should yield empty text, got %q", got)
	}
	if got := tooltipText(c, len(c.Labels)); got != "" {
		t.Fatalf("past-end row should yield empty text, got %q", got)
	}
}

func TestComputeContainRect_CentersAndScales(t *testing.T) {
	// View twice as wide as needed: image is height-limited and centered.
	drawX, drawY, drawW, drawH, scale := computeContainRect(100, 50, 400, 100)
	if scale != 2 {
		t.Fatalf("scale = %v, want 2", scale)
	}
	if drawW != 200 || drawH != 100 {
		t.Fatalf("draw size %vx%v, want 200x100", drawW, drawH)
	}
	if drawX != 100 || drawY != 0 {
		t.Fatalf("draw offset %v,%v, want 100,0", drawX, drawY)
	}
	if _, _, _, _, s := computeContainRect(0, 50, 400, 100); s != 0 {
		t.Fatalf("degenerate image must yield zero scale")
	}
}

func TestBarRowAtViewPos_RoundTripsRowCenters(t *testing.T) {
	n := len(infographic.AlgorithmSpeedup().Labels)
	viewW := float32(render.PanelWidth)
	viewH := float32(render.HBarHeight)
	plotY, plotH := render.HBarPlot(render.HBarHeight)
	slot := plotH / n
	for i := 0; i < n; i++ {
		y := float32(plotY + slot*i + slot/2)
		if got := barRowAtViewPos(viewW/2, y, viewW, viewH, n); got != i {
			t.Fatalf("row %d center maps to %d", i, got)
		}
	}
	if got := barRowAtViewPos(viewW/2, float32(plotY-5), viewW, viewH, n); got != -1 {
		t.Fatalf("above plot should map to -1, got %d", got)
	}
	if got := barRowAtViewPos(-5, float32(plotY+slot/2), viewW, viewH, n); got != -1 {
		t.Fatalf("left of plot should map to -1, got %d", got)
	}
}
