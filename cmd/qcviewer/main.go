package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"os"
	"sync/atomic"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/zaidi-96/quantum-computing/src/applog"
	"github.com/zaidi-96/quantum-computing/src/capture"
	"github.com/zaidi-96/quantum-computing/src/infographic"
	"github.com/zaidi-96/quantum-computing/src/render"
)

// exportFilename is fixed: every export overwrites the same file.
const exportFilename = "quantum_infographic.png"

type uiState struct {
	app    fyne.App
	window fyne.Window

	outDir string
	scale  int

	charts []infographic.Chart

	// widgets
	headerBox   fyne.CanvasObject
	exportBtn   *widget.Button
	lineCanvas  *canvas.Image
	radarCanvas *canvas.Image
	barsCanvas  *canvas.Image

	// hover tooltip on the bar chart
	barsOverlay *barHoverOverlay
	lastPopup   *widget.PopUp

	// chrome hidden during export
	chrome    []capture.Hideable
	exporting atomic.Bool
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

// blankImage is the fallback when a panel fails to render; keeps the layout
// stable instead of collapsing the canvas.
func blankImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{R: 250, G: 250, B: 252, A: 255}}, image.Point{}, draw.Src)
	return img
}

func renderOrBlank(name string, w, h int, fn func() (image.Image, error)) image.Image {
	img, err := fn()
	if err != nil {
		applog.Errorf("render %s: %v", name, err)
		return blankImage(w, h)
	}
	return img
}

func redrawCharts(st *uiState) {
	line := renderOrBlank("qubit growth", render.PanelWidth, render.LineHeight, func() (image.Image, error) {
		return render.Line(st.charts[0], render.PanelWidth, render.LineHeight)
	})
	radar := renderOrBlank("platform readiness", render.RadarSize, render.RadarSize, func() (image.Image, error) {
		return render.Radar(st.charts[1], render.RadarSize)
	})
	bars := renderOrBlank("algorithm speedup", render.PanelWidth, render.HBarHeight, func() (image.Image, error) {
		return render.HBar(st.charts[2], render.PanelWidth, render.HBarHeight)
	})
	st.lineCanvas.Image = line
	st.lineCanvas.Refresh()
	st.radarCanvas.Image = radar
	st.radarCanvas.Refresh()
	st.barsCanvas.Image = bars
	st.barsCanvas.Refresh()
}

func newPanelCanvas(w, h int) *canvas.Image {
	img := canvas.NewImageFromImage(blankImage(w, h))
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(float32(w)*0.9, float32(h)*0.9))
	return img
}

func savePrefs(st *uiState) {
	if st.app == nil {
		return
	}
	p := st.app.Preferences()
	p.SetString("outDir", st.outDir)
	p.SetInt("exportScale", st.scale)
}

func loadPrefs(st *uiState) {
	if st.app == nil {
		return
	}
	p := st.app.Preferences()
	st.outDir = p.StringWithFallback("outDir", st.outDir)
	st.scale = p.IntWithFallback("exportScale", st.scale)
	if st.scale < 1 || st.scale > 4 {
		st.scale = 2
	}
}

func buildUI(st *uiState) fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Quantum Computing: State of Play",
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabelWithStyle("Qubit growth, platform readiness and algorithmic speedups at a glance",
		fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	st.headerBox = container.NewVBox(title, subtitle)

	st.lineCanvas = newPanelCanvas(render.PanelWidth, render.LineHeight)
	st.radarCanvas = newPanelCanvas(render.RadarSize, render.RadarSize)
	st.barsCanvas = newPanelCanvas(render.PanelWidth, render.HBarHeight)

	st.barsOverlay = newBarHoverOverlay(st)
	barsArea := container.NewStack(st.barsCanvas, st.barsOverlay)

	// Button created without a callback first; wired after the canvases and
	// chrome list exist so the export sees the final widget set.
	st.exportBtn = widget.NewButton("Export PNG", nil)
	st.chrome = []capture.Hideable{st.headerBox, st.exportBtn}
	st.exportBtn.OnTapped = func() {
		if err := exportInfographic(st); err != nil {
			// Failures degrade to a no-op: log, keep the page usable.
			applog.Errorf("export failed: %v", err)
		}
	}

	content := container.NewVBox(
		st.headerBox,
		st.lineCanvas,
		container.NewCenter(st.radarCanvas),
		barsArea,
		container.NewCenter(st.exportBtn),
	)
	return container.NewVScroll(content)
}

func main() {
	var (
		outDir     = flag.String("out", ".", "directory the exported PNG is written to")
		scale      = flag.Int("scale", 2, "export raster scale factor (1-4)")
		logLevel   = flag.String("loglevel", "info", "log level: debug, info, warn, error")
		headless   = flag.Bool("headless", false, "write the infographic PNGs without opening a window, then exit")
		htmlOut    = flag.String("html", "", "write the infographic as a standalone HTML page to this path, then exit")
		browserCap = flag.Bool("browser", false, "rasterize the HTML page with headless Chrome, then exit")
	)
	flag.Parse()
	applog.SetLevel(*logLevel)

	if *htmlOut != "" {
		if err := runHTMLMode(*htmlOut); err != nil {
			applog.Errorf("html mode: %v", err)
			os.Exit(1)
		}
		return
	}
	if *browserCap {
		if err := runBrowserMode(*outDir, *scale); err != nil {
			applog.Errorf("browser mode: %v", err)
			os.Exit(1)
		}
		return
	}
	if *headless {
		if err := runHeadless(*outDir, *scale); err != nil {
			applog.Errorf("headless mode: %v", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.quantum.infographic")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("Quantum Computing Infographic")
	w.Resize(fyne.NewSize(1100, 800))

	st := &uiState{
		app:    a,
		window: w,
		outDir: *outDir,
		scale:  *scale,
		charts: infographic.Charts(),
	}
	loadPrefs(st)
	// Flags override persisted prefs when given explicitly.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			st.outDir = *outDir
		case "scale":
			st.scale = *scale
		}
	})
	savePrefs(st)

	w.SetContent(buildUI(st))
	redrawCharts(st)
	w.ShowAndRun()
}
