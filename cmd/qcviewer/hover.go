package main

import (
	"fmt"
	"image/color"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/zaidi-96/quantum-computing/src/infographic"
	"github.com/zaidi-96/quantum-computing/src/render"
)

// barHoverOverlay sits on top of the bar chart canvas and shows a tooltip
// with the full (unwrapped) row caption and its value.
type barHoverOverlay struct {
	widget.BaseWidget
	state *uiState
}

func newBarHoverOverlay(state *uiState) *barHoverOverlay {
	o := &barHoverOverlay{state: state}
	o.ExtendBaseWidget(o)
	return o
}

func (o *barHoverOverlay) CreateRenderer() fyne.WidgetRenderer {
	// transparent background so the overlay covers the full hit area
	bg := canvas.NewRectangle(color.RGBA{})
	return &barHoverRenderer{bg: bg}
}

type barHoverRenderer struct {
	bg *canvas.Rectangle
}

func (r *barHoverRenderer) Destroy()                     {}
func (r *barHoverRenderer) Layout(size fyne.Size)        { r.bg.Resize(size) }
func (r *barHoverRenderer) MinSize() fyne.Size           { return fyne.NewSize(10, 10) }
func (r *barHoverRenderer) Objects() []fyne.CanvasObject { return []fyne.CanvasObject{r.bg} }
func (r *barHoverRenderer) Refresh()                     { r.bg.Refresh() }

func (o *barHoverOverlay) MouseIn(*desktop.MouseEvent) {}

func (o *barHoverOverlay) MouseOut() { o.hideTooltip() }

func (o *barHoverOverlay) MouseMoved(ev *desktop.MouseEvent) {
	st := o.state
	if st == nil || len(st.charts) < 3 {
		return
	}
	c := st.charts[2]
	sz := o.Size()
	row := barRowAtViewPos(ev.Position.X, ev.Position.Y, sz.Width, sz.Height, len(c.Labels))
	if row < 0 {
		o.hideTooltip()
		return
	}
	o.showTooltip(tooltipText(c, row), ev.AbsolutePosition)
}

func (o *barHoverOverlay) showTooltip(text string, pos fyne.Position) {
	st := o.state
	if st == nil || st.window == nil || text == "" {
		return
	}
	if st.lastPopup != nil {
		st.lastPopup.Hide()
	}
	lbl := widget.NewLabel(text)
	st.lastPopup = widget.NewPopUp(lbl, st.window.Canvas())
	st.lastPopup.ShowAtPosition(fyne.NewPos(pos.X+12, pos.Y+12))
}

func (o *barHoverOverlay) hideTooltip() {
	if o.state != nil && o.state.lastPopup != nil {
		o.state.lastPopup.Hide()
		o.state.lastPopup = nil
	}
}

// computeContainRect maps the logical image onto a contain-fit view area:
// the offset of the drawn image inside the view plus the draw size and the
// uniform scale applied.
func computeContainRect(imgW, imgH, viewW, viewH float32) (drawX, drawY, drawW, drawH, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, 0, 0, 0
	}
	scale = viewW / imgW
	if s := viewH / imgH; s < scale {
		scale = s
	}
	drawW = imgW * scale
	drawH = imgH * scale
	drawX = (viewW - drawW) / 2
	drawY = (viewH - drawH) / 2
	return drawX, drawY, drawW, drawH, scale
}

// barRowAtViewPos converts a mouse position in the overlay to a bar row
// index, or -1 when the position is outside the plot rows.
func barRowAtViewPos(x, y, viewW, viewH float32, n int) int {
	drawX, drawY, _, _, scale := computeContainRect(
		float32(render.PanelWidth), float32(render.HBarHeight), viewW, viewH)
	if scale <= 0 {
		return -1
	}
	imgX := (x - drawX) / scale
	imgY := (y - drawY) / scale
	if imgX < 0 || imgX >= float32(render.PanelWidth) {
		return -1
	}
	plotY, plotH := render.HBarPlot(render.HBarHeight)
	return render.RowIndexAtY(int(imgY), n, plotY, plotH)
}

// tooltipText reconstructs the full row caption from its wrapped label and
// appends the value.
func tooltipText(c infographic.Chart, row int) string {
	if row < 0 || row >= len(c.Labels) || len(c.Series) == 0 || row >= len(c.Series[0].Values) {
		return ""
	}
	v := c.Series[0].Values[row]
	return fmt.Sprintf("%s: %s%s", c.Labels[row].Display(), render.FormatValue(v), c.Unit)
}
