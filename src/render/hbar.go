package render

import (
	"fmt"
	"image"
	"math"

	"github.com/zaidi-96/quantum-computing/src/infographic"
)

const (
	hbarGutter   = 180 // left gutter for stacked row captions
	hbarRightPad = 80  // room for the value caption at the bar end
	hbarTopPad   = 44
	hbarBotPad   = 36
)

// HBar draws the horizontal-bar panel. The value axis is logarithmic with
// one gridline per decade; row captions use the wrapped label lines.
func HBar(c infographic.Chart, w, h int) (image.Image, error) {
	n := len(c.Labels)
	if n == 0 {
		return nil, fmt.Errorf("bar chart %q: no rows", c.Title)
	}
	if len(c.Series) == 0 {
		return nil, fmt.Errorf("bar chart %q: no series", c.Title)
	}
	vals := c.Series[0].Values

	cv := newCanvas(w, h)
	cv.drawStringCentered(c.Title, w/2, 24, colText)

	plotX := hbarGutter
	plotW := w - hbarGutter - hbarRightPad
	plotY := hbarTopPad
	plotH := h - hbarTopPad - hbarBotPad
	maxExp := maxExponent(vals)

	// Decade gridlines with compact labels along the bottom.
	for k := 0; k <= maxExp; k++ {
		x := plotX + plotW*k/maxExp
		cv.drawLine(x, plotY, x, plotY+plotH, colGrid)
		cv.drawStringCentered(pow10Label(k), x, plotY+plotH+16, colMuted)
	}
	cv.drawLine(plotX, plotY+plotH, plotX+plotW, plotY+plotH, colMuted)

	barH, _ := computeBarGeometry(n, plotH)
	for i, l := range c.Labels {
		top := RowTop(i, n, plotY, plotH)
		v := vals[i]
		if v < 1 {
			v = 1
		}
		barW := int(float64(plotW) * math.Log10(v) / float64(maxExp))
		if barW < 2 {
			barW = 2
		}
		cv.fillRect(image.Rect(plotX, top, plotX+barW, top+barH), seriesColor(0))
		cv.drawString(FormatValue(vals[i])+c.Unit, plotX+barW+8, top+barH/2+4, colText)

		// Row caption: stacked wrapped lines, right-aligned in the gutter.
		lines := l.Lines()
		ly := top + barH/2 - (len(lines)-1)*lineAdvance/2 + 4
		for _, line := range lines {
			cv.drawStringRight(line, plotX-10, ly, colText)
			ly += lineAdvance
		}
	}

	return cv.img, nil
}

// RowTop returns the top Y of bar row i. Shared with the hover overlay so
// hit-testing and drawing agree on geometry.
func RowTop(i, n, plotY, plotH int) int {
	if n < 1 {
		n = 1
	}
	slot := plotH / n
	barH, _ := computeBarGeometry(n, plotH)
	return plotY + slot*i + (slot-barH)/2
}

// RowIndexAtY maps a Y coordinate inside the plot to a bar row, or -1 when
// the coordinate is outside every row slot.
func RowIndexAtY(y, n, plotY, plotH int) int {
	if n < 1 || y < plotY || y >= plotY+plotH {
		return -1
	}
	slot := plotH / n
	if slot <= 0 {
		return -1
	}
	i := (y - plotY) / slot
	if i >= n {
		return -1
	}
	return i
}

// HBarPlot reports the vertical plot extent of an HBar panel of the given
// height, for overlay hit-testing.
func HBarPlot(h int) (plotY, plotH int) {
	return hbarTopPad, h - hbarTopPad - hbarBotPad
}
