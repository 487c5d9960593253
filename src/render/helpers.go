// Package render rasterizes the infographic panels. The line chart goes
// through go-chart; radar and horizontal bars are drawn directly on RGBA
// since the library has no chart type for them.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Logical panel sizes at 1x. Export upscales the composed document.
const (
	PanelWidth  = 1000
	LineHeight  = 380
	RadarSize   = 520
	HBarHeight  = 360
)

var (
	colBackground = color.RGBA{R: 250, G: 250, B: 252, A: 255}
	colGrid       = color.RGBA{R: 208, G: 210, B: 216, A: 255}
	colText       = color.RGBA{R: 42, G: 46, B: 56, A: 255}
	colMuted      = color.RGBA{R: 120, G: 124, B: 134, A: 255}
	colSeriesA    = color.RGBA{R: 54, G: 116, B: 217, A: 255}
	colSeriesB    = color.RGBA{R: 106, G: 168, B: 79, A: 255}
	colSeriesAFll = color.RGBA{R: 54, G: 116, B: 217, A: 48}
	colSeriesBFll = color.RGBA{R: 106, G: 168, B: 79, A: 48}
)

// seriesColor cycles the two-color palette used across all panels.
func seriesColor(i int) color.RGBA {
	if i%2 == 0 {
		return colSeriesA
	}
	return colSeriesB
}

func seriesFill(i int) color.RGBA {
	if i%2 == 0 {
		return colSeriesAFll
	}
	return colSeriesBFll
}

// maxExponent returns the smallest decade exponent covering every value,
// with a floor of 1 so a degenerate dataset still spans one decade.
func maxExponent(vals []float64) int {
	maxV := 0.0
	for _, v := range vals {
		if v > maxV {
			maxV = v
		}
	}
	if maxV <= 1 {
		return 1
	}
	e := int(math.Ceil(math.Log10(maxV)))
	if e < 1 {
		e = 1
	}
	return e
}

// pow10Label formats a decade tick compactly: 1, 10, 100, 1k, ... 1M, ...
func pow10Label(exp int) string {
	v := math.Pow(10, float64(exp))
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%gG", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%gM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%gk", v/1e3)
	default:
		return fmt.Sprintf("%g", v)
	}
}

// FormatValue is the compact caption for a raw value (bar ends, hover
// tooltips).
func FormatValue(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 1e9:
		return fmt.Sprintf("%gG", v/1e9)
	case av >= 1e6:
		return fmt.Sprintf("%gM", v/1e6)
	case av >= 1e3:
		return fmt.Sprintf("%gk", v/1e3)
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%g", v)
	}
}

// computeBarGeometry derives bar height and gap for n horizontal bars in a
// plot of the given height. Bars shrink as n grows but never below 12px.
func computeBarGeometry(n, plotH int) (barH, gap int) {
	if n < 1 {
		n = 1
	}
	slot := plotH / n
	gap = slot / 4
	if gap < 6 {
		gap = 6
	}
	barH = slot - gap
	if barH < 12 {
		barH = 12
	}
	if barH > 64 {
		barH = 64
	}
	return barH, gap
}

// Upscale returns src scaled by an integer factor using nearest-neighbor.
// Factor 1 (or less) returns src unchanged.
func Upscale(src image.Image, factor int) image.Image {
	if factor <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	for y := 0; y < b.Dy()*factor; y++ {
		sy := b.Min.Y + y/factor
		for x := 0; x < b.Dx()*factor; x++ {
			dst.Set(x, y, src.At(b.Min.X+x/factor, sy))
		}
	}
	return dst
}
