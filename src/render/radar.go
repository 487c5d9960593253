package render

import (
	"fmt"
	"image"
	"math"

	"github.com/zaidi-96/quantum-computing/src/infographic"
	"github.com/zaidi-96/quantum-computing/src/labelwrap"
)

const (
	radarRings     = 5
	radarMargin    = 110 // room around the web for stacked axis captions
	radarLegendPad = 30
)

// spokeAngle returns the angle of axis i of n, starting at the top and
// proceeding clockwise.
func spokeAngle(i, n int) float64 {
	return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
}

// Radar draws the radar-chart panel. Axis captions use the wrapped label
// lines stacked vertically around the web.
func Radar(c infographic.Chart, size int) (image.Image, error) {
	n := len(c.Labels)
	if n < 3 {
		return nil, fmt.Errorf("radar chart %q: need at least 3 axes, have %d", c.Title, n)
	}
	axisMax := c.AxisMax
	if axisMax <= 0 {
		for _, s := range c.Series {
			for _, v := range s.Values {
				if v > axisMax {
					axisMax = v
				}
			}
		}
		if axisMax <= 0 {
			axisMax = 1
		}
	}

	cv := newCanvas(size, size+radarLegendPad)
	cx, cy := size/2, size/2+10
	radius := size/2 - radarMargin

	cv.drawStringCentered(c.Title, cx, 24, colText)

	// Concentric grid rings and spokes.
	for ring := 1; ring <= radarRings; ring++ {
		r := radius * ring / radarRings
		px, py := 0, 0
		for i := 0; i <= n; i++ {
			a := spokeAngle(i%n, n)
			x := cx + int(float64(r)*math.Cos(a))
			y := cy + int(float64(r)*math.Sin(a))
			if i > 0 {
				cv.drawLine(px, py, x, y, colGrid)
			}
			px, py = x, y
		}
	}
	for i := 0; i < n; i++ {
		a := spokeAngle(i, n)
		x := cx + int(float64(radius)*math.Cos(a))
		y := cy + int(float64(radius)*math.Sin(a))
		cv.drawLine(cx, cy, x, y, colGrid)
	}

	// Series polygons with vertex dots.
	for si, s := range c.Series {
		col := seriesColor(si)
		px, py := 0, 0
		for i := 0; i <= n; i++ {
			v := s.Values[i%n]
			if v < 0 {
				v = 0
			}
			if v > axisMax {
				v = axisMax
			}
			r := float64(radius) * v / axisMax
			a := spokeAngle(i%n, n)
			x := cx + int(r*math.Cos(a))
			y := cy + int(r*math.Sin(a))
			if i > 0 {
				cv.drawThickLine(px, py, x, y, col)
			}
			cv.fillDot(x, y, 3, col)
			px, py = x, y
		}
	}

	// Axis captions: stacked wrapped lines, aligned away from the web.
	for i, l := range c.Labels {
		drawAxisCaption(cv, l, cx, cy, radius, i, n)
	}

	// Legend row under the web.
	lx := cx - legendWidth(c.Series)/2
	ly := size + radarLegendPad - 14
	for si, s := range c.Series {
		col := seriesColor(si)
		cv.fillRect(image.Rect(lx, ly-9, lx+12, ly), col)
		cv.drawString(s.Name, lx+18, ly, colText)
		lx += 18 + textWidth(s.Name) + 24
	}

	return cv.img, nil
}

// drawAxisCaption positions a (possibly multi-line) caption just outside
// the spoke tip, aligned left, right or centered depending on which side of
// the web the spoke points to.
func drawAxisCaption(cv *canvas, l labelwrap.Label, cx, cy, radius, i, n int) {
	a := spokeAngle(i, n)
	tx := cx + int(float64(radius+14)*math.Cos(a))
	ty := cy + int(float64(radius+14)*math.Sin(a))
	lines := l.Lines()
	sin, cos := math.Sin(a), math.Cos(a)
	// Stack the block away from the web: upward for spokes pointing up,
	// downward for spokes pointing down, vertically centered on the side.
	top := ty - (len(lines)-1)*lineAdvance/2 + 4
	switch {
	case sin < -0.25:
		top = ty - (len(lines)-1)*lineAdvance
	case sin > 0.25:
		top = ty + 12
	}
	for li, line := range lines {
		y := top + li*lineAdvance
		switch {
		case cos > 0.25:
			cv.drawString(line, tx, y, colText)
		case cos < -0.25:
			cv.drawStringRight(line, tx, y, colText)
		default:
			cv.drawStringCentered(line, tx, y, colText)
		}
	}
}

func legendWidth(series []infographic.Series) int {
	w := 0
	for _, s := range series {
		w += 18 + textWidth(s.Name) + 24
	}
	return w - 24
}
