package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// canvas wraps an RGBA image with the drawing primitives the custom panels
// need. go-chart has no radar or horizontal-bar type, so these panels are
// rasterized directly.
type canvas struct {
	img *image.RGBA
}

func newCanvas(w, h int) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{colBackground}, image.Point{}, draw.Src)
	return &canvas{img: img}
}

func (c *canvas) setPixel(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// drawLine uses Bresenham's algorithm.
func (c *canvas) drawLine(x1, y1, x2, y2 int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		c.setPixel(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawThickLine stamps the line at small offsets for a 2px weight.
func (c *canvas) drawThickLine(x1, y1, x2, y2 int, col color.RGBA) {
	c.drawLine(x1, y1, x2, y2, col)
	c.drawLine(x1+1, y1, x2+1, y2, col)
	c.drawLine(x1, y1+1, x2, y2+1, col)
}

func (c *canvas) fillRect(rect image.Rectangle, col color.RGBA) {
	draw.Draw(c.img, rect, &image.Uniform{col}, image.Point{}, draw.Over)
}

func (c *canvas) fillDot(x, y, r int, col color.RGBA) {
	for py := y - r; py <= y+r; py++ {
		for px := x - r; px <= x+r; px++ {
			dx, dy := px-x, py-y
			if dx*dx+dy*dy <= r*r {
				c.setPixel(px, py, col)
			}
		}
	}
}

// textFace is the fixed 7x13 face used for all panel captions.
var textFace = basicfont.Face7x13

func textWidth(s string) int {
	return font.MeasureString(textFace, s).Ceil()
}

func (c *canvas) drawString(s string, x, y int, col color.RGBA) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{col},
		Face: textFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawStringCentered centers s horizontally around x; y is the baseline.
func (c *canvas) drawStringCentered(s string, x, y int, col color.RGBA) {
	c.drawString(s, x-textWidth(s)/2, y, col)
}

// drawStringRight right-aligns s so it ends at x; y is the baseline.
func (c *canvas) drawStringRight(s string, x, y int, col color.RGBA) {
	c.drawString(s, x-textWidth(s), y, col)
}

const lineAdvance = 14 // vertical advance between stacked caption lines

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
