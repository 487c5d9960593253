package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/zaidi-96/quantum-computing/src/infographic"
)

const panelGap = 16

// Document composes the three panels into one image covering the full
// content height (all charts, not just what a window shows), then upscales
// by the given factor. This is the rasterization step of the export
// workflow; scale 2 is the export default.
func Document(charts []infographic.Chart, scale int) (image.Image, error) {
	if len(charts) != 3 {
		return nil, fmt.Errorf("document: want 3 panels, have %d", len(charts))
	}
	line, err := Line(charts[0], PanelWidth, LineHeight)
	if err != nil {
		return nil, err
	}
	radar, err := Radar(charts[1], RadarSize)
	if err != nil {
		return nil, err
	}
	bars, err := HBar(charts[2], PanelWidth, HBarHeight)
	if err != nil {
		return nil, err
	}

	panels := []image.Image{line, radar, bars}
	totalH := panelGap
	for _, p := range panels {
		totalH += p.Bounds().Dy() + panelGap
	}
	doc := image.NewRGBA(image.Rect(0, 0, PanelWidth, totalH))
	draw.Draw(doc, doc.Bounds(), &image.Uniform{colBackground}, image.Point{}, draw.Src)

	y := panelGap
	for _, p := range panels {
		b := p.Bounds()
		x := (PanelWidth - b.Dx()) / 2
		draw.Draw(doc, image.Rect(x, y, x+b.Dx(), y+b.Dy()), p, b.Min, draw.Over)
		y += b.Dy() + panelGap
	}
	return Upscale(doc, scale), nil
}
