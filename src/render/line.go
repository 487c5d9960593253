package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/zaidi-96/quantum-computing/src/infographic"
)

// lineStyle renders a connected series with visible point markers.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
		DotWidth:    4,
		DotColor:    col,
	}
}

var lineColors = []drawing.Color{chart.ColorBlue, chart.ColorGreen, chart.ColorAlternateGray}

// Line renders the line-chart panel with go-chart. When the chart is marked
// logarithmic the values are plotted as log10 on a linear axis with decade
// ticks, which keeps exponential growth readable.
func Line(c infographic.Chart, w, h int) (image.Image, error) {
	n := len(c.RawLabels)
	if n == 0 {
		return nil, fmt.Errorf("line chart %q: no labels", c.Title)
	}

	xs := make([]float64, n)
	ticks := make([]chart.Tick, 0, n+1)
	for i, l := range c.Labels {
		x := float64(i + 1)
		xs[i] = x
		ticks = append(ticks, chart.Tick{Value: x, Label: l.Display()})
	}
	// Padded range so a single-point dataset still has non-zero width.
	maxR := float64(n) + 0.5
	if n == 1 {
		maxR = 2.0
		ticks = append(ticks, chart.Tick{Value: 2, Label: ""})
	}
	xAxis := chart.XAxis{Ticks: ticks, Range: &chart.ContinuousRange{Min: 0.5, Max: maxR}}

	var all []float64
	for _, s := range c.Series {
		all = append(all, s.Values...)
	}
	series := make([]chart.Series, 0, len(c.Series))
	var yAxis chart.YAxis
	if c.LogScale {
		maxExp := maxExponent(all)
		for i, s := range c.Series {
			ys := make([]float64, n)
			for j, v := range s.Values {
				if v < 1 {
					v = 1
				}
				ys[j] = math.Log10(v)
			}
			series = append(series, chart.ContinuousSeries{
				Name:    s.Name,
				XValues: xs,
				YValues: ys,
				Style:   lineStyle(lineColors[i%len(lineColors)]),
			})
		}
		yTicks := make([]chart.Tick, 0, maxExp+1)
		for k := 0; k <= maxExp; k++ {
			yTicks = append(yTicks, chart.Tick{Value: float64(k), Label: pow10Label(k)})
		}
		yAxis = chart.YAxis{
			Name:  c.Unit + " (log)",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxExp)},
			Ticks: yTicks,
		}
	} else {
		maxY := 0.0
		for _, v := range all {
			if v > maxY {
				maxY = v
			}
		}
		if maxY <= 0 {
			maxY = 1
		}
		for i, s := range c.Series {
			series = append(series, chart.ContinuousSeries{
				Name:    s.Name,
				XValues: xs,
				YValues: s.Values,
				Style:   lineStyle(lineColors[i%len(lineColors)]),
			})
		}
		yAxis = chart.YAxis{Name: c.Unit, Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.05}}
	}

	ch := chart.Chart{
		Title:      c.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 32}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render line chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode line chart: %w", err)
	}
	return img, nil
}
