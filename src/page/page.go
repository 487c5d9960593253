// Package page builds the infographic as a standalone HTML document. The
// charts are ECharts instances (go-echarts). The page carries the same
// chrome as the native viewer (a header and an export button) plus a
// client-side capture routine that hides the chrome, rasterizes the full
// document at 2x, downloads the PNG and restores the chrome afterwards on
// both the success and failure paths.
package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	chartrender "github.com/go-echarts/go-echarts/v2/render"

	"github.com/zaidi-96/quantum-computing/src/infographic"
	"github.com/zaidi-96/quantum-computing/src/labelwrap"
)

// ExportFilename is the fixed name of the downloaded raster.
const ExportFilename = "quantum_infographic.png"

const chartWidth = "950px"

// displayLines joins a wrapped label with newlines; ECharts renders "\n" in
// axis labels as stacked lines, mirroring the native renderers.
func displayLines(l labelwrap.Label) string {
	return strings.Join(l.Lines(), "\n")
}

func axisNames(c infographic.Chart) []string {
	out := make([]string, len(c.Labels))
	for i, l := range c.Labels {
		out[i] = displayLines(l)
	}
	return out
}

// tooltipTitleJS reconstructs the original caption from a wrapped axis name
// (the reverse mapping of the label wrap) before rendering the tooltip.
const tooltipTitleJS = `function (params) {
	var list = Array.isArray(params) ? params : [params];
	var title = String(list[0].name).split('\n').join(' ');
	var rows = list.map(function (p) { return p.marker + ' ' + p.seriesName + ': ' + p.value; });
	return title + '<br/>' + rows.join('<br/>');
}`

func lineChart(c infographic.Chart) *charts.Line {
	line := charts.NewLine()
	yAxis := opts.YAxis{Name: c.Unit}
	if c.LogScale {
		yAxis.Type = "log"
	}
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: c.Title}),
		charts.WithYAxisOpts(yAxis),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis", Formatter: opts.FuncOpts(tooltipTitleJS)}),
	)
	line.SetXAxis(axisNames(c))
	for _, s := range c.Series {
		data := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, data)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

func radarChart(c infographic.Chart) *charts.Radar {
	radar := charts.NewRadar()
	indicators := make([]*opts.Indicator, len(c.Labels))
	for i, l := range c.Labels {
		indicators[i] = &opts.Indicator{Name: displayLines(l), Max: float32(c.AxisMax)}
	}
	radar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: "520px"}),
		charts.WithTitleOpts(opts.Title{Title: c.Title}),
		charts.WithRadarComponentOpts(opts.RadarComponent{Indicator: indicators, SplitNumber: 5}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	for _, s := range c.Series {
		radar.AddSeries(s.Name, []opts.RadarData{{Name: s.Name, Value: s.Values}})
	}
	return radar
}

func barChart(c infographic.Chart) *charts.Bar {
	bar := charts.NewBar()
	yAxis := opts.YAxis{Name: c.Unit}
	if c.LogScale {
		yAxis.Type = "log"
	}
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: c.Title}),
		charts.WithYAxisOpts(yAxis),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis", Formatter: opts.FuncOpts(tooltipTitleJS)}),
	)
	bar.SetXAxis(axisNames(c))
	for _, s := range c.Series {
		data := make([]opts.BarData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(s.Name, data)
	}
	// Value axis on X, categories on Y: horizontal bars.
	bar.XYReversal()
	return bar
}

// snippetRenderer renders one chart as an embeddable div+script fragment
// instead of the library's full standalone page.
type snippetRenderer struct {
	c      interface{}
	before []func()
}

func newSnippetRenderer(c interface{}, before ...func()) chartrender.Renderer {
	return &snippetRenderer{c: c, before: before}
}

var snippetTpl = template.Must(template.New("snippet").
	Funcs(template.FuncMap{
		"safeJS": func(s interface{}) template.JS {
			return template.JS(fmt.Sprint(s))
		},
	}).
	Parse(`
<div class="chart" id="{{ .ChartID }}" style="width:{{ .Initialization.Width }};height:{{ .Initialization.Height }};margin:0 auto;"></div>
<script type="text/javascript">
    "use strict";
    let goecharts_{{ .ChartID | safeJS }} = echarts.init(document.getElementById('{{ .ChartID | safeJS }}'));
    let option_goecharts_{{ .ChartID | safeJS }} = {{ .JSONNotEscaped | safeJS }};
    goecharts_{{ .ChartID | safeJS }}.setOption(option_goecharts_{{ .ChartID | safeJS }});
</script>
`))

func (r *snippetRenderer) Render(w io.Writer) error {
	for _, fn := range r.before {
		fn()
	}
	return snippetTpl.Execute(w, r.c)
}

func renderSnippet(r chartrender.Renderer) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		return "", fmt.Errorf("render chart snippet: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Build assembles the full infographic page for the given charts (the three
// panels in display order).
func Build(chartsIn []infographic.Chart) (string, error) {
	if len(chartsIn) != 3 {
		return "", fmt.Errorf("page: want 3 panels, have %d", len(chartsIn))
	}
	line := lineChart(chartsIn[0])
	radar := radarChart(chartsIn[1])
	bar := barChart(chartsIn[2])

	line.Renderer = newSnippetRenderer(line, line.Validate)
	radar.Renderer = newSnippetRenderer(radar, radar.Validate)
	bar.Renderer = newSnippetRenderer(bar, bar.Validate)

	snippets := make([]template.HTML, 0, 3)
	for _, r := range []chartrender.Renderer{line.Renderer, radar.Renderer, bar.Renderer} {
		s, err := renderSnippet(r)
		if err != nil {
			return "", err
		}
		snippets = append(snippets, s)
	}

	var buf bytes.Buffer
	err := pageTpl.Execute(&buf, struct {
		Title    string
		Snippets []template.HTML
		Filename string
	}{
		Title:    "Quantum Computing: State of Play",
		Snippets: snippets,
		Filename: ExportFilename,
	})
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}
