// Package viz renders sampler output as SVG charts.
package viz

import (
	"fmt"
	"html/template"
	"io"

	"github.com/panyam/stoch/runtime"
)

// HistogramConfig holds styling and dimension configuration.
type HistogramConfig struct {
	Width        int
	Height       int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
	BarColor     string
	TextColor    string
	AxisColor    string
}

// DefaultHistogramConfig returns sensible defaults.
func DefaultHistogramConfig() HistogramConfig {
	return HistogramConfig{
		Width: 800, Height: 400, MarginTop: 40, MarginRight: 30,
		MarginBottom: 50, MarginLeft: 60,
		BarColor: "#3b82f6", TextColor: "#000000", AxisColor: "#9ca3af",
	}
}

// HistogramMeta contains chart labels and title.
type HistogramMeta struct {
	Title  string
	XLabel string
	YLabel string
}

type histBar struct {
	X, Y, W, H int
}

type histTick struct {
	X     int
	Label string
}

type histTemplateData struct {
	Config      HistogramConfig
	Meta        HistogramMeta
	InnerWidth  int
	InnerHeight int
	Bars        []histBar
	Ticks       []histTick
}

const histogramTemplate = `<svg width="{{.Config.Width}}" height="{{.Config.Height}}" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <style>
      .axis { font: 12px sans-serif; fill: {{.Config.TextColor}}; }
      .axis path, .axis line { fill: none; stroke: {{.Config.AxisColor}}; shape-rendering: crispEdges; }
      .title { font: bold 16px sans-serif; text-anchor: middle; fill: {{.Config.TextColor}}; }
      .axis-label { font: 12px sans-serif; text-anchor: middle; fill: {{.Config.TextColor}}; }
    </style>
  </defs>

  {{if .Meta.Title}}
  <text class="title" x="{{div .Config.Width 2}}" y="20">{{.Meta.Title}}</text>
  {{end}}

  <g transform="translate({{.Config.MarginLeft}},{{.Config.MarginTop}})">
    {{range .Bars}}
    <rect x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" fill="{{$.Config.BarColor}}"></rect>
    {{end}}

    <g class="axis" transform="translate(0,{{.InnerHeight}})">
      {{range .Ticks}}<line x1="{{.X}}" x2="{{.X}}" y1="0" y2="6"></line><text x="{{.X}}" y="20" text-anchor="middle">{{.Label}}</text>{{end}}
      <path d="M0,0H{{$.InnerWidth}}"></path>
      {{if .Meta.XLabel}}<text class="axis-label" x="{{div .InnerWidth 2}}" y="35">{{.Meta.XLabel}}</text>{{end}}
    </g>
  </g>
</svg>`

// HistogramPlotter renders runtime.Histogram output as an SVG bar
// chart.
type HistogramPlotter struct {
	config   HistogramConfig
	template *template.Template
}

func NewHistogramPlotter(config HistogramConfig) *HistogramPlotter {
	tmpl := template.Must(template.New("histogram").Funcs(template.FuncMap{
		"div": func(a, b int) int { return a / b },
	}).Parse(histogramTemplate))
	return &HistogramPlotter{config: config, template: tmpl}
}

// Render writes the SVG for the given bins to w.
func (p *HistogramPlotter) Render(w io.Writer, bins []runtime.HistogramBin, meta HistogramMeta) error {
	if len(bins) == 0 {
		return fmt.Errorf("viz: no histogram bins to render")
	}

	innerW := p.config.Width - p.config.MarginLeft - p.config.MarginRight
	innerH := p.config.Height - p.config.MarginTop - p.config.MarginBottom

	maxWeight := 0.0
	for _, b := range bins {
		if b.Weight > maxWeight {
			maxWeight = b.Weight
		}
	}
	if maxWeight == 0 {
		maxWeight = 1
	}

	barW := innerW / len(bins)
	data := histTemplateData{
		Config:      p.config,
		Meta:        meta,
		InnerWidth:  innerW,
		InnerHeight: innerH,
	}
	for i, b := range bins {
		h := int(float64(innerH) * b.Weight / maxWeight)
		data.Bars = append(data.Bars, histBar{
			X: i * barW,
			Y: innerH - h,
			W: barW - 1,
			H: h,
		})
	}

	// Tick every few bins so labels don't collide.
	step := len(bins) / 5
	if step == 0 {
		step = 1
	}
	for i := 0; i < len(bins); i += step {
		data.Ticks = append(data.Ticks, histTick{
			X:     i * barW,
			Label: fmt.Sprintf("%.3g", bins[i].Lo),
		})
	}

	return p.template.Execute(w, data)
}
