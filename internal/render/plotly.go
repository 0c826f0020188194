// Package render translates dashboard map specs into Plotly figures.
// It only maps fields; every coloring decision is made by the dashboard package.
package render

import "github.com/daap14/wcdash/internal/dashboard"

// Figure is a Plotly figure document ({data, layout}).
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single choropleth trace.
type Trace struct {
	Type          string      `json:"type"`
	Name          string      `json:"name,omitempty"`
	LocationMode  string      `json:"locationmode"`
	Locations     []string    `json:"locations"`
	Z             []float64   `json:"z"`
	Text          []string    `json:"text"`
	HoverTemplate string      `json:"hovertemplate"`
	Colorscale    any         `json:"colorscale"`
	ZMin          *float64    `json:"zmin,omitempty"`
	ZMax          *float64    `json:"zmax,omitempty"`
	ShowScale     bool        `json:"showscale"`
	ShowLegend    bool        `json:"showlegend"`
	LegendGroup   string      `json:"legendgroup,omitempty"`
	ColorBar      *ColorBar   `json:"colorbar,omitempty"`
	Marker        TraceMarker `json:"marker"`
}

// TraceMarker styles region borders.
type TraceMarker struct {
	Line MarkerLine `json:"line"`
}

// MarkerLine is a region border.
type MarkerLine struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// ColorBar labels a continuous scale.
type ColorBar struct {
	Title Text `json:"title"`
}

// Text is a Plotly text block.
type Text struct {
	Text string `json:"text"`
}

// Layout holds the figure layout.
type Layout struct {
	Title  Text    `json:"title"`
	Geo    Geo     `json:"geo"`
	Legend *Legend `json:"legend,omitempty"`
	Margin Margin  `json:"margin"`
}

// Geo configures the base map.
type Geo struct {
	Visible       *bool  `json:"visible,omitempty"`
	Resolution    int    `json:"resolution,omitempty"`
	ShowCountries bool   `json:"showcountries"`
	ShowFrame     bool   `json:"showframe"`
	FitBounds     string `json:"fitbounds,omitempty"`
	Projection    Proj   `json:"projection"`
}

// Proj is a geo projection.
type Proj struct {
	Type string `json:"type"`
}

// Legend configures the categorical legend.
type Legend struct {
	Title Text `json:"title"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

const (
	locationModeISO3 = "ISO-3"
	winsLabel        = "Winners"
	resultLabel      = "Result"
)

// FigureFor builds the Plotly figure for a map spec.
func FigureFor(spec dashboard.MapSpec) Figure {
	fig := Figure{
		Layout: Layout{
			Title:  Text{Text: spec.Title},
			Geo:    Geo{ShowCountries: true, Projection: Proj{Type: "natural earth"}},
			Margin: Margin{L: 0, R: 0, T: 60, B: 0},
		},
	}

	if spec.FitBounds {
		hidden := false
		fig.Layout.Geo.Visible = &hidden
		fig.Layout.Geo.Resolution = 50
		fig.Layout.Geo.FitBounds = "locations"
	}

	switch spec.Scale.Kind {
	case dashboard.ScaleCategorical:
		fig.Data = categoricalTraces(spec)
		fig.Layout.Legend = &Legend{Title: Text{Text: resultLabel}}
	default:
		fig.Data = []Trace{continuousTrace(spec)}
	}

	return fig
}

// categoricalTraces emits one trace per palette entry that has regions,
// in palette order, each painted with a flat colorscale.
func categoricalTraces(spec dashboard.MapSpec) []Trace {
	traces := make([]Trace, 0, len(spec.Scale.Categories))
	for _, cat := range spec.Scale.Categories {
		tr := newTrace()
		tr.Name = string(cat.Result)
		tr.LegendGroup = string(cat.Result)
		tr.ShowLegend = true
		tr.Colorscale = [][2]any{{0, cat.Color}, {1, cat.Color}}
		tr.HoverTemplate = "<b>%{text}</b><br>" + resultLabel + "=" + string(cat.Result) + "<extra></extra>"

		for _, r := range spec.Regions {
			if r.Result != cat.Result {
				continue
			}
			tr.Locations = append(tr.Locations, r.ISO)
			tr.Z = append(tr.Z, 1)
			tr.Text = append(tr.Text, r.Team)
		}

		if len(tr.Locations) > 0 {
			traces = append(traces, tr)
		}
	}
	return traces
}

func continuousTrace(spec dashboard.MapSpec) Trace {
	tr := newTrace()
	zmin := float64(spec.Scale.Min)
	zmax := float64(spec.Scale.Max)
	tr.ZMin = &zmin
	tr.ZMax = &zmax
	tr.Colorscale = spec.Scale.Name
	tr.ShowScale = true
	tr.ColorBar = &ColorBar{Title: Text{Text: winsLabel}}
	tr.HoverTemplate = "<b>%{text}</b><br>" + winsLabel + "=%{z}<extra></extra>"

	for _, r := range spec.Regions {
		tr.Locations = append(tr.Locations, r.ISO)
		tr.Z = append(tr.Z, float64(r.Wins))
		tr.Text = append(tr.Text, r.Team)
	}
	return tr
}

func newTrace() Trace {
	return Trace{
		Type:         "choropleth",
		LocationMode: locationModeISO3,
		Locations:    []string{},
		Z:            []float64{},
		Text:         []string{},
		Marker:       TraceMarker{Line: MarkerLine{Color: "white", Width: 0.5}},
	}
}
