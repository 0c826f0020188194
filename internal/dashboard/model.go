package dashboard

import "strings"

// Mode is the map render mode picked from the current selection.
type Mode string

const (
	ModeByYear    Mode = "by_year"
	ModeByCountry Mode = "by_country"
	ModeOverview  Mode = "overview"
)

// Result classifies a team's finish in a selected year.
type Result string

const (
	ResultWinner   Result = "Winner"
	ResultRunnerUp Result = "Runner-up"
	ResultNone     Result = "None"
)

// ScaleKind distinguishes categorical coloring from a continuous color scale.
type ScaleKind string

const (
	ScaleCategorical ScaleKind = "categorical"
	ScaleContinuous  ScaleKind = "continuous"
)

// ContinuousScale names the color ramp used for win counts.
const ContinuousScale = "Viridis"

// Category is one entry of a categorical palette.
type Category struct {
	Result Result `json:"result"`
	Color  string `json:"color"`
}

// ResultPalette is the fixed color per year result, in legend order.
var ResultPalette = []Category{
	{Result: ResultWinner, Color: "green"},
	{Result: ResultRunnerUp, Color: "orange"},
	{Result: ResultNone, Color: "lightgray"},
}

// Selection is the current state of the two filters.
// A blank country and a nil year mean nothing is selected.
type Selection struct {
	Country string
	Year    *int
}

// CountryName returns the selected country with surrounding whitespace removed.
func (s Selection) CountryName() string {
	return strings.TrimSpace(s.Country)
}

// HasCountry reports whether a non-blank country is selected.
func (s Selection) HasCountry() bool {
	return s.CountryName() != ""
}

// Mode returns the render mode for the selection. Year wins over country.
func (s Selection) Mode() Mode {
	switch {
	case s.Year != nil:
		return ModeByYear
	case s.HasCountry():
		return ModeByCountry
	default:
		return ModeOverview
	}
}

// Region is one colored country on the map.
type Region struct {
	ISO    string `json:"iso"`
	Team   string `json:"team"`
	Wins   int    `json:"wins"`
	Result Result `json:"result,omitempty"`
}

// ColorScale describes how regions are colored.
type ColorScale struct {
	Kind       ScaleKind  `json:"kind"`
	Categories []Category `json:"categories,omitempty"`
	Name       string     `json:"name,omitempty"`
	Min        int        `json:"min,omitempty"`
	Max        int        `json:"max,omitempty"`
}

// MapSpec is a renderer-independent description of the choropleth.
type MapSpec struct {
	Mode      Mode       `json:"mode"`
	Title     string     `json:"title"`
	Regions   []Region   `json:"regions"`
	Scale     ColorScale `json:"scale"`
	FitBounds bool       `json:"fitBounds"`
}

// View is everything the page needs after a filter change.
type View struct {
	Mode   Mode    `json:"mode"`
	Status string  `json:"status"`
	Map    MapSpec `json:"map"`
}
