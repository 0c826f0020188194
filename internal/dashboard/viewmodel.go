package dashboard

import (
	"fmt"
	"slices"

	"github.com/daap14/wcdash/internal/worldcup"
)

// Source is the read-only view of the team table the view model needs.
type Source interface {
	Team(name string) (worldcup.Team, error)
	Teams() []worldcup.Team
	MaxWins() int
}

// ViewModel turns a filter selection into the status line and map spec.
// It holds no state of its own, so one instance serves every request.
type ViewModel struct {
	source Source
}

// New creates a ViewModel over the given table.
func New(source Source) *ViewModel {
	return &ViewModel{source: source}
}

// Render computes the full view for a selection.
func (vm *ViewModel) Render(sel Selection) View {
	return View{
		Mode:   sel.Mode(),
		Status: vm.Status(sel),
		Map:    vm.Map(sel),
	}
}

// Status returns the country status line.
func (vm *ViewModel) Status(sel Selection) string {
	if !sel.HasCountry() {
		return "Please select a country."
	}

	name := sel.CountryName()
	t, err := vm.source.Team(name)
	if err != nil {
		return fmt.Sprintf("%s is not in the data.", name)
	}
	return fmt.Sprintf("%s has won the FIFA World Cup %d times.", name, t.Wins)
}

// Map returns the map coloring for a selection.
func (vm *ViewModel) Map(sel Selection) MapSpec {
	switch sel.Mode() {
	case ModeByYear:
		return vm.byYear(*sel.Year)
	case ModeByCountry:
		return vm.byCountry(sel.CountryName())
	default:
		return vm.overview()
	}
}

// Classify returns a team's result in year.
func Classify(t worldcup.Team, year int) Result {
	switch {
	case t.WonIn(year):
		return ResultWinner
	case t.RunnerUpIn(year):
		return ResultRunnerUp
	default:
		return ResultNone
	}
}

func (vm *ViewModel) byYear(year int) MapSpec {
	teams := vm.source.Teams()
	regions := make([]Region, 0, len(teams))
	for _, t := range teams {
		r := newRegion(t)
		r.Result = Classify(t, year)
		regions = append(regions, r)
	}

	return MapSpec{
		Mode:    ModeByYear,
		Title:   fmt.Sprintf("World Cup Result in %d", year),
		Regions: regions,
		Scale: ColorScale{
			Kind:       ScaleCategorical,
			Categories: slices.Clone(ResultPalette),
		},
	}
}

func (vm *ViewModel) byCountry(name string) MapSpec {
	// An unknown country yields a map with no regions.
	regions := []Region{}
	if t, err := vm.source.Team(name); err == nil {
		regions = append(regions, newRegion(t))
	}

	return MapSpec{
		Mode:      ModeByCountry,
		Title:     fmt.Sprintf("%s World Cup Performance", name),
		Regions:   regions,
		Scale:     vm.winsScale(),
		FitBounds: true,
	}
}

func (vm *ViewModel) overview() MapSpec {
	teams := vm.source.Teams()
	regions := make([]Region, 0, len(teams))
	for _, t := range teams {
		regions = append(regions, newRegion(t))
	}

	return MapSpec{
		Mode:    ModeOverview,
		Title:   "Countries that have won the FIFA World Cup",
		Regions: regions,
		Scale:   vm.winsScale(),
	}
}

// winsScale spans [1, max wins] whatever subset of teams is shown.
func (vm *ViewModel) winsScale() ColorScale {
	return ColorScale{
		Kind: ScaleContinuous,
		Name: ContinuousScale,
		Min:  1,
		Max:  vm.source.MaxWins(),
	}
}

func newRegion(t worldcup.Team) Region {
	return Region{
		ISO:  t.ISO,
		Team: t.Name,
		Wins: t.Wins,
	}
}
