package worldcup

import "slices"

// Record is one row of the seed table as written, with free-text year lists.
type Record struct {
	Team           string `json:"team"`
	ISO            string `json:"iso"`
	Wins           int    `json:"wins"`
	RunnersUp      int    `json:"runnersUp"`
	YearsWon       string `json:"yearsWon"`
	YearsRunnersUp string `json:"yearsRunnersUp"`
}

// Team is a national team's World Cup final record.
type Team struct {
	Name          string
	ISO           string // ISO 3166-1 alpha-3, used for map geometry
	Wins          int
	RunnersUp     int
	YearsWon      []int // ascending, no duplicates
	YearsRunnerUp []int // ascending, no duplicates
}

// WonIn reports whether the team won the tournament held in year.
func (t Team) WonIn(year int) bool {
	_, found := slices.BinarySearch(t.YearsWon, year)
	return found
}

// RunnerUpIn reports whether the team finished runner-up in year.
func (t Team) RunnerUpIn(year int) bool {
	_, found := slices.BinarySearch(t.YearsRunnerUp, year)
	return found
}

func (t Team) clone() Team {
	t.YearsWon = slices.Clone(t.YearsWon)
	t.YearsRunnerUp = slices.Clone(t.YearsRunnerUp)
	return t
}
