package worldcup

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ErrTeamNotFound is returned when a team name has no entry in the store.
var ErrTeamNotFound = errors.New("team not found")

// ErrInvalidRecord is returned when a seed row is missing a name or has a malformed ISO code.
var ErrInvalidRecord = errors.New("invalid team record")

// ErrDuplicateTeam is returned when two seed rows share a team name.
var ErrDuplicateTeam = errors.New("duplicate team")

// ErrCountMismatch is returned when a win or runner-up count disagrees with its year list.
var ErrCountMismatch = errors.New("count does not match year list")

// ErrDuplicateResult is returned when a year has more than one winner or runner-up.
var ErrDuplicateResult = errors.New("year has more than one team with the same result")

var isoCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Store is the immutable table of teams and the derived year index.
// It is safe for concurrent reads; nothing mutates it after NewStore returns.
type Store struct {
	teams    []Team
	byName   map[string]int
	years    []int
	winner   map[int]int
	runnerUp map[int]int
	maxWins  int
}

// NewStore builds a Store from seed records, preserving their order.
// Year lists are parsed here and every table invariant is checked once.
func NewStore(records []Record) (*Store, error) {
	s := &Store{
		teams:    make([]Team, 0, len(records)),
		byName:   make(map[string]int, len(records)),
		winner:   make(map[int]int),
		runnerUp: make(map[int]int),
	}

	for _, rec := range records {
		t, err := newTeam(rec)
		if err != nil {
			return nil, err
		}
		if _, exists := s.byName[t.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTeam, t.Name)
		}

		idx := len(s.teams)
		if err := s.index(s.winner, t, t.YearsWon, idx, "winner"); err != nil {
			return nil, err
		}
		if err := s.index(s.runnerUp, t, t.YearsRunnerUp, idx, "runner-up"); err != nil {
			return nil, err
		}

		s.byName[t.Name] = idx
		s.teams = append(s.teams, t)
		s.maxWins = max(s.maxWins, t.Wins)
	}

	years := make([]int, 0, len(s.winner)+len(s.runnerUp))
	for y := range s.winner {
		years = append(years, y)
	}
	for y := range s.runnerUp {
		years = append(years, y)
	}
	slices.Sort(years)
	s.years = slices.Compact(years)

	return s, nil
}

func newTeam(rec Record) (Team, error) {
	t := Team{
		Name:          strings.TrimSpace(rec.Team),
		ISO:           strings.TrimSpace(rec.ISO),
		Wins:          rec.Wins,
		RunnersUp:     rec.RunnersUp,
		YearsWon:      ParseYears(rec.YearsWon),
		YearsRunnerUp: ParseYears(rec.YearsRunnersUp),
	}

	if t.Name == "" {
		return Team{}, fmt.Errorf("%w: team name is required", ErrInvalidRecord)
	}
	if !isoCodeRegex.MatchString(t.ISO) {
		return Team{}, fmt.Errorf("%w: %s has ISO code %q, want three uppercase letters", ErrInvalidRecord, t.Name, t.ISO)
	}
	if t.Wins != len(t.YearsWon) {
		return Team{}, fmt.Errorf("%w: %s has %d wins but %d winning years", ErrCountMismatch, t.Name, t.Wins, len(t.YearsWon))
	}
	if t.RunnersUp != len(t.YearsRunnerUp) {
		return Team{}, fmt.Errorf("%w: %s has %d runner-up finishes but %d runner-up years", ErrCountMismatch, t.Name, t.RunnersUp, len(t.YearsRunnerUp))
	}

	return t, nil
}

func (s *Store) index(byYear map[int]int, t Team, years []int, idx int, result string) error {
	for _, y := range years {
		if prev, taken := byYear[y]; taken {
			return fmt.Errorf("%w: %d %s claimed by both %s and %s", ErrDuplicateResult, y, result, s.teams[prev].Name, t.Name)
		}
		byYear[y] = idx
	}
	return nil
}

// Team looks up a team by exact name.
func (s *Store) Team(name string) (Team, error) {
	idx, ok := s.byName[name]
	if !ok {
		return Team{}, ErrTeamNotFound
	}
	return s.teams[idx].clone(), nil
}

// Teams returns every team in seed order.
func (s *Store) Teams() []Team {
	out := make([]Team, len(s.teams))
	for i, t := range s.teams {
		out[i] = t.clone()
	}
	return out
}

// Years returns the year index: every final year in the table, ascending.
func (s *Store) Years() []int {
	return slices.Clone(s.years)
}

// Len returns the number of teams.
func (s *Store) Len() int {
	return len(s.teams)
}

// MaxWins returns the highest win count across all teams.
func (s *Store) MaxWins() int {
	return s.maxWins
}

// Finalists returns the winner and runner-up of the final held in year.
// Either is nil when the table has no such team.
func (s *Store) Finalists(year int) (winner, runnerUp *Team) {
	if idx, ok := s.winner[year]; ok {
		t := s.teams[idx].clone()
		winner = &t
	}
	if idx, ok := s.runnerUp[year]; ok {
		t := s.teams[idx].clone()
		runnerUp = &t
	}
	return winner, runnerUp
}
