package worldcup

import (
	"slices"
	"strconv"
	"strings"
)

// ParseYears parses a comma-separated list of years such as "1958, 1962".
// Tokens that are not plain digit strings are skipped. The result is sorted
// ascending with duplicates removed, and is never nil.
func ParseYears(s string) []int {
	years := []int{}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if !isDigits(tok) {
			continue
		}
		year, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		years = append(years, year)
	}
	slices.Sort(years)
	return slices.Compact(years)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
