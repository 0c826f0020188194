package validation

import (
	"strconv"
	"strings"

	"github.com/daap14/wcdash/internal/dashboard"
)

const maxCountryLength = 100

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ViewQuery mirrors the query parameters of a view request.
type ViewQuery struct {
	Country string
	Year    string
}

// ParseViewQuery validates a view query and converts it into a selection.
// Blank values mean the filter is not set. Returns field errors when invalid.
func ParseViewQuery(q ViewQuery) (dashboard.Selection, []FieldError) {
	var errs []FieldError
	sel := dashboard.Selection{Country: strings.TrimSpace(q.Country)}

	if len(sel.Country) > maxCountryLength {
		errs = append(errs, FieldError{Field: "country", Message: "country must be at most 100 characters"})
	}

	if raw := strings.TrimSpace(q.Year); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, FieldError{Field: "year", Message: "year must be an integer"})
		} else if y < 1 {
			errs = append(errs, FieldError{Field: "year", Message: "year must be a positive integer"})
		} else {
			sel.Year = &y
		}
	}

	if len(errs) > 0 {
		return dashboard.Selection{}, errs
	}
	return sel, nil
}
