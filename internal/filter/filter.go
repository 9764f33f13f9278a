package filter

import (
	"strings"

	"github.com/denverhappyhour/pipeline/internal/extract"
)

// Filter represents record filtering criteria. Zero-value criteria (or the
// literal "all") are inactive.
type Filter struct {
	// Neighborhood matches exactly, case-insensitively
	Neighborhood string

	// Day matches records whose day set contains the weekday; records with
	// unknown days never match an active day filter
	Day string

	// Name matches as a case-insensitive substring of the venue name
	Name string
}

// Apply returns the records matching every active criterion, in input order
func (f *Filter) Apply(results []*extract.Result) []*extract.Result {
	matched := make([]*extract.Result, 0, len(results))
	for _, r := range results {
		if f.Matches(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Matches reports whether a single record passes the filter
func (f *Filter) Matches(r *extract.Result) bool {
	if active(f.Neighborhood) && !strings.EqualFold(f.Neighborhood, r.Neighborhood) {
		return false
	}

	if active(f.Day) {
		if r.Days.IsUnknown() {
			return false
		}
		found := false
		for _, d := range r.Days {
			if strings.EqualFold(d, f.Day) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if active(f.Name) && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.Name)) {
		return false
	}

	return true
}

func active(criterion string) bool {
	return criterion != "" && !strings.EqualFold(criterion, "all")
}
