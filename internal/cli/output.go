package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/denverhappyhour/pipeline/internal/extract"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes records in the specified format
func WriteOutput(w io.Writer, results []*extract.Result, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, results)
	case FormatText:
		return writeText(w, results)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, results []*extract.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// writeText outputs records grouped by neighborhood
func writeText(w io.Writer, results []*extract.Result) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No venues matched.")
		return nil
	}

	byNeighborhood := make(map[string][]*extract.Result)
	for _, r := range results {
		byNeighborhood[r.Neighborhood] = append(byNeighborhood[r.Neighborhood], r)
	}

	neighborhoods := make([]string, 0, len(byNeighborhood))
	for n := range byNeighborhood {
		neighborhoods = append(neighborhoods, n)
	}
	sort.Strings(neighborhoods)

	for _, n := range neighborhoods {
		group := byNeighborhood[n]
		fmt.Fprintf(w, "%s (%d venues)\n", n, len(group))
		for _, r := range group {
			fmt.Fprintf(w, "  %s - %s\n", r.Name, r.Address)
			fmt.Fprintf(w, "    days:   %s\n", fieldText(r.Days))
			fmt.Fprintf(w, "    window: %s\n", windowText(r.StartTime, r.EndTime))
			fmt.Fprintf(w, "    food:   %s\n", fieldText(r.FoodDeals))
			fmt.Fprintf(w, "    drinks: %s\n", fieldText(r.DrinkDeals))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total: %d venues\n", len(results))
	return nil
}

func fieldText(f extract.FieldList) string {
	if f.IsUnknown() {
		return extract.Unknown
	}
	return strings.Join(f, ", ")
}

func windowText(start, end string) string {
	if start == extract.Unknown {
		return extract.Unknown
	}
	return start + " - " + end
}
