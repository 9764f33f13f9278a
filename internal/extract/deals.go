package extract

import (
	"regexp"
	"sort"
	"strings"
)

const (
	foodWords  = `(?:appetizers?|apps?|wings?|tacos?|sliders?|nachos|pizzas?|oysters?|fries|bites|small plates?|snacks?|burgers?|food)`
	drinkWords = `(?:beers?|drafts?|draughts?|wines?|cocktails?|margaritas?|martinis?|mimosas?|sangria|well drinks|wells?|shots?|seltzers?|drinks?)`
)

// Each field scans an independent fixed pattern set: dollar amount plus a
// category word, half-off phrasing, and buy-one-get-one variants (plus
// two-for-one for drinks). Matched substrings are kept verbatim.
var (
	foodPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\$\d+(?:\.\d{2})?\s+(?:[a-z]+\s+)?` + foodWords + `\b`),
		regexp.MustCompile(`(?i)half[- ](?:off|priced?)\s+(?:[a-z]+\s+)?` + foodWords + `\b`),
		regexp.MustCompile(`(?i)(?:buy one,? get one(?: free)?|bogo)\s+(?:[a-z]+\s+)?` + foodWords + `\b`),
	}

	drinkPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\$\d+(?:\.\d{2})?\s+(?:[a-z]+\s+)?` + drinkWords + `\b`),
		regexp.MustCompile(`(?i)half[- ](?:off|priced?)\s+(?:[a-z]+\s+)?` + drinkWords + `\b`),
		regexp.MustCompile(`(?i)(?:2|two)[- ]?for[- ]?(?:1|one)(?:\s+` + drinkWords + `)?\b`),
		regexp.MustCompile(`(?i)(?:buy one,? get one(?: free)?|bogo)\s+(?:[a-z]+\s+)?` + drinkWords + `\b`),
	}
)

// ExtractFoodDeals collects food deal phrases from raw text
func ExtractFoodDeals(text string) FieldList {
	return collect(text, foodPatterns)
}

// ExtractDrinkDeals collects drink deal phrases from raw text
func ExtractDrinkDeals(text string) FieldList {
	return collect(text, drinkPatterns)
}

// collect gathers distinct matches across the pattern set, ordered by where
// they appear in the text.
func collect(text string, patterns []*regexp.Regexp) FieldList {
	type match struct {
		pos    int
		phrase string
	}

	var matches []match
	seen := make(map[string]bool)
	for _, re := range patterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			phrase := strings.TrimSpace(text[loc[0]:loc[1]])
			key := strings.ToLower(phrase)
			if seen[key] {
				continue
			}
			seen[key] = true
			matches = append(matches, match{pos: loc[0], phrase: phrase})
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].pos < matches[j].pos })

	var deals FieldList
	for _, m := range matches {
		deals = append(deals, m.phrase)
	}
	return deals
}
