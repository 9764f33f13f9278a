package extract

import (
	"regexp"
	"strings"
)

// Cyclic weekday ordering used for range expansion, Monday first
var canonicalDays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var (
	wholeWeekRe = regexp.MustCompile(`(?i)\b(?:daily|every ?day|7 days)\b`)
	dayRangeRe  = regexp.MustCompile(`(?i)\b(mon|tue|wed|thu|fri|sat|sun)[a-z]*\s*(?:-|–|—|to|thru|through)\s*(mon|tue|wed|thu|fri|sat|sun)[a-z]*\b`)
	dayTokenRe  = regexp.MustCompile(`(?i)\b(monday|mon|tuesday|tues|tue|wednesday|wed|thursday|thurs|thur|thu|friday|fri|saturday|sat|sunday|sun)s?\b`)
)

// ExtractDays recovers the set of weekdays a happy hour applies to.
// Matchers run in priority order: whole-week phrases short-circuit to all
// seven days, a "weekday" mention short-circuits to Monday through Friday,
// then "weekend", day ranges, and individual day names accumulate into one
// set. The result is in canonical Monday-first order, or unknown when no
// day evidence exists.
func ExtractDays(text string) FieldList {
	lower := strings.ToLower(text)

	if wholeWeekRe.MatchString(lower) {
		return allDays()
	}
	if strings.Contains(lower, "weekday") {
		return allDays()[:5]
	}

	var found [7]bool
	if strings.Contains(lower, "weekend") {
		found[5], found[6] = true, true
	}

	// Ranges expand inclusively over the cyclic week, wrapping if needed
	for _, m := range dayRangeRe.FindAllStringSubmatch(text, -1) {
		start, end := dayIndex(m[1]), dayIndex(m[2])
		if start < 0 || end < 0 {
			continue
		}
		for i := start; ; i = (i + 1) % 7 {
			found[i] = true
			if i == end {
				break
			}
		}
	}

	for _, m := range dayTokenRe.FindAllStringSubmatch(text, -1) {
		if i := dayIndex(m[1]); i >= 0 {
			found[i] = true
		}
	}

	var days FieldList
	for i, ok := range found {
		if ok {
			days = append(days, canonicalDays[i])
		}
	}
	return days
}

func allDays() FieldList {
	return FieldList(append([]string(nil), canonicalDays[:]...))
}

// dayIndex resolves a day token to its canonical index by its first three
// letters, or -1 for tokens that name no day.
func dayIndex(token string) int {
	prefix := strings.ToLower(token)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	for i, day := range canonicalDays {
		if strings.HasPrefix(strings.ToLower(day), prefix) {
			return i
		}
	}
	return -1
}
