package extract

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	happyHourRe = regexp.MustCompile(`(?i)happy\s*hour`)

	// Splits text into the sentence/clause units searched around a happy
	// hour mention.
	clauseSplitRe = regexp.MustCompile(`[.\n!?;|•]+`)

	// A time range like "3-6pm", "5pm-7pm", "4:30 to 6:30 pm". The end time
	// must carry a meridiem; the start inherits it when unmarked.
	timeRangeRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*([ap]m)?\s*(?:-|–|—|to|until|till)\s*(\d{1,2})(?::(\d{2}))?\s*([ap]m)\b`)
)

// ExtractTimes recovers the happy hour window from raw text. A range in the
// same clause as a "happy hour" mention wins; otherwise the first range
// anywhere in the text is used. Start and end are produced together or not
// at all.
func ExtractTimes(text string) (start, end string) {
	for _, clause := range clauseSplitRe.Split(text, -1) {
		if !happyHourRe.MatchString(clause) {
			continue
		}
		if m := timeRangeRe.FindStringSubmatch(clause); m != nil {
			return normalizeRange(m)
		}
	}

	if m := timeRangeRe.FindStringSubmatch(text); m != nil {
		return normalizeRange(m)
	}
	return Unknown, Unknown
}

func normalizeRange(m []string) (string, string) {
	startMeridiem := m[3]
	if startMeridiem == "" {
		startMeridiem = m[6]
	}
	return formatClock(m[1], m[2], startMeridiem), formatClock(m[4], m[5], m[6])
}

// formatClock normalizes a matched time to include a minutes component and
// a space before the uppercased meridiem, e.g. "5pm" becomes "5:00 PM".
func formatClock(hour, minutes, meridiem string) string {
	if minutes == "" {
		minutes = "00"
	}
	if len(hour) == 2 && hour[0] == '0' {
		hour = hour[1:]
	}
	return fmt.Sprintf("%s:%s %s", hour, minutes, strings.ToUpper(meridiem))
}
