package extract

import (
	"strings"

	"github.com/denverhappyhour/pipeline/internal/crawler"
	"github.com/denverhappyhour/pipeline/internal/venue"
)

var sentinelMarkers = []string{crawler.NoWebsiteMarker, crawler.CrawlFailedMarker}

// Extract derives a happy hour record from one capture's raw text. Captures
// that are empty or carry a crawler sentinel marker skip the matchers and
// come back all-unknown.
func Extract(text string) Record {
	if isSentinel(text) {
		return UnknownRecord()
	}

	rec := Record{
		Days:       ExtractDays(text),
		FoodDeals:  ExtractFoodDeals(text),
		DrinkDeals: ExtractDrinkDeals(text),
	}
	rec.StartTime, rec.EndTime = ExtractTimes(text)
	return rec
}

func isSentinel(text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	for _, marker := range sentinelMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// Results derives one result per venue in list order. captureText supplies
// each venue's raw capture; venues never influence one another's record.
func Results(venues []*venue.Venue, captureText func(*venue.Venue) string) []*Result {
	results := make([]*Result, 0, len(venues))
	for _, v := range venues {
		results = append(results, &Result{
			Venue:  *v,
			Record: Extract(captureText(v)),
		})
	}
	return results
}
