package filter

import (
	"testing"

	"github.com/denverhappyhour/pipeline/internal/extract"
	"github.com/denverhappyhour/pipeline/internal/venue"
)

func sampleResults() []*extract.Result {
	return []*extract.Result{
		{
			Venue: *venue.New("Star Bar", "2137 Larimer St", "LoDo", ""),
			Record: extract.Record{
				Days:      extract.FieldList{"Monday", "Tuesday", "Wednesday"},
				StartTime: "3:00 PM",
				EndTime:   "6:00 PM",
			},
		},
		{
			Venue: *venue.New("Ratio Beerworks", "2920 Larimer St", "RiNo", ""),
			Record: extract.Record{
				Days:      extract.FieldList{"Saturday", "Sunday"},
				StartTime: "2:00 PM",
				EndTime:   "5:00 PM",
			},
		},
		{
			Venue:  *venue.New("The Tap Room", "1920 Blake St", "LoDo", ""),
			Record: extract.UnknownRecord(),
		},
	}
}

func TestApplyNeighborhood(t *testing.T) {
	f := &Filter{Neighborhood: "LoDo"}
	got := f.Apply(sampleResults())

	if len(got) != 2 {
		t.Fatalf("expected 2 LoDo records, got %d", len(got))
	}
	for _, r := range got {
		if r.Neighborhood != "LoDo" {
			t.Errorf("unexpected neighborhood: %q", r.Neighborhood)
		}
	}
}

func TestApplyDayMembership(t *testing.T) {
	f := &Filter{Day: "Monday"}
	got := f.Apply(sampleResults())

	if len(got) != 1 || got[0].Slug != "star-bar" {
		t.Fatalf("expected only star-bar on Monday, got %v", got)
	}
}

func TestUnknownDaysNeverMatchDayFilter(t *testing.T) {
	f := &Filter{Day: "Saturday"}
	got := f.Apply(sampleResults())

	for _, r := range got {
		if r.Slug == "the-tap-room" {
			t.Error("record with unknown days matched a day filter")
		}
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 Saturday record, got %d", len(got))
	}
}

func TestApplyNameSubstring(t *testing.T) {
	f := &Filter{Name: "tap"}
	got := f.Apply(sampleResults())

	if len(got) != 1 || got[0].Slug != "the-tap-room" {
		t.Fatalf("expected the-tap-room for substring 'tap', got %v", got)
	}
}

func TestAllAndEmptyAreInactive(t *testing.T) {
	for _, f := range []*Filter{
		{},
		{Neighborhood: "All", Day: "all", Name: ""},
	} {
		got := f.Apply(sampleResults())
		if len(got) != 3 {
			t.Errorf("inactive filter %+v should match everything, got %d", f, len(got))
		}
	}
}

func TestCombinedCriteria(t *testing.T) {
	f := &Filter{Neighborhood: "lodo", Day: "tuesday", Name: "star"}
	got := f.Apply(sampleResults())

	if len(got) != 1 || got[0].Slug != "star-bar" {
		t.Fatalf("expected star-bar for combined filter, got %v", got)
	}
}
