package extract

import (
	"encoding/json"

	"github.com/denverhappyhour/pipeline/internal/venue"
)

// Unknown is the explicit no-evidence-found sentinel. It is distinct from
// an absent field: every record carries all five fields.
const Unknown = "unknown"

// FieldList is a list-valued extraction field. An empty list means no
// evidence was found and serializes as the Unknown sentinel string.
type FieldList []string

// IsUnknown reports whether the field found no evidence
func (f FieldList) IsUnknown() bool {
	return len(f) == 0
}

// MarshalJSON emits the Unknown sentinel for empty lists
func (f FieldList) MarshalJSON() ([]byte, error) {
	if len(f) == 0 {
		return json.Marshal(Unknown)
	}
	return json.Marshal([]string(f))
}

// UnmarshalJSON accepts either the Unknown sentinel or a string list
func (f *FieldList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == Unknown {
			*f = nil
		} else {
			*f = FieldList{s}
		}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*f = FieldList(list)
	return nil
}

// Record holds the happy hour attributes derived for one venue
type Record struct {
	Days       FieldList `json:"days"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	FoodDeals  FieldList `json:"food_deals"`
	DrinkDeals FieldList `json:"drink_deals"`
}

// UnknownRecord returns a record with every field set to the sentinel
func UnknownRecord() Record {
	return Record{
		StartTime: Unknown,
		EndTime:   Unknown,
	}
}

// Result pairs a venue's metadata with its derived record in the final
// output artifact.
type Result struct {
	venue.Venue
	Record
}
