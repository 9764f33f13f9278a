package extract

import (
	"reflect"
	"testing"
)

func TestExtractFoodDeals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "dollar amount plus category word",
			input:    "Happy hour features $5 wings and $6 street tacos",
			expected: []string{"$5 wings", "$6 street tacos"},
		},
		{
			name:     "half off phrasing",
			input:    "half off appetizers until 6",
			expected: []string{"half off appetizers"},
		},
		{
			name:     "buy one get one",
			input:    "buy one get one free sliders all night",
			expected: []string{"buy one get one free sliders"},
		},
		{
			name:     "repeat phrasing collapses",
			input:    "$5 wings today, $5 wings tomorrow",
			expected: []string{"$5 wings"},
		},
		{
			name:     "no food evidence",
			input:    "$4 drafts and live music",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractFoodDeals(tt.input)
			if !reflect.DeepEqual([]string(result), tt.expected) {
				t.Errorf("ExtractFoodDeals(%q) = %v, want %v", tt.input, []string(result), tt.expected)
			}
		})
	}
}

func TestExtractDrinkDeals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "dollar amount plus category word",
			input:    "enjoy $4 drafts and $7 margaritas",
			expected: []string{"$4 drafts", "$7 margaritas"},
		},
		{
			name:     "two for one",
			input:    "2 for 1 cocktails every Tuesday",
			expected: []string{"2 for 1 cocktails"},
		},
		{
			name:     "half priced",
			input:    "half-priced wine on Wednesdays",
			expected: []string{"half-priced wine"},
		},
		{
			name:     "dollar amount with cents",
			input:    "$4.50 well drinks after work",
			expected: []string{"$4.50 well drinks"},
		},
		{
			name:     "no drink evidence",
			input:    "half off appetizers and $5 wings",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractDrinkDeals(tt.input)
			if !reflect.DeepEqual([]string(result), tt.expected) {
				t.Errorf("ExtractDrinkDeals(%q) = %v, want %v", tt.input, []string(result), tt.expected)
			}
		})
	}
}

func TestDealsOrderedByPosition(t *testing.T) {
	input := "half off nachos, then $5 sliders, then bogo wings"
	result := ExtractFoodDeals(input)

	expected := []string{"half off nachos", "$5 sliders", "bogo wings"}
	if !reflect.DeepEqual([]string(result), expected) {
		t.Errorf("ExtractFoodDeals(%q) = %v, want %v", input, []string(result), expected)
	}
}
