package parser

import (
	"reflect"
	"testing"
)

func TestSheetTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"LED Cost Sheet", []string{"led", "cost", "sheet"}},
		{"Copy of LED Cost Sheet", []string{"led", "cost", "sheet"}},
		{"LEDCostSheet", []string{"led", "cost", "sheet"}},
		{"Cost_Sheet-LED (2)", []string{"cost", "sheet", "led", "2"}},
	}

	for _, tt := range tests {
		if got := SheetTokens(tt.input); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("SheetTokens(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestLocateSpecificationSheet(t *testing.T) {
	tests := []struct {
		names    []string
		expected string
		found    bool
	}{
		{[]string{"Summary", "Copy of LED Cost Sheet", "Margin Analysis"}, "Copy of LED Cost Sheet", true},
		{[]string{"Cost Sheet", "LED Cost Sheet"}, "LED Cost Sheet", true},
		{[]string{"Display Pricing", "Notes"}, "Display Pricing", true},
		{[]string{"LEDCostSheet"}, "LEDCostSheet", true},
		{[]string{"Margin Cost Sheet"}, "", false},
		{[]string{"Summary", "Notes"}, "", false},
		{nil, "", false},
	}

	for _, tt := range tests {
		got, found := LocateSpecificationSheet(tt.names)
		if got != tt.expected || found != tt.found {
			t.Errorf("LocateSpecificationSheet(%v) = (%q, %v), expected (%q, %v)",
				tt.names, got, found, tt.expected, tt.found)
		}
	}
}

func TestLocateFinancialSheet(t *testing.T) {
	tests := []struct {
		names    []string
		exclude  string
		expected string
		found    bool
	}{
		{[]string{"LED Cost Sheet", "Margins", "Margin Analysis"}, "LED Cost Sheet", "Margin Analysis", true},
		{[]string{"LED Cost Sheet", "Margin Summary"}, "LED Cost Sheet", "Margin Summary", true},
		{[]string{"LED Cost Sheet", "Copy of Margin-Analysis"}, "LED Cost Sheet", "Copy of Margin-Analysis", true},
		{[]string{"LED Cost Sheet", "Notes"}, "LED Cost Sheet", "", false},
	}

	for _, tt := range tests {
		got, found := LocateFinancialSheet(tt.names, tt.exclude)
		if got != tt.expected || found != tt.found {
			t.Errorf("LocateFinancialSheet(%v) = (%q, %v), expected (%q, %v)",
				tt.names, got, found, tt.expected, tt.found)
		}
	}
}

func TestSuggestSpecificationSheet(t *testing.T) {
	if got := SuggestSpecificationSheet(nil); got != "" {
		t.Errorf("SuggestSpecificationSheet(nil) = %q, expected empty", got)
	}
	if got := SuggestSpecificationSheet([]string{"Notes", "LED Costs v2"}); got != "LED Costs v2" {
		t.Errorf("SuggestSpecificationSheet = %q, expected %q", got, "LED Costs v2")
	}
}
