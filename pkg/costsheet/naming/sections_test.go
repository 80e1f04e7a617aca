package naming

import (
	"testing"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

func section(s string) *string { return &s }

func TestGroupSections(t *testing.T) {
	rows := []models.FinancialRow{
		{Name: "Permit Fees", Sell: 500, SellRaw: "500"},
		{Name: "Center Hung", Sell: 300000, SellRaw: "300000", Section: section("Main Displays"), Matched: true},
		{Name: "Installation", Sell: 50000, SellRaw: "$50,000", Section: section("Services")},
		{Name: "Ribbon Board", Sell: 0, SellRaw: "Included", Section: section("Main Displays")},
		{Name: "Spare Parts", Sell: 0, SellRaw: "0", Section: section("Main Displays")},
		{Name: "Sub Total", Sell: 350500, IsTotalLike: true, Section: section("Services")},
		{Name: "Warranty", Sell: 8000, IsAlternate: true, Section: section("Alternates")},
	}

	sections := GroupSections(rows)

	names := []string{DefaultSection, "Main Displays", "Services"}
	if len(sections) != len(names) {
		t.Fatalf("len(sections) = %d, expected %d: %+v", len(sections), len(names), sections)
	}
	for i, want := range names {
		if sections[i].Name != want {
			t.Errorf("sections[%d].Name = %q, expected %q", i, sections[i].Name, want)
		}
	}

	main := sections[1]
	if len(main.Items) != 3 {
		t.Fatalf("Main Displays has %d items, expected 3", len(main.Items))
	}
	if main.SubTotal != 300000 {
		t.Errorf("SubTotal = %v, expected 300000", main.SubTotal)
	}
	if !main.Items[0].Matched {
		t.Error("Center Hung should carry its matched flag")
	}
	if !main.Items[1].IsIncluded {
		t.Error("Ribbon Board should be included")
	}
	if main.Items[2].IsIncluded {
		t.Error("a zero sell without the word included must not be included")
	}
}

func TestIsIncluded(t *testing.T) {
	tests := []struct {
		raw      string
		expected bool
	}{
		{"Included", true},
		{"INCLUDED IN BASE", true},
		{"0", false},
		{"", false},
		{"$0.00", false},
	}
	for _, tt := range tests {
		if got := IsIncluded(tt.raw); got != tt.expected {
			t.Errorf("IsIncluded(%q) = %v, expected %v", tt.raw, got, tt.expected)
		}
	}
}
