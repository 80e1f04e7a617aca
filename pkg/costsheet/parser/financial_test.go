package parser

import (
	"math"
	"testing"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

func marginSheetFixture() *models.Sheet {
	return &models.Sheet{Name: "Margin Analysis", Rows: [][]string{
		{"Project Name: Arena Refresh"},
		{"", "Description", "Cost", "Selling Price", "Margin $", "Margin %"},
		{"", "Main Displays"},
		{"", "Center Hung", "200000", "300000", "100000", "33.3%"},
		{"", "Ribbon Board", "50000", "Included"},
		{"", "Services"},
		{"", "Installation", "$30,000", "$50,000"},
		{"", "Rev 3"},
		{"", "Control System", "", "Included"},
		{"", "Sub Total (Bid Form)", "280000", "350000"},
		{"", "Alternates"},
		{"", "Extended Warranty", "5000", "8000"},
		{"", "Main Displays"},
		{"", "Spare Parts", "1000", "1500"},
		{"", "", "100", "200"},
	}}
}

func TestFindFinancialHeader(t *testing.T) {
	cols, found := FindFinancialHeader(marginSheetFixture().Rows, 40)
	if !found {
		t.Fatal("expected header to be found")
	}
	expected := FinancialColumns{HeaderRow: 1, Label: 1, Cost: 2, Sell: 3, MarginAmount: 4, MarginPct: 5}
	if cols != expected {
		t.Errorf("FindFinancialHeader = %+v, expected %+v", cols, expected)
	}

	cols, found = FindFinancialHeader([][]string{{"Cost", "Sell"}}, 40)
	if !found {
		t.Fatal("expected minimal header to be found")
	}
	if cols.Label != 0 || cols.MarginAmount != 2 || cols.MarginPct != 3 {
		t.Errorf("defaulted columns = %+v", cols)
	}
}

func TestParseFinancialRows(t *testing.T) {
	rows, _, found := ParseFinancialRows(marginSheetFixture(), 40, nil)
	if !found {
		t.Fatal("expected financial header")
	}

	tests := []struct {
		name      string
		cost      float64
		sell      float64
		section   string
		alternate bool
		totalLike bool
	}{
		{"Center Hung", 200000, 300000, "Main Displays", false, false},
		{"Ribbon Board", 50000, 0, "Main Displays", false, false},
		{"Installation", 30000, 50000, "Services", false, false},
		{"Control System", 0, 0, "Services", false, false},
		{"Sub Total (Bid Form)", 280000, 350000, "Services", false, true},
		{"Extended Warranty", 5000, 8000, "Alternates", true, false},
		{"Spare Parts", 1000, 1500, "Main Displays", true, false},
	}

	if len(rows) != len(tests) {
		t.Fatalf("len(rows) = %d, expected %d", len(rows), len(tests))
	}
	for i, tt := range tests {
		r := rows[i]
		if r.Index != i {
			t.Errorf("rows[%d].Index = %d", i, r.Index)
		}
		if r.Name != tt.name || r.Cost != tt.cost || r.Sell != tt.sell {
			t.Errorf("rows[%d] = (%q, %v, %v), expected (%q, %v, %v)", i, r.Name, r.Cost, r.Sell, tt.name, tt.cost, tt.sell)
		}
		if got := r.SectionName(); got != tt.section {
			t.Errorf("%s: section = %q, expected %q", tt.name, got, tt.section)
		}
		if r.IsAlternate != tt.alternate {
			t.Errorf("%s: IsAlternate = %v, expected %v", tt.name, r.IsAlternate, tt.alternate)
		}
		if r.IsTotalLike != tt.totalLike {
			t.Errorf("%s: IsTotalLike = %v, expected %v", tt.name, r.IsTotalLike, tt.totalLike)
		}
	}

	ch := rows[0]
	if ch.Row != 4 {
		t.Errorf("Center Hung row = %d, expected 4", ch.Row)
	}
	if ch.MarginAmount != 100000 || math.Abs(ch.MarginPct-0.333) > 1e-9 {
		t.Errorf("Center Hung margin = (%v, %v), expected (100000, 0.333)", ch.MarginAmount, ch.MarginPct)
	}
	if rows[1].SellRaw != "Included" {
		t.Errorf("SellRaw = %q, expected Included", rows[1].SellRaw)
	}
	install := rows[2]
	if install.MarginAmount != 20000 || math.Abs(install.MarginPct-0.4) > 1e-9 {
		t.Errorf("Installation margin = (%v, %v), expected (20000, 0.4)", install.MarginAmount, install.MarginPct)
	}
}

func TestParseFinancialRows_NoHeader(t *testing.T) {
	sheet := &models.Sheet{Name: "Margin Analysis", Rows: [][]string{
		{"Notes"},
		{"Center Hung", "200000", "300000"},
	}}
	rows, cols, found := ParseFinancialRows(sheet, 40, nil)
	if found || rows != nil {
		t.Errorf("ParseFinancialRows = (%v, found=%v), expected no rows", rows, found)
	}
	if cols.HeaderRow != NoColumn {
		t.Errorf("HeaderRow = %d, expected %d", cols.HeaderRow, NoColumn)
	}
}

func TestSectionState(t *testing.T) {
	s := stateNormal
	for _, label := range []string{"Main Displays", "ALTERNATES", "Services", "Main Displays"} {
		s = s.next(label)
	}
	if s != stateInAlternates {
		t.Errorf("alternates state reverted to %v", s)
	}
	if got := stateNormal.next("Base Bid"); got != stateNormal {
		t.Errorf("next(Base Bid) = %v, expected normal", got)
	}
}

func TestIsTotalLike(t *testing.T) {
	tests := []struct {
		label    string
		expected bool
	}{
		{"Sub Total (Bid Form)", true},
		{"Grand Total", true},
		{"Sales Tax", true},
		{"Performance Bond", true},
		{"Performance Bonds", true},
		{"Sales Taxes", true},
		{"Taxable Sales", true},
		{"Bondo Filler", false},
		{"Installation", false},
		{"Taxi Allowance", false},
	}

	for _, tt := range tests {
		if got := IsTotalLike(tt.label); got != tt.expected {
			t.Errorf("IsTotalLike(%q) = %v, expected %v", tt.label, got, tt.expected)
		}
	}
}
