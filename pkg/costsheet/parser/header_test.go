package parser

import (
	"regexp"
	"testing"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

func fullHeader() []string {
	return []string{
		"Display Name", "Pixel Pitch (mm)", "Height (ft)", "Width (ft)", "Res W", "Res H",
		"Qty", "Brightness (nits)", "LED Hardware", "Structure", "Install", "Labor", "Power",
		"Shipping", "PM", "Total Cost", "Margin $", "Margin %", "Sell Price", "Bond", "Tax", "Final Total",
	}
}

func TestFindHeaderRow(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected int
		found    bool
	}{
		{
			name:     "option and pitch",
			rows:     [][]string{{"Acme Proposal"}, {}, {"OPTION", "PITCH", "H", "W"}},
			expected: 2,
			found:    true,
		},
		{
			name:     "display name",
			rows:     [][]string{{"DISPLAY NAME", "Pitch"}},
			expected: 0,
			found:    true,
		},
		{
			name:     "optional title beside pitch",
			rows:     [][]string{{"Optional Upgrades", "Pitch"}, {"x"}},
			expected: DefaultHeaderRow,
			found:    false,
		},
		{
			name:     "option without pitch",
			rows:     [][]string{{"Option", "Size"}, {"x"}},
			expected: DefaultHeaderRow,
			found:    false,
		},
	}

	for _, tt := range tests {
		got, found := FindHeaderRow(tt.rows, 20)
		if got != tt.expected || found != tt.found {
			t.Errorf("%s: FindHeaderRow = (%d, %v), expected (%d, %v)", tt.name, got, found, tt.expected, tt.found)
		}
	}
}

func TestFindHeaderRow_ScanWindow(t *testing.T) {
	rows := make([][]string, 25)
	rows[22] = []string{"Display Name"}
	if got, found := FindHeaderRow(rows, 20); found || got != DefaultHeaderRow {
		t.Errorf("header beyond scan window should not be found, got (%d, %v)", got, found)
	}
}

func TestResolveByName(t *testing.T) {
	synonyms := []*regexp.Regexp{regexp.MustCompile(`^display name`), regexp.MustCompile(`^name$`)}

	idx, ok := ResolveByName([]string{"Name", "Display Name"}, synonyms, nil, nil)
	if !ok || idx != 1 {
		t.Errorf("synonym priority: got (%d, %v), expected (1, true)", idx, ok)
	}

	idx, ok = ResolveByName([]string{"Name", "Display Name"}, synonyms, nil, map[int]bool{1: true})
	if !ok || idx != 0 {
		t.Errorf("claimed column: got (%d, %v), expected (0, true)", idx, ok)
	}

	height := []*regexp.Regexp{regexp.MustCompile(`height`)}
	idx, ok = ResolveByName([]string{"Height (px)", "HEIGHT  (ft)"}, height, pixelHeader, nil)
	if !ok || idx != 1 {
		t.Errorf("exclude: got (%d, %v), expected (1, true)", idx, ok)
	}

	if _, ok := ResolveByName([]string{"Foo"}, synonyms, nil, nil); ok {
		t.Errorf("expected no match")
	}
}

func TestResolveWithFallback(t *testing.T) {
	tests := []struct {
		detected int
		found    bool
		fallback int
		claimed  map[int]bool
		expected int
	}{
		{5, true, 2, nil, 5},
		{NoColumn, false, 2, nil, 2},
		{NoColumn, false, 2, map[int]bool{2: true}, NoColumn},
		{NoColumn, false, NoColumn, nil, NoColumn},
	}

	for _, tt := range tests {
		if got := ResolveWithFallback(tt.detected, tt.found, tt.fallback, tt.claimed); got != tt.expected {
			t.Errorf("ResolveWithFallback(%d, %v, %d) = %d, expected %d", tt.detected, tt.found, tt.fallback, got, tt.expected)
		}
	}
}

func TestResolveColumns_ByName(t *testing.T) {
	sheet := &models.Sheet{Name: "LED Cost Sheet", Rows: [][]string{
		{"Riverside Arena"},
		fullHeader(),
		{"Center Hung", "4", "20", "30"},
	}}

	m := ResolveColumns(sheet, 20)
	if m.HeaderRow != 1 || !m.HeaderFound {
		t.Fatalf("header row = (%d, %v), expected (1, true)", m.HeaderRow, m.HeaderFound)
	}

	expected := map[Field]int{
		FieldName: 0, FieldPitch: 1, FieldHeight: 2, FieldWidth: 3,
		FieldResolutionX: 4, FieldResolutionY: 5, FieldQuantity: 6, FieldBrightness: 7,
		FieldHardware: 8, FieldStructure: 9, FieldInstall: 10, FieldLabor: 11, FieldPower: 12,
		FieldShipping: 13, FieldPM: 14, FieldTotalCost: 15, FieldMargin: 16, FieldMarginPct: 17,
		FieldSell: 18, FieldBond: 19, FieldTax: 20, FieldFinalTotal: 21,
		FieldResolution: NoColumn, FieldHDR: NoColumn,
	}
	for f, want := range expected {
		if got := m.Col(f); got != want {
			t.Errorf("Col(%s) = %d, expected %d", f, got, want)
		}
	}
}

func TestResolveColumns_Fallback(t *testing.T) {
	sheet := &models.Sheet{Name: "LED Cost Sheet", Rows: [][]string{
		{"Proposal"},
		{"foo", "bar"},
		{"Wall", "4", "10", "20"},
	}}

	m := ResolveColumns(sheet, 20)
	if m.HeaderFound {
		t.Errorf("expected default header row")
	}
	if m.HeaderRow != DefaultHeaderRow {
		t.Errorf("HeaderRow = %d, expected %d", m.HeaderRow, DefaultHeaderRow)
	}
	for f, want := range map[Field]int{FieldName: 0, FieldPitch: 1, FieldHeight: 2, FieldWidth: 3, FieldSell: 17} {
		if got := m.Col(f); got != want {
			t.Errorf("Col(%s) = %d, expected %d", f, got, want)
		}
		if m.Detected[f] {
			t.Errorf("%s should come from the fallback tier", f)
		}
	}
}

func TestResolveColumns_MergedCellRecovery(t *testing.T) {
	header := []string{"", "Display Name", "Pitch", "Height", "Width"}

	merged := &models.Sheet{Rows: [][]string{header, {"Main Board", "", "4", "10", "20"}}}
	if got := ResolveColumns(merged, 20).Col(FieldName); got != 0 {
		t.Errorf("merged layout: name column = %d, expected 0", got)
	}

	plain := &models.Sheet{Rows: [][]string{header, {"", "Main Board", "4", "10", "20"}}}
	if got := ResolveColumns(plain, 20).Col(FieldName); got != 1 {
		t.Errorf("plain layout: name column = %d, expected 1", got)
	}
}

func TestResolveColumns_RowNumberColumn(t *testing.T) {
	sheet := &models.Sheet{Rows: [][]string{
		{"#", "Display Name", "Pitch", "Height", "Width"},
		{"7", "Center Hung", "4", "20", "30"},
	}}

	m := ResolveColumns(sheet, 20)
	if m.Detected[FieldQuantity] {
		t.Errorf("quantity should not be detected from a row-number column")
	}
	if got := m.Col(FieldQuantity); got == 0 {
		t.Errorf("Col(quantity) = 0, expected the row-number column to stay unclaimed")
	}
	if got := m.Col(FieldName); got != 1 {
		t.Errorf("Col(name) = %d, expected 1", got)
	}
}
