package match

import (
	"reflect"
	"testing"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

func TestScore(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"center hung", "center hung", 11},
		{"center hung", "center hung display", 11},
		{"center hung display", "center hung", 11},
		{"tv", "lobby tv wall mount package", 2},
		{"abc", "abacus board refurbishment allowance", 0},
		{"écran", "écran principal", 5},
		{"", "anything", 0},
		{"ribbon", "fascia", 0},
	}

	for _, tt := range tests {
		if got := Score(tt.a, tt.b); got != tt.expected {
			t.Errorf("Score(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestFloor(t *testing.T) {
	tests := []struct {
		name     string
		expected int
	}{
		{"tv", 2},
		{"abc", 3},
		{"center hung", 10},
	}
	for _, tt := range tests {
		if got := Floor(tt.name, DefaultFloor); got != tt.expected {
			t.Errorf("Floor(%q) = %d, expected %d", tt.name, got, tt.expected)
		}
	}
}

func financialRows(names ...string) []models.FinancialRow {
	rows := make([]models.FinancialRow, len(names))
	for i, n := range names {
		rows[i] = models.FinancialRow{Index: i, Name: n, Cost: 100, Sell: 200}
	}
	return rows
}

func TestBest_ShortNameBoundary(t *testing.T) {
	// A two-letter name fully contained in a long label reaches its floor of 2.
	rows := financialRows("Lobby TV Wall Mount Package")
	if idx, ok := Best("TV", rows, nil, DefaultFloor); !ok || idx != 0 {
		t.Errorf("Best(TV) = (%d, %v), expected (0, true)", idx, ok)
	}

	// Sharing only a two-letter fragment is not containment.
	rows = financialRows("Abacus Board Refurbishment Allowance")
	if _, ok := Best("ABC", rows, nil, DefaultFloor); ok {
		t.Error("Best(ABC) matched on a partial fragment")
	}
}

func TestBest_FloorRejectsWeakMatch(t *testing.T) {
	rows := financialRows("Lobby")
	if _, ok := Best("Main Lobby Display", rows, nil, DefaultFloor); ok {
		t.Error("score 5 should not reach the floor of 10")
	}
}

func TestBest_SkipsIneligibleRows(t *testing.T) {
	rows := financialRows("Center Hung Total", "Center Hung Alt", "Center Hung")
	rows[0].IsTotalLike = true
	rows[1].IsAlternate = true

	if idx, ok := Best("Center Hung", rows, nil, DefaultFloor); !ok || idx != 2 {
		t.Errorf("Best = (%d, %v), expected (2, true)", idx, ok)
	}
	if _, ok := Best("Center Hung", rows, map[int]bool{2: true}, DefaultFloor); ok {
		t.Error("consumed row matched again")
	}
	if _, ok := Best("  ", rows, nil, DefaultFloor); ok {
		t.Error("empty name matched")
	}
}

func TestMatch_OneToOne(t *testing.T) {
	specs := []models.SpecificationRecord{
		{Name: "Ribbon", Height: 3, Width: 100},
		{Name: "Ribbon", Height: 3, Width: 80},
		{Name: "Alt Ribbon Upgrade", IsAlternate: true},
		{Name: "Center Hung"},
	}
	rows := financialRows("Center Hung", "Ribbon Board", "Alt Ribbon Upgrade")
	rows[2].IsAlternate = true

	res := Match(specs, rows, DefaultFloor)

	expected := map[int]int{0: 1, 3: 0}
	if !reflect.DeepEqual(res.Assignments, expected) {
		t.Errorf("Assignments = %v, expected %v", res.Assignments, expected)
	}
	if !res.Consumed[0] || !res.Consumed[1] || res.Consumed[2] {
		t.Errorf("Consumed = %v", res.Consumed)
	}
	if got := res.Unmatched(specs); !reflect.DeepEqual(got, []string{"Ribbon"}) {
		t.Errorf("Unmatched = %v, expected [Ribbon]", got)
	}
	if rows[0].Matched || rows[1].Matched {
		t.Error("Match mutated the input rows")
	}
}
