// Package match pairs specification records with financial rows and
// classifies the financial rows left over.
package match

import (
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/parser"
)

// DefaultFloor caps the minimum containment score a match needs.
const DefaultFloor = 10

// Score rates two normalized names: the rune length of the shorter one when
// either contains the other, otherwise 0.
func Score(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	if !strings.Contains(a, b) && !strings.Contains(b, a) {
		return 0
	}
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la < lb {
		return la
	}
	return lb
}

// Floor is the score a specification name must reach: min(maxFloor, its length).
func Floor(name string, maxFloor int) int {
	if n := utf8.RuneCountInString(name); n < maxFloor {
		return n
	}
	return maxFloor
}

// Eligible reports whether a financial row may be matched to a display.
func Eligible(row models.FinancialRow) bool {
	return !row.IsAlternate && !row.IsTotalLike
}

// Best returns the FinancialRow.Index of the highest scoring eligible row
// not yet consumed. The earliest row wins ties.
func Best(name string, rows []models.FinancialRow, consumed map[int]bool, maxFloor int) (int, bool) {
	key := parser.NormalizeName(name)
	if key == "" {
		return 0, false
	}

	best, bestScore := -1, 0
	for _, row := range rows {
		if !Eligible(row) || consumed[row.Index] {
			continue
		}
		if s := Score(key, parser.NormalizeName(row.Name)); s > bestScore {
			best, bestScore = row.Index, s
		}
	}
	if best < 0 || bestScore < Floor(key, maxFloor) {
		return 0, false
	}
	return best, true
}

// Result is the outcome of matching a whole sheet.
type Result struct {
	// Assignments maps a specification index to the FinancialRow.Index it matched.
	Assignments map[int]int
	// Consumed holds every FinancialRow.Index claimed by a specification.
	Consumed map[int]bool
}

// Match assigns financial rows to specifications one-to-one, in specification
// order. Alternate specifications are never matched. rows are not modified;
// callers apply Consumed to produce the Matched flags.
func Match(specs []models.SpecificationRecord, rows []models.FinancialRow, maxFloor int) Result {
	res := Result{
		Assignments: make(map[int]int),
		Consumed:    make(map[int]bool),
	}
	for i, spec := range specs {
		if spec.IsAlternate {
			continue
		}
		if idx, ok := Best(spec.Name, rows, res.Consumed, maxFloor); ok {
			res.Assignments[i] = idx
			res.Consumed[idx] = true
		}
	}
	return res
}

// Unmatched lists the names of non-alternate specifications without an assignment.
func (r Result) Unmatched(specs []models.SpecificationRecord) []string {
	var names []string
	for i, spec := range specs {
		if _, ok := r.Assignments[i]; !ok && !spec.IsAlternate {
			names = append(names, spec.Name)
		}
	}
	return names
}
