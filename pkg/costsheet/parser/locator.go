package parser

import (
	"regexp"
	"strings"

	"github.com/schollz/closestmatch"
)

// CanonicalSpecificationSheet is the layout family's usual specification sheet name.
const CanonicalSpecificationSheet = "LED Cost Sheet"

var (
	copyOfPrefix    = regexp.MustCompile(`^(copy of\s+)+`)
	camelBoundary   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	nonAlnum        = regexp.MustCompile(`[^a-z0-9]+`)
)

// specification sheet token groups; a sheet qualifies with two or more groups.
var (
	ledTokens   = []string{"led", "display", "displays", "screen", "screens", "video"}
	costTokens  = []string{"cost", "costs", "costing", "pricing", "price"}
	sheetTokens = []string{"sheet", "spec", "specs", "specification", "specifications"}
)

// SheetTokens splits a sheet name into lowercase word tokens, undoing
// "Copy of" prefixes, punctuation variants and CamelCase joins.
func SheetTokens(name string) []string {
	s := acronymBoundary.ReplaceAllString(name, "$1 $2")
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, " ")
	s = copyOfPrefix.ReplaceAllString(strings.TrimSpace(s), "")
	return strings.Fields(s)
}

func hasAnyToken(tokens []string, want []string) bool {
	for _, t := range tokens {
		for _, w := range want {
			if t == w {
				return true
			}
		}
	}
	return false
}

// specificationScore rates how strongly a sheet name reads as the
// specification sheet; 0 means it does not qualify.
func specificationScore(name string) int {
	tokens := SheetTokens(name)
	if hasAnyToken(tokens, []string{"margin"}) {
		return 0
	}

	groups := 0
	led := hasAnyToken(tokens, ledTokens)
	if led {
		groups++
	}
	if hasAnyToken(tokens, costTokens) {
		groups++
	}
	if hasAnyToken(tokens, sheetTokens) {
		groups++
	}
	if groups < 2 {
		return 0
	}
	if led {
		groups++
	}
	return groups
}

// LocateSpecificationSheet picks the specification sheet by token scoring.
// Ties go to the earlier sheet in workbook order.
func LocateSpecificationSheet(names []string) (string, bool) {
	best, bestScore := "", 0
	for _, name := range names {
		if score := specificationScore(name); score > bestScore {
			best, bestScore = name, score
		}
	}
	return best, bestScore > 0
}

// LocateFinancialSheet picks the margin analysis sheet: "margin" plus
// "analysis" first, otherwise any sheet mentioning margin. exclude is the
// already chosen specification sheet.
func LocateFinancialSheet(names []string, exclude string) (string, bool) {
	fallback := ""
	for _, name := range names {
		if name == exclude {
			continue
		}
		tokens := SheetTokens(name)
		if !hasAnyToken(tokens, []string{"margin", "margins"}) {
			continue
		}
		if hasAnyToken(tokens, []string{"analysis"}) {
			return name, true
		}
		if fallback == "" {
			fallback = name
		}
	}
	return fallback, fallback != ""
}

// SuggestSpecificationSheet returns the sheet name closest to the canonical
// specification sheet name, for rename hints when locating fails.
func SuggestSpecificationSheet(names []string) string {
	if len(names) == 0 {
		return ""
	}
	lowered := make([]string, len(names))
	byLowered := make(map[string]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
		byLowered[lowered[i]] = n
	}
	cm := closestmatch.New(lowered, []int{2, 3})
	return byLowered[cm.Closest(strings.ToLower(CanonicalSpecificationSheet))]
}
