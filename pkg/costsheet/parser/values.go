// Package parser provides cost sheet parsing: workbook loading, lenient
// cell value parsing and the heuristic sheet/header/row readers.
package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// first standalone number; "1.2.3" has none
	leadingNumber   = regexp.MustCompile(`(?:^|[^\d.])(-?(?:\d+(?:\.\d+)?|\.\d+))(?:[^\d.]|$)`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	resolutionRegex = regexp.MustCompile(`(\d+)\s*[xX×*]\s*(\d+)`)
)

// ParseDim parses a physical dimension stored as a number or as text with a
// unit suffix ("2.5mm", "10 ft"). Ranges and alternatives ("2.5-3mm",
// "1.5 / 2.5mm") read as their first value. Anything else is 0.
func ParseDim(s string) float64 {
	v, ok := firstNumber(s)
	if !ok {
		return 0
	}
	return v
}

func firstNumber(s string) (float64, bool) {
	m := leadingNumber.FindStringSubmatch(strings.ReplaceAll(s, ",", ""))
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseMoney parses a currency cell. ok is false when the cell is empty or
// carries no number at all ("included", "-", "TBD"), so callers can tell a
// real zero from a missing value. Accounting negatives "(1,200)" are honored.
func ParseMoney(s string) (v float64, ok bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, false
	}
	negative := false
	if strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")") {
		negative = true
		t = strings.TrimSuffix(strings.TrimPrefix(t, "("), ")")
	}
	t = strings.NewReplacer("$", "", ",", "", " ", "", "USD", "", "usd", "").Replace(t)
	if t == "" || t == "-" {
		return 0, false
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}

// ParsePercent parses "25%", "25" or "0.25" into a fraction (0.25).
func ParsePercent(s string) float64 {
	t := strings.TrimSpace(s)
	hasSign := strings.HasSuffix(t, "%")
	v, ok := ParseMoney(strings.TrimSuffix(t, "%"))
	if !ok {
		return 0
	}
	if hasSign || math.Abs(v) > 1 {
		return v / 100
	}
	return v
}

// ParseInt parses a whole-number cell, rounding decimals. A unit suffix
// ("2 ea", "3 units") is ignored.
func ParseInt(s string) int {
	v, ok := ParseMoney(s)
	if !ok {
		if v, ok = firstNumber(s); !ok {
			return 0
		}
	}
	return int(math.Round(v))
}

// ParseResolution reads a "1920 x 1080" style cell into (wide, high).
func ParseResolution(s string) (x, y int, ok bool) {
	m := resolutionRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	x, _ = strconv.Atoi(m[1])
	y, _ = strconv.Atoi(m[2])
	return x, y, x > 0 && y > 0
}

// ParseBrightness returns nil for the sentinel "no value" cells: empty, 0 and N/A.
func ParseBrightness(s string) *int {
	t := strings.TrimSpace(s)
	if t == "" || strings.EqualFold(t, "n/a") || strings.EqualFold(t, "na") {
		return nil
	}
	v := int(math.Round(ParseDim(t)))
	if v <= 0 {
		return nil
	}
	return &v
}

// NormalizeHeader lowercases a header cell and collapses whitespace.
func NormalizeHeader(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(strings.ToLower(s), " "))
}

// NormalizeName folds a display or line-item name for comparison: accents
// stripped, lowercased, whitespace collapsed.
func NormalizeName(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return NormalizeHeader(folded)
}

// SanitizeName cleans a display name read from a cell: control characters
// removed, whitespace collapsed, stray bullets and trailing colons dropped.
func SanitizeName(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	s = strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
	s = strings.TrimLeft(s, "•-*· ")
	s = strings.TrimRight(s, ": ")
	return s
}

// IsBlankRow reports whether every cell in row is empty after trimming.
func IsBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// cellAt returns the raw cell at idx or "" when the row is too short.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
