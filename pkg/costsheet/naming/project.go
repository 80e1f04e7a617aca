package naming

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/parser"
)

// DefaultPlaceholder is the project name of last resort.
const DefaultPlaceholder = "Untitled Project"

// Input is everything the naming strategies may look at.
type Input struct {
	Workbook           *models.Workbook
	SpecificationSheet string
	FinancialSheet     string
	Filename           string

	// ScanRows bounds the rows searched on the two known sheets.
	ScanRows int
	// OtherRows and OtherCols bound the top-left region of every other sheet.
	OtherRows int
	OtherCols int
}

// Strategy proposes a project name, or reports that it found none.
type Strategy func(Input) (string, bool)

// DefaultStrategies is the naming cascade in priority order.
var DefaultStrategies = []Strategy{
	FinancialSheetLabels,
	SpecificationSheetLabels,
	OtherSheetLabels,
	TextBoxLabels,
	Filename,
}

// Resolve tries each strategy in order and falls back to placeholder.
func Resolve(in Input, strategies []Strategy, placeholder string) string {
	for _, s := range strategies {
		if name, ok := s(in); ok {
			return name
		}
	}
	if placeholder == "" {
		return DefaultPlaceholder
	}
	return placeholder
}

var labelCell = regexp.MustCompile(`(?i)^\s*(project name|client|venue|project)\s*(?:[:\-]|$)\s*(.*)$`)

// labelRank orders label kinds; lower wins.
var labelRank = map[string]int{
	"project name": 0,
	"client":       1,
	"venue":        2,
	"project":      3,
}

// FindLabel searches a grid region for label-prefixed cells such as
// "Project Name: Arena". The value is the rest of the cell, or the next
// non-empty cell to the right. The highest ranked label wins, then the
// earliest cell.
func FindLabel(rows [][]string, rowStart, rowEnd, colStart, colEnd int) (string, bool) {
	best, bestRank := "", len(labelRank)
	for r := rowStart; r < rowEnd && r < len(rows); r++ {
		row := rows[r]
		for c := colStart; c < colEnd && c < len(row); c++ {
			m := labelCell.FindStringSubmatch(row[c])
			if m == nil {
				continue
			}
			rank := labelRank[strings.ToLower(m[1])]
			if rank >= bestRank {
				continue
			}
			value := strings.TrimSpace(m[2])
			if value == "" {
				value = nextValue(row, c+1)
			}
			if candidate, ok := Validate(value); ok {
				best, bestRank = candidate, rank
			}
		}
	}
	return best, best != ""
}

func nextValue(row []string, from int) string {
	for c := from; c < len(row); c++ {
		if v := strings.TrimSpace(row[c]); v != "" {
			return v
		}
	}
	return ""
}

func sheetLabels(in Input, sheetName string) (string, bool) {
	if in.Workbook == nil || sheetName == "" {
		return "", false
	}
	sheet := in.Workbook.Sheet(sheetName)
	if sheet == nil {
		return "", false
	}
	width := 0
	for _, row := range sheet.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return FindLabel(sheet.Rows, 0, in.ScanRows, 0, width)
}

// FinancialSheetLabels searches the financial sheet's top rows.
func FinancialSheetLabels(in Input) (string, bool) {
	return sheetLabels(in, in.FinancialSheet)
}

// SpecificationSheetLabels searches the specification sheet's top rows.
func SpecificationSheetLabels(in Input) (string, bool) {
	return sheetLabels(in, in.SpecificationSheet)
}

// OtherSheetLabels searches the top-left of each remaining sheet's used range.
func OtherSheetLabels(in Input) (string, bool) {
	if in.Workbook == nil {
		return "", false
	}
	for _, sheet := range in.Workbook.Sheets {
		if sheet.Name == in.SpecificationSheet || sheet.Name == in.FinancialSheet {
			continue
		}
		b, ok := parser.DetectBounds(sheet.Rows)
		if !ok {
			continue
		}
		if name, ok := FindLabel(sheet.Rows, b.MinRow, b.MinRow+in.OtherRows, b.MinCol, b.MinCol+in.OtherCols); ok {
			return name, true
		}
	}
	return "", false
}

// TextBoxLabels searches drawing text boxes in sheet order.
func TextBoxLabels(in Input) (string, bool) {
	if in.Workbook == nil || len(in.Workbook.TextBoxes) == 0 {
		return "", false
	}
	for _, name := range in.Workbook.SheetNames() {
		texts := in.Workbook.TextBoxes[name]
		if len(texts) == 0 {
			continue
		}
		grid := make([][]string, len(texts))
		for i, t := range texts {
			grid[i] = []string{t}
		}
		if found, ok := FindLabel(grid, 0, len(grid), 0, 1); ok {
			return found, true
		}
	}
	return "", false
}

var (
	fileCopyOf    = regexp.MustCompile(`(?i)^(copy of\s+)+`)
	fileDuplicate = regexp.MustCompile(`\s*\(\d+\)`)
	fileDates     = regexp.MustCompile(`\b(\d{4}[-_.]\d{1,2}[-_.]\d{1,2}|\d{1,2}[-_.]\d{1,2}[-_.]\d{2,4}|\d{8})\b`)
	fileDashes    = regexp.MustCompile(`-+`)
	fileTokens    = regexp.MustCompile(`(?i)\b(led cost sheet|cost sheet|margin analysis|pricing|quote|proposal|bid form|final|draft|rev\s*\d+|v\d+)\b`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// Filename derives a name from the source filename by stripping copy
// prefixes, dates, version tokens and known sheet words.
func Filename(in Input) (string, bool) {
	if in.Filename == "" {
		return "", false
	}
	s := filepath.Base(in.Filename)
	s = strings.TrimSuffix(s, filepath.Ext(s))
	s = fileCopyOf.ReplaceAllString(s, "")
	s = fileDuplicate.ReplaceAllString(s, "")
	// "_" is a word character and would hide date boundaries.
	s = strings.ReplaceAll(s, "_", " ")
	s = fileDates.ReplaceAllString(s, " ")
	s = fileDashes.ReplaceAllString(s, " ")
	s = fileTokens.ReplaceAllString(s, " ")
	s = strings.Trim(whitespace.ReplaceAllString(s, " "), " .,")
	return Validate(s)
}

var genericWords = map[string]bool{
	"n/a": true, "na": true, "tbd": true, "none": true, "name": true,
	"project": true, "client": true, "venue": true, "date": true,
	"notes": true, "yes": true, "no": true, "sheet": true, "untitled": true,
}

var (
	pureNumber       = regexp.MustCompile(`^[\d\s.,$%/#\-]+$`)
	financialKeyword = regexp.MustCompile(`\b(cost|costs|sell|selling|price|pricing|margin|total|subtotal|tax|bond|amount)\b`)
)

// Validate cleans a candidate and rejects values that cannot be a project
// name: outside 3-80 characters, numbers, generic words, financial labels.
func Validate(candidate string) (string, bool) {
	s := parser.SanitizeName(candidate)
	n := utf8.RuneCountInString(s)
	if n < 3 || n > 80 {
		return "", false
	}
	if pureNumber.MatchString(s) {
		return "", false
	}
	norm := parser.NormalizeName(s)
	if genericWords[norm] || financialKeyword.MatchString(norm) {
		return "", false
	}
	return s, true
}
