package parser

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

var (
	alternatePrefix = regexp.MustCompile(`(?i)^(alt|alternate)\b`)
	hdrName         = regexp.MustCompile(`(?i)\bhdr\b`)
)

// headerRepeatTokens mark a header line repeated inside the data block.
var headerRepeatTokens = map[string]bool{
	"option":       true,
	"display name": true,
}

// SpecRow is one admitted specification row plus the cost columns the
// specification sheet itself carries for it.
type SpecRow struct {
	Record models.SpecificationRecord
	Sheet  models.CostBreakdown
}

// ExtractResult is the Row Extractor output.
type ExtractResult struct {
	Rows              []SpecRow
	AltRowsDetected   int
	BlankRowsSkipped  int
	DuplicatesRemoved int
}

// IsAlternateName reports whether a cleaned display name marks an alternate.
func IsAlternateName(name string) bool {
	return alternatePrefix.MatchString(strings.TrimSpace(name))
}

// ExtractRows reads every data row below the header. A row is admitted only
// when pitch, height and width are all finite and positive. Exact repeats are
// collapsed, keeping the first, and empty names become "Display {n}".
func ExtractRows(sheet *models.Sheet, cols ColumnMap, log *slog.Logger) ExtractResult {
	var res ExtractResult
	var rows []SpecRow

	for r := cols.HeaderRow + 1; r < len(sheet.Rows); r++ {
		row := sheet.Rows[r]
		if IsBlankRow(row) {
			continue
		}
		if isHeaderRepeat(row) {
			continue
		}

		sr, ok := extractRow(sheet.Name, r, row, cols)
		if !ok {
			res.BlankRowsSkipped++
			continue
		}
		if sr.Record.IsAlternate {
			res.AltRowsDetected++
		}
		rows = append(rows, sr)
	}

	rows, res.DuplicatesRemoved = dedupe(rows)
	for i := range rows {
		n := NormalizeName(rows[i].Record.Name)
		if n == "" || n == "unnamed screen" {
			rows[i].Record.Name = fmt.Sprintf("Display %d", i+1)
		}
	}
	res.Rows = rows

	if log != nil {
		log.Info("specification rows extracted",
			"sheet", sheet.Name,
			"rows", len(rows),
			"altRowsDetected", res.AltRowsDetected,
			"blankRowsSkipped", res.BlankRowsSkipped,
			"duplicatesRemoved", res.DuplicatesRemoved)
	}

	return res
}

func isHeaderRepeat(row []string) bool {
	for _, cell := range row {
		if headerRepeatTokens[NormalizeHeader(cell)] {
			return true
		}
	}
	return false
}

func validDim(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func extractRow(sheetName string, r int, row []string, cols ColumnMap) (SpecRow, bool) {
	get := func(f Field) string {
		return strings.TrimSpace(cellAt(row, cols.Col(f)))
	}

	pitch := ParseDim(get(FieldPitch))
	height := ParseDim(get(FieldHeight))
	width := ParseDim(get(FieldWidth))
	if !validDim(pitch) || !validDim(height) || !validDim(width) {
		return SpecRow{}, false
	}

	name := SanitizeName(get(FieldName))
	rec := models.SpecificationRecord{
		Name:        name,
		Source:      models.RowRef{Sheet: sheetName, Row: r + 1},
		Pitch:       pitch,
		Height:      height,
		Width:       width,
		Brightness:  ParseBrightness(get(FieldBrightness)),
		Quantity:    ParseInt(get(FieldQuantity)),
		IsAlternate: IsAlternateName(name),
		IsHDR:       isTruthy(get(FieldHDR)) || hdrName.MatchString(name),
	}
	if rec.Quantity < 1 {
		rec.Quantity = 1
	}
	rec.ResolutionX, rec.ResolutionY = resolution(get(FieldResolutionX), get(FieldResolutionY), get(FieldResolution))

	return SpecRow{Record: rec, Sheet: sheetBreakdown(get)}, true
}

// resolution prefers the split pixel columns and falls back to a combined
// "1920 x 1080" cell, which may also sit in either split column.
func resolution(xCell, yCell, combined string) (int, int) {
	x, y := ParseInt(xCell), ParseInt(yCell)
	if x > 0 && y > 0 {
		return x, y
	}
	for _, c := range []string{combined, xCell, yCell} {
		if cx, cy, ok := ParseResolution(c); ok {
			return cx, cy
		}
	}
	return x, y
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "x", "1", "hdr":
		return true
	}
	return false
}

// sheetBreakdown reads the specification sheet's own cost columns. Totals
// missing from the sheet are derived from their parts.
func sheetBreakdown(get func(Field) string) models.CostBreakdown {
	money := func(f Field) (float64, bool) { return ParseMoney(get(f)) }
	val := func(f Field) float64 {
		v, _ := money(f)
		return v
	}

	b := models.CostBreakdown{
		Hardware:  val(FieldHardware),
		Structure: val(FieldStructure),
		Install:   val(FieldInstall),
		Labor:     val(FieldLabor),
		Power:     val(FieldPower),
		Shipping:  val(FieldShipping),
		PM:        val(FieldPM),
		Sell:      val(FieldSell),
		Bond:      val(FieldBond),
		Tax:       val(FieldTax),
	}

	if v, ok := money(FieldTotalCost); ok {
		b.TotalCost = v
	} else {
		b.TotalCost = b.Hardware + b.Structure + b.Install + b.Labor + b.Power + b.Shipping + b.PM
	}
	if v, ok := money(FieldMargin); ok {
		b.Margin = v
	} else {
		b.Margin = b.Sell - b.TotalCost
	}
	if pct := get(FieldMarginPct); pct != "" {
		b.MarginPct = ParsePercent(pct)
	} else if b.Sell != 0 {
		b.MarginPct = b.Margin / b.Sell
	}
	if v, ok := money(FieldFinalTotal); ok {
		b.FinalTotal = v
	} else {
		b.FinalTotal = b.Sell + b.Bond + b.Tax
	}

	return b
}

// signature identifies exact repeats: normalized name, dimensions, pitch
// and resolution.
func signature(rec models.SpecificationRecord) string {
	return strings.Join([]string{
		NormalizeName(rec.Name),
		strconv.FormatFloat(rec.Height, 'g', -1, 64),
		strconv.FormatFloat(rec.Width, 'g', -1, 64),
		strconv.FormatFloat(rec.Pitch, 'g', -1, 64),
		strconv.Itoa(rec.ResolutionX),
		strconv.Itoa(rec.ResolutionY),
	}, "|")
}

func dedupe(rows []SpecRow) ([]SpecRow, int) {
	seen := make(map[string]bool, len(rows))
	out := make([]SpecRow, 0, len(rows))
	removed := 0
	for _, r := range rows {
		sig := signature(r.Record)
		if seen[sig] {
			removed++
			continue
		}
		seen[sig] = true
		out = append(out, r)
	}
	return out, removed
}
