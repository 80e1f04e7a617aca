package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

// Field is a logical column of the specification sheet.
type Field string

const (
	FieldName        Field = "name"
	FieldPitch       Field = "pitch"
	FieldResolutionX Field = "resolution_x"
	FieldResolutionY Field = "resolution_y"
	FieldResolution  Field = "resolution"
	FieldHeight      Field = "height"
	FieldWidth       Field = "width"
	FieldQuantity    Field = "quantity"
	FieldBrightness  Field = "brightness"
	FieldHDR         Field = "hdr"
	FieldHardware    Field = "hardware"
	FieldStructure   Field = "structure"
	FieldInstall     Field = "install"
	FieldLabor       Field = "labor"
	FieldPower       Field = "power"
	FieldShipping    Field = "shipping"
	FieldPM          Field = "pm"
	FieldTotalCost   Field = "total_cost"
	FieldMarginPct   Field = "margin_pct"
	FieldMargin      Field = "margin"
	FieldSell        Field = "sell"
	FieldBond        Field = "bond"
	FieldTax         Field = "tax"
	FieldFinalTotal  Field = "final_total"
)

// NoColumn marks a field that has neither a header match nor a fallback.
const NoColumn = -1

// FieldSpec describes how one field is found in the header row.
type FieldSpec struct {
	Field Field
	// Synonyms are tried in order against normalized header text.
	Synonyms []*regexp.Regexp
	// Exclude rejects header cells that match a synonym but belong elsewhere.
	Exclude *regexp.Regexp
	// Fallback is the fixed column used when no header matches.
	Fallback int
}

func patterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

var (
	pixelHeader  = regexp.MustCompile(`\bpx\b|pixel|\bres\b|resolution`)
	optionHeader = regexp.MustCompile(`\boptions?\b`)
)

// SpecificationFields lists the specification sheet fields in resolution
// order. Earlier fields claim columns first, so more specific headers
// ("Resolution H") come before general ones ("Height").
//
// Fallback layout: Display Name | Pitch | Height | Width | Res W | Res H |
// Qty | Brightness | Hardware | Structure | Install | Labor | Power |
// Shipping | PM | Total Cost | Margin | Sell | Bond | Tax | Final Total.
var SpecificationFields = []FieldSpec{
	{Field: FieldName, Synonyms: patterns(`^display name`, `^option\b`, `^screen name`, `^(display|screen|location|description|name)$`), Fallback: 0},
	{Field: FieldPitch, Synonyms: patterns(`pitch`), Fallback: 1},
	{Field: FieldResolutionX, Synonyms: patterns(`(res(olution)?|pixels?|px)\s*(w|wide|width|x|horiz\w*)\b`, `^(width|w)\s*\(?(px|pixels?)\)?$`), Fallback: 4},
	{Field: FieldResolutionY, Synonyms: patterns(`(res(olution)?|pixels?|px)\s*(h|high|height|y|vert\w*)\b`, `^(height|h)\s*\(?(px|pixels?)\)?$`), Fallback: 5},
	{Field: FieldResolution, Synonyms: patterns(`^(pixel )?resolution$`, `^res$`), Fallback: NoColumn},
	{Field: FieldHeight, Synonyms: patterns(`^(height|h)\b`, `\bheight\b`), Exclude: pixelHeader, Fallback: 2},
	{Field: FieldWidth, Synonyms: patterns(`^(width|w)\b`, `\bwidth\b`), Exclude: pixelHeader, Fallback: 3},
	{Field: FieldQuantity, Synonyms: patterns(`^(qty|quantity|count|units)\b`, `\bqty\b|quantity`), Fallback: 6},
	{Field: FieldBrightness, Synonyms: patterns(`brightness|\bnits\b`), Fallback: 7},
	{Field: FieldHDR, Synonyms: patterns(`\bhdr\b`), Fallback: NoColumn},
	{Field: FieldHardware, Synonyms: patterns(`^(led )?(hardware|equipment|display cost|led cost)`, `hardware`), Fallback: 8},
	{Field: FieldStructure, Synonyms: patterns(`structur|steel`), Fallback: 9},
	{Field: FieldInstall, Synonyms: patterns(`install`), Fallback: 10},
	{Field: FieldLabor, Synonyms: patterns(`labou?r`), Fallback: 11},
	{Field: FieldPower, Synonyms: patterns(`power|electrical`), Fallback: 12},
	{Field: FieldShipping, Synonyms: patterns(`shipping|freight`), Fallback: 13},
	{Field: FieldPM, Synonyms: patterns(`^pm\b`, `project manag`), Fallback: 14},
	{Field: FieldTotalCost, Synonyms: patterns(`^total cost`, `^cost( total)?$`, `\btotal cost\b`), Fallback: 15},
	{Field: FieldMarginPct, Synonyms: patterns(`margin\s*%`, `margin \(%\)`, `margin (pct|percent)`, `^gm\s*%`), Fallback: NoColumn},
	{Field: FieldMargin, Synonyms: patterns(`^margin`, `^gm\b`, `gross margin`), Fallback: 16},
	{Field: FieldSell, Synonyms: patterns(`^sell(ing)? price`, `^sell(ing)?$`, `^price$`, `client price`, `^sell total`), Fallback: 17},
	{Field: FieldBond, Synonyms: patterns(`bond`), Fallback: 18},
	{Field: FieldTax, Synonyms: patterns(`\btax`), Fallback: 19},
	{Field: FieldFinalTotal, Synonyms: patterns(`^final( client)? total`, `^grand total`, `^total( price| sell)?$`), Fallback: 20},
}

// ColumnMap is the resolved field to column index mapping.
type ColumnMap struct {
	// HeaderRow is the 0-based header row index.
	HeaderRow int
	// HeaderFound is false when the default header row was assumed.
	HeaderFound bool
	Columns     map[Field]int
	// Detected reports which fields matched a header rather than a fallback.
	Detected map[Field]bool
}

// Col returns the column index for f or NoColumn.
func (m ColumnMap) Col(f Field) int {
	if idx, ok := m.Columns[f]; ok {
		return idx
	}
	return NoColumn
}

// DefaultHeaderRow is assumed when no header signature is found.
const DefaultHeaderRow = 1

// FindHeaderRow scans the first scan rows for a header signature: an
// "OPTION" cell with a "PITCH" cell, or a "DISPLAY NAME" cell.
func FindHeaderRow(rows [][]string, scan int) (int, bool) {
	for i := 0; i < len(rows) && i < scan; i++ {
		hasOption, hasPitch := false, false
		for _, cell := range rows[i] {
			h := NormalizeHeader(cell)
			if strings.Contains(h, "display name") {
				return i, true
			}
			if optionHeader.MatchString(h) {
				hasOption = true
			}
			if strings.Contains(h, "pitch") {
				hasPitch = true
			}
		}
		if hasOption && hasPitch {
			return i, true
		}
	}
	return DefaultHeaderRow, false
}

// ResolveByName returns the first column whose normalized header matches
// one of synonyms, trying synonyms in priority order. Claimed columns and
// headers matching exclude are skipped.
func ResolveByName(headers []string, synonyms []*regexp.Regexp, exclude *regexp.Regexp, claimed map[int]bool) (int, bool) {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}
	for _, re := range synonyms {
		for idx, h := range normalized {
			if h == "" || claimed[idx] {
				continue
			}
			if exclude != nil && exclude.MatchString(h) {
				continue
			}
			if re.MatchString(h) {
				return idx, true
			}
		}
	}
	return NoColumn, false
}

// ResolveWithFallback keeps a detected index, otherwise uses fallback
// unless another field already owns that column.
func ResolveWithFallback(detected int, found bool, fallback int, claimed map[int]bool) int {
	if found {
		return detected
	}
	if fallback == NoColumn || claimed[fallback] {
		return NoColumn
	}
	return fallback
}

// ResolveColumns finds the header row within the first scan rows and maps
// every specification field to a column. It never fails; a poor mapping
// shows up downstream as zero admitted rows.
func ResolveColumns(sheet *models.Sheet, scan int) ColumnMap {
	headerRow, found := FindHeaderRow(sheet.Rows, scan)
	var headers []string
	if headerRow < len(sheet.Rows) {
		headers = sheet.Rows[headerRow]
	}

	m := ColumnMap{
		HeaderRow:   headerRow,
		HeaderFound: found,
		Columns:     make(map[Field]int, len(SpecificationFields)),
		Detected:    make(map[Field]bool, len(SpecificationFields)),
	}

	// Header matches claim columns before any fallback is considered.
	claimed := make(map[int]bool)
	for _, spec := range SpecificationFields {
		if idx, ok := ResolveByName(headers, spec.Synonyms, spec.Exclude, claimed); ok {
			m.Columns[spec.Field] = idx
			m.Detected[spec.Field] = true
			claimed[idx] = true
		}
	}
	for _, spec := range SpecificationFields {
		if m.Detected[spec.Field] {
			continue
		}
		if idx := ResolveWithFallback(NoColumn, false, spec.Fallback, claimed); idx != NoColumn {
			m.Columns[spec.Field] = idx
			claimed[idx] = true
		}
	}

	// Merged-cell artifact: the header label sits right of the real name
	// column, whose own header cell is blank. A labelled first column ("#",
	// "Item") is something else.
	if nameCol := m.Col(FieldName); nameCol > 0 && m.Detected[FieldName] && !detectedAt(m, 0) && strings.TrimSpace(cellAt(headers, 0)) == "" {
		if strings.TrimSpace(sheet.Cell(headerRow+1, 0)) != "" {
			m.Columns[FieldName] = 0
		}
	}

	return m
}

// detectedAt reports whether a header-matched field owns column idx.
func detectedAt(m ColumnMap, idx int) bool {
	for f, col := range m.Columns {
		if col == idx && m.Detected[f] {
			return true
		}
	}
	return false
}
