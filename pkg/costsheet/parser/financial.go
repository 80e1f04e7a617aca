package parser

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

var (
	finCostHeader      = regexp.MustCompile(`^(total )?cost\b`)
	finSellHeader      = regexp.MustCompile(`^(selling|sell|sale|client) ?price\b|^sell(ing)?$|^price$`)
	finMarginAmtHeader = regexp.MustCompile(`^margin( \$| amount| amt| \(\$\))?$|^gm \$|^gross margin$`)
	finMarginPctHeader = regexp.MustCompile(`margin\s*%|margin \(%\)|margin (pct|percent)|^gm\s*%|^%$`)

	// labels that look like section headers but are document metadata
	sectionArtifact = regexp.MustCompile(`(?i)^(rev(ision)?\b|r\d+\b|project( name)?\s*:|client\s*:|venue\s*:|date\s*:|prepared (by|for)\b)`)
	totalLikeLabel  = regexp.MustCompile(`total|\btax(es|able)?\b|\bbonds?\b`)
)

// FinancialColumns is the located financial sheet header.
type FinancialColumns struct {
	HeaderRow    int
	Label        int
	Cost         int
	Sell         int
	MarginAmount int
	MarginPct    int
}

// FindFinancialHeader scans the first scan rows for a row holding both a
// cost and a selling price header. The label column sits just left of cost.
func FindFinancialHeader(rows [][]string, scan int) (FinancialColumns, bool) {
	for i := 0; i < len(rows) && i < scan; i++ {
		costCol, sellCol := NoColumn, NoColumn
		amtCol, pctCol := NoColumn, NoColumn
		for c, cell := range rows[i] {
			h := NormalizeHeader(cell)
			switch {
			case h == "":
			case costCol == NoColumn && finCostHeader.MatchString(h):
				costCol = c
			case sellCol == NoColumn && finSellHeader.MatchString(h):
				sellCol = c
			case pctCol == NoColumn && finMarginPctHeader.MatchString(h):
				pctCol = c
			case amtCol == NoColumn && finMarginAmtHeader.MatchString(h):
				amtCol = c
			}
		}
		if costCol == NoColumn || sellCol == NoColumn {
			continue
		}

		cols := FinancialColumns{
			HeaderRow:    i,
			Cost:         costCol,
			Sell:         sellCol,
			MarginAmount: amtCol,
			MarginPct:    pctCol,
		}
		if costCol > 0 {
			cols.Label = costCol - 1
		}
		if cols.MarginAmount == NoColumn {
			cols.MarginAmount = costCol + 2
		}
		if cols.MarginPct == NoColumn {
			cols.MarginPct = costCol + 3
		}
		return cols, true
	}
	return FinancialColumns{HeaderRow: NoColumn}, false
}

// sectionState tracks whether rows sit inside an alternates block.
type sectionState int

const (
	stateNormal sectionState = iota
	// stateInAlternates is terminal: once an "Alternates" label is seen every
	// later row in the sheet is an alternate. Sections cannot close it.
	stateInAlternates
)

func (s sectionState) next(label string) sectionState {
	if s == stateNormal && strings.Contains(NormalizeName(label), "alternate") {
		return stateInAlternates
	}
	return s
}

// ParseFinancialRows reads the financial sheet. It returns no rows and
// found=false when no header row exists in range; callers treat that as
// "no usable financial sheet", not as an error.
func ParseFinancialRows(sheet *models.Sheet, scan int, log *slog.Logger) ([]models.FinancialRow, FinancialColumns, bool) {
	cols, found := FindFinancialHeader(sheet.Rows, scan)
	if !found {
		return nil, cols, false
	}
	if log != nil {
		log.Debug("financial header located", "sheet", sheet.Name, "row", cols.HeaderRow, "costCol", cols.Cost, "sellCol", cols.Sell)
	}

	var out []models.FinancialRow
	var currentSection *string
	state := stateNormal

	for r := cols.HeaderRow + 1; r < len(sheet.Rows); r++ {
		row := sheet.Rows[r]
		label := SanitizeName(cellAt(row, cols.Label))
		costRaw := strings.TrimSpace(cellAt(row, cols.Cost))
		sellRaw := strings.TrimSpace(cellAt(row, cols.Sell))

		cost, costOK := ParseMoney(costRaw)
		sell, sellOK := ParseMoney(sellRaw)
		// An explicit "Included" marker is a deliberate zero, not a missing value.
		if isIncludedMarker(sellRaw) || isIncludedMarker(costRaw) {
			sellOK = true
		}

		if !costOK && !sellOK {
			if label == "" || sectionArtifact.MatchString(label) {
				continue
			}
			section := label
			currentSection = &section
			if log != nil {
				log.Debug("section label", "sheet", sheet.Name, "row", r+1, "label", label)
			}
			if next := state.next(label); next != state {
				state = next
				if log != nil {
					log.Debug("alternates section entered", "sheet", sheet.Name, "row", r+1, "label", label)
				}
			}
			continue
		}
		if label == "" {
			continue
		}

		amount, amountOK := ParseMoney(cellAt(row, cols.MarginAmount))
		if !amountOK {
			amount = sell - cost
		}
		pct := ParsePercent(cellAt(row, cols.MarginPct))
		if pct == 0 && sell != 0 {
			pct = amount / sell
		}

		out = append(out, models.FinancialRow{
			Index:        len(out),
			Name:         label,
			Row:          r + 1,
			Cost:         cost,
			Sell:         sell,
			SellRaw:      sellRaw,
			MarginAmount: amount,
			MarginPct:    pct,
			Section:      currentSection,
			IsAlternate:  state == stateInAlternates || IsAlternateName(label),
			IsTotalLike:  IsTotalLike(label),
		})
	}

	return out, cols, true
}

// IsTotalLike reports whether a financial label is a total, subtotal, tax or bond line.
func IsTotalLike(label string) bool {
	return totalLikeLabel.MatchString(NormalizeName(label))
}

func isIncludedMarker(s string) bool {
	return strings.Contains(strings.ToLower(s), "included")
}
