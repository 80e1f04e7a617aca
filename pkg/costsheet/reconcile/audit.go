// Package reconcile builds per-display audits and foots them into project
// totals checked against the sheet's own declared subtotal.
package reconcile

import (
	"strings"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/parser"
)

// BuildAudit derives the financial view of one display. With a matched
// financial row, total cost, sell and margin come from that row and the
// component costs stay as the specification sheet states them.
func BuildAudit(rec models.SpecificationRecord, sheet models.CostBreakdown, row *models.FinancialRow) models.ScreenAudit {
	qty := rec.Quantity
	if qty < 1 {
		qty = 1
	}

	audit := models.ScreenAudit{
		Name:        rec.Name,
		Area:        rec.Height * rec.Width * float64(qty),
		Pixels:      int64(rec.ResolutionX) * int64(rec.ResolutionY) * int64(qty),
		IsAlternate: rec.IsAlternate,
		Source:      models.SourceSpecificationSheet,
		Breakdown:   sheet,
	}
	if row == nil {
		return audit
	}

	idx := row.Index
	b := sheet
	b.TotalCost = row.Cost
	b.Sell = row.Sell
	b.Margin = row.MarginAmount
	b.MarginPct = row.MarginPct
	b.FinalTotal = b.Sell + b.Bond + b.Tax

	audit.Source = models.SourceFinancialSheet
	audit.MatchedRow = &idx
	audit.Breakdown = b
	return audit
}

var subTotalSpelling = strings.NewReplacer("subtotal", "sub total", "sub-total", "sub total")

// FindDeclaredSubTotal returns the sell value of the first total-like row
// labelled as the bid form subtotal, or nil when the sheet declares none.
func FindDeclaredSubTotal(rows []models.FinancialRow) *float64 {
	for _, row := range rows {
		if !row.IsTotalLike {
			continue
		}
		label := subTotalSpelling.Replace(parser.NormalizeName(row.Name))
		if strings.Contains(label, "sub total") && strings.Contains(label, "bid form") {
			v := row.Sell
			return &v
		}
	}
	return nil
}
