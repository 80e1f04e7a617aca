// Package naming groups financial rows for display and resolves a
// human-readable project name.
package naming

import (
	"strings"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

// DefaultSection collects rows that appear before any section label.
const DefaultSection = "General"

// GroupSections groups non-alternate, non-total rows by section label in
// first-seen order.
func GroupSections(rows []models.FinancialRow) []models.Section {
	sections := []models.Section{}
	index := make(map[string]int)

	for _, row := range rows {
		if row.IsAlternate || row.IsTotalLike {
			continue
		}
		name := row.SectionName()
		if name == "" {
			name = DefaultSection
		}

		i, ok := index[name]
		if !ok {
			i = len(sections)
			index[name] = i
			sections = append(sections, models.Section{Name: name})
		}

		sections[i].Items = append(sections[i].Items, models.SectionItem{
			Name:       row.Name,
			Cost:       row.Cost,
			Sell:       row.Sell,
			IsIncluded: IsIncluded(row.SellRaw),
			Matched:    row.Matched,
		})
		sections[i].SubTotal += row.Sell
	}

	return sections
}

// IsIncluded reports whether a raw sell cell literally says "included".
// A zero sell price alone is never treated as included.
func IsIncluded(sellRaw string) bool {
	return strings.Contains(strings.ToLower(sellRaw), "included")
}
