package match

import (
	"regexp"
	"strings"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/parser"
)

// DefaultKeywords mark project-level line items that are not display hardware.
var DefaultKeywords = []string{
	"structure", "structural", "install", "labor", "labour", "electrical",
	"power", "pm", "project management", "travel", "engineering", "permit",
	"bond", "insurance", "shipping", "freight", "demolition", "demo",
	"rigging", "crane", "commissioning", "training", "warranty",
	"general conditions", "overhead",
}

var hardwareName = regexp.MustCompile(`\b(display|screen)s?\b`)

// Collector classifies leftover financial rows as soft costs.
type Collector struct {
	keywords []*regexp.Regexp
}

// NewCollector compiles keywords as word-prefix patterns; an empty list
// uses DefaultKeywords.
func NewCollector(keywords []string) *Collector {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	c := &Collector{}
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		c.keywords = append(c.keywords, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)))
	}
	return c
}

// IsSoftCost reports whether a row reads as a soft cost: a keyword hit, or
// any priced row whose name does not mention a display or screen.
func (c *Collector) IsSoftCost(row models.FinancialRow) bool {
	name := parser.NormalizeName(row.Name)
	for _, re := range c.keywords {
		if re.MatchString(name) {
			return true
		}
	}
	return (row.Cost != 0 || row.Sell != 0) && !hardwareName.MatchString(name)
}

// Collect returns the soft costs among rows that are unmatched, not
// alternates and not totals, in sheet order.
func (c *Collector) Collect(rows []models.FinancialRow, consumed map[int]bool) []models.SoftCostItem {
	items := []models.SoftCostItem{}
	for _, row := range rows {
		if consumed[row.Index] || row.IsAlternate || row.IsTotalLike {
			continue
		}
		if c.IsSoftCost(row) {
			items = append(items, models.SoftCostItem{Name: row.Name, Cost: row.Cost, Sell: row.Sell})
		}
	}
	return items
}
