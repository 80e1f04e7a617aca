package models

// FinancialRow is one priced line read from the financial sheet.
type FinancialRow struct {
	// Index is the row's position in the parsed row list; matchers refer to rows by it.
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
	// Row is the 1-based sheet row number.
	Row  int     `json:"row" yaml:"row"`
	Cost float64 `json:"cost" yaml:"cost"`
	Sell float64 `json:"sell" yaml:"sell"`
	// SellRaw is the untouched sell cell, kept to detect literal "included" markers.
	SellRaw      string  `json:"sell_raw" yaml:"sell_raw"`
	MarginAmount float64 `json:"margin_amount" yaml:"margin_amount"`
	MarginPct    float64 `json:"margin_pct" yaml:"margin_pct"`
	// Section is the last label-only row seen above this row, if any.
	Section     *string `json:"section,omitempty" yaml:"section,omitempty"`
	IsAlternate bool    `json:"is_alternate" yaml:"is_alternate"`
	IsTotalLike bool    `json:"is_total_like" yaml:"is_total_like"`
	Matched     bool    `json:"matched" yaml:"matched"`
}

// SectionName returns the section label or "" when the row has none.
func (r FinancialRow) SectionName() string {
	if r.Section == nil {
		return ""
	}
	return *r.Section
}

// SoftCostItem is a project-level cost not tied to any display.
type SoftCostItem struct {
	Name string  `json:"name" yaml:"name"`
	Cost float64 `json:"cost" yaml:"cost"`
	Sell float64 `json:"sell" yaml:"sell"`
}

// SectionItem is one financial line inside a display group.
type SectionItem struct {
	Name       string  `json:"name" yaml:"name"`
	Cost       float64 `json:"cost" yaml:"cost"`
	Sell       float64 `json:"sell" yaml:"sell"`
	IsIncluded bool    `json:"is_included" yaml:"is_included"`
	Matched    bool    `json:"matched" yaml:"matched"`
}

// Section groups financial lines under their captured section label.
type Section struct {
	Name     string        `json:"name" yaml:"name"`
	Items    []SectionItem `json:"items" yaml:"items"`
	SubTotal float64       `json:"sub_total" yaml:"sub_total"`
}
