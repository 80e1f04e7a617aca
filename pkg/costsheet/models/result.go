package models

// Diagnostics summarizes what the ingestion pass skipped or degraded.
type Diagnostics struct {
	AltRowsDetected   int `json:"alt_rows_detected" yaml:"alt_rows_detected"`
	BlankRowsSkipped  int `json:"blank_rows_skipped" yaml:"blank_rows_skipped"`
	DuplicatesRemoved int `json:"duplicates_removed" yaml:"duplicates_removed"`
	// HeaderRowIndex is the 0-based header row of the specification sheet.
	HeaderRowIndex int `json:"header_row_index" yaml:"header_row_index"`
	// FinancialHeaderRowIndex is -1 when no financial header was found.
	FinancialHeaderRowIndex int      `json:"financial_header_row_index" yaml:"financial_header_row_index"`
	SpecificationSheet      string   `json:"specification_sheet" yaml:"specification_sheet"`
	FinancialSheet          string   `json:"financial_sheet,omitempty" yaml:"financial_sheet,omitempty"`
	UnmatchedScreens        []string `json:"unmatched_screens,omitempty" yaml:"unmatched_screens,omitempty"`
	Warnings                []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Result is the normalized output model consumed by downstream collaborators.
type Result struct {
	Specifications      []SpecificationRecord `json:"specifications" yaml:"specifications"`
	FinancialRows       []FinancialRow        `json:"financial_rows" yaml:"financial_rows"`
	Audits              []ScreenAudit         `json:"audits" yaml:"audits"`
	Totals              ProjectTotals         `json:"totals" yaml:"totals"`
	SoftCosts           []SoftCostItem        `json:"soft_costs" yaml:"soft_costs"`
	GroupedSections     []Section             `json:"grouped_sections" yaml:"grouped_sections"`
	ResolvedProjectName string                `json:"resolved_project_name" yaml:"resolved_project_name"`
	Diagnostics         Diagnostics           `json:"diagnostics" yaml:"diagnostics"`
}
