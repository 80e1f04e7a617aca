package models

// CostBreakdown is a cost/sell/margin split for one display or for the project.
type CostBreakdown struct {
	Hardware   float64 `json:"hardware" yaml:"hardware"`
	Structure  float64 `json:"structure" yaml:"structure"`
	Install    float64 `json:"install" yaml:"install"`
	Labor      float64 `json:"labor" yaml:"labor"`
	Power      float64 `json:"power" yaml:"power"`
	Shipping   float64 `json:"shipping" yaml:"shipping"`
	PM         float64 `json:"pm" yaml:"pm"`
	TotalCost  float64 `json:"total_cost" yaml:"total_cost"`
	Margin     float64 `json:"margin" yaml:"margin"`
	MarginPct  float64 `json:"margin_pct" yaml:"margin_pct"`
	Sell       float64 `json:"sell" yaml:"sell"`
	Bond       float64 `json:"bond" yaml:"bond"`
	Tax        float64 `json:"tax" yaml:"tax"`
	FinalTotal float64 `json:"final_total" yaml:"final_total"`
}

// BreakdownSource says where a ScreenAudit's numbers came from.
type BreakdownSource string

const (
	// SourceFinancialSheet means a matched financial row supplied cost/sell/margin.
	SourceFinancialSheet BreakdownSource = "financial_sheet"
	// SourceSpecificationSheet means the specification sheet's own columns were used.
	SourceSpecificationSheet BreakdownSource = "specification_sheet"
)

// ScreenAudit is the derived financial view of one SpecificationRecord.
type ScreenAudit struct {
	Name string `json:"name" yaml:"name"`
	// Area in square feet (height x width x quantity).
	Area float64 `json:"area" yaml:"area"`
	// Pixels is resolution x quantity.
	Pixels      int64           `json:"pixels" yaml:"pixels"`
	IsAlternate bool            `json:"is_alternate" yaml:"is_alternate"`
	Source      BreakdownSource `json:"source" yaml:"source"`
	// MatchedRow is the FinancialRow.Index supplying the numbers, if any.
	MatchedRow *int          `json:"matched_row,omitempty" yaml:"matched_row,omitempty"`
	Breakdown  CostBreakdown `json:"breakdown" yaml:"breakdown"`
}

// ReconciliationSource records which figure became the final client total.
type ReconciliationSource string

const (
	ReconciledComputed ReconciliationSource = "computed"
	ReconciledDeclared ReconciliationSource = "declared"
)

// ProjectTotals aggregates all non-alternate audits plus soft costs.
type ProjectTotals struct {
	Hardware  float64 `json:"hardware" yaml:"hardware"`
	Structure float64 `json:"structure" yaml:"structure"`
	Install   float64 `json:"install" yaml:"install"`
	Labor     float64 `json:"labor" yaml:"labor"`
	Power     float64 `json:"power" yaml:"power"`
	Shipping  float64 `json:"shipping" yaml:"shipping"`
	PM        float64 `json:"pm" yaml:"pm"`
	TotalCost float64 `json:"total_cost" yaml:"total_cost"`
	Margin    float64 `json:"margin" yaml:"margin"`
	Sell      float64 `json:"sell" yaml:"sell"`
	Bond      float64 `json:"bond" yaml:"bond"`
	Tax       float64 `json:"tax" yaml:"tax"`

	SoftCostCost float64 `json:"soft_cost_cost" yaml:"soft_cost_cost"`
	SoftCostSell float64 `json:"soft_cost_sell" yaml:"soft_cost_sell"`

	TotalArea   float64 `json:"total_area" yaml:"total_area"`
	TotalPixels int64   `json:"total_pixels" yaml:"total_pixels"`
	// SellPerSqFt is the area-weighted average sell price per square foot.
	SellPerSqFt float64 `json:"sell_per_sq_ft" yaml:"sell_per_sq_ft"`

	FinalClientTotal float64 `json:"final_client_total" yaml:"final_client_total"`
	// ComputedTotal is the aggregate before reconciliation.
	ComputedTotal float64 `json:"computed_total" yaml:"computed_total"`
	// DeclaredSubTotal is the sheet's "Sub Total (Bid Form)" sell value, if present.
	DeclaredSubTotal *float64            `json:"declared_sub_total,omitempty" yaml:"declared_sub_total,omitempty"`
	Reconciliation   ReconciliationSource `json:"reconciliation" yaml:"reconciliation"`
}
