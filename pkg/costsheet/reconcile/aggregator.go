package reconcile

import (
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

// ErrAlreadyReconciled is returned by a second call to Reconcile.
var ErrAlreadyReconciled = errors.New("totals already reconciled")

// Aggregator accumulates audits and soft costs into project totals. Sums are
// kept as decimals so the result foots to the cent like the sheet does.
type Aggregator struct {
	hardware, structure, install, labor decimal.Decimal
	power, shipping, pm                 decimal.Decimal
	totalCost, margin, sell, bond, tax  decimal.Decimal
	finalTotal                          decimal.Decimal
	softCost, softSell                  decimal.Decimal
	area                                decimal.Decimal
	displaySell                         decimal.Decimal
	pixels                              int64

	reconciled     bool
	declared       *float64
	finalOverride  *decimal.Decimal
	reconciliation models.ReconciliationSource

	log *slog.Logger
}

// NewAggregator returns an empty accumulator. log may be nil.
func NewAggregator(log *slog.Logger) *Aggregator {
	return &Aggregator{reconciliation: models.ReconciledComputed, log: log}
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// AddAudit folds one display into the totals. Alternates are skipped.
func (a *Aggregator) AddAudit(audit models.ScreenAudit) {
	if audit.IsAlternate {
		return
	}
	b := audit.Breakdown
	a.hardware = a.hardware.Add(dec(b.Hardware))
	a.structure = a.structure.Add(dec(b.Structure))
	a.install = a.install.Add(dec(b.Install))
	a.labor = a.labor.Add(dec(b.Labor))
	a.power = a.power.Add(dec(b.Power))
	a.shipping = a.shipping.Add(dec(b.Shipping))
	a.pm = a.pm.Add(dec(b.PM))
	a.totalCost = a.totalCost.Add(dec(b.TotalCost))
	a.margin = a.margin.Add(dec(b.Margin))
	a.sell = a.sell.Add(dec(b.Sell))
	a.bond = a.bond.Add(dec(b.Bond))
	a.tax = a.tax.Add(dec(b.Tax))
	a.finalTotal = a.finalTotal.Add(dec(b.FinalTotal))

	a.area = a.area.Add(dec(audit.Area))
	a.displaySell = a.displaySell.Add(dec(b.Sell))
	a.pixels += audit.Pixels
}

// AddSoftCost layers a project-level cost on top of the display totals.
func (a *Aggregator) AddSoftCost(item models.SoftCostItem) {
	cost, sell := dec(item.Cost), dec(item.Sell)
	a.softCost = a.softCost.Add(cost)
	a.softSell = a.softSell.Add(sell)
	a.totalCost = a.totalCost.Add(cost)
	a.sell = a.sell.Add(sell)
	a.margin = a.margin.Add(sell.Sub(cost))
	a.finalTotal = a.finalTotal.Add(sell)
}

// Reconcile compares the computed final total with the sheet's declared
// subtotal. The declared value is adopted only when it is not smaller than
// the computed one. A nil declared value keeps the computed total.
func (a *Aggregator) Reconcile(declared *float64) error {
	if a.reconciled {
		return ErrAlreadyReconciled
	}
	a.reconciled = true
	if declared == nil {
		return nil
	}

	v := *declared
	a.declared = &v
	d := dec(v)
	if d.GreaterThanOrEqual(a.finalTotal) {
		a.finalOverride = &d
		a.reconciliation = models.ReconciledDeclared
	}
	if a.log != nil {
		a.log.Info("reconciled against declared subtotal",
			"declared", v,
			"computed", a.finalTotal.InexactFloat64(),
			"source", string(a.reconciliation))
	}
	return nil
}

// Totals snapshots the accumulated figures.
func (a *Aggregator) Totals() models.ProjectTotals {
	t := models.ProjectTotals{
		Hardware:       a.hardware.InexactFloat64(),
		Structure:      a.structure.InexactFloat64(),
		Install:        a.install.InexactFloat64(),
		Labor:          a.labor.InexactFloat64(),
		Power:          a.power.InexactFloat64(),
		Shipping:       a.shipping.InexactFloat64(),
		PM:             a.pm.InexactFloat64(),
		TotalCost:      a.totalCost.InexactFloat64(),
		Margin:         a.margin.InexactFloat64(),
		Sell:           a.sell.InexactFloat64(),
		Bond:           a.bond.InexactFloat64(),
		Tax:            a.tax.InexactFloat64(),
		SoftCostCost:   a.softCost.InexactFloat64(),
		SoftCostSell:   a.softSell.InexactFloat64(),
		TotalArea:      a.area.InexactFloat64(),
		TotalPixels:    a.pixels,
		ComputedTotal:  a.finalTotal.InexactFloat64(),
		Reconciliation: a.reconciliation,
	}
	if !a.area.IsZero() {
		t.SellPerSqFt = a.displaySell.Div(a.area).Round(2).InexactFloat64()
	}

	t.FinalClientTotal = t.ComputedTotal
	if a.finalOverride != nil {
		t.FinalClientTotal = a.finalOverride.InexactFloat64()
	}
	if a.declared != nil {
		v := *a.declared
		t.DeclaredSubTotal = &v
	}
	return t
}
