package costsheet

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/match"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/naming"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/parser"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/reconcile"
)

// IngestFile loads a workbook from disk and ingests it.
func IngestFile(path string, opts Options) (*models.Result, error) {
	wb, err := LoadWorkbook(path, opts.LoadOptions())
	if err != nil {
		return nil, err
	}
	if opts.Filename == "" {
		opts.Filename = filepath.Base(path)
	}
	return Ingest(wb, opts)
}

// Ingest runs one ingestion pass over a materialized workbook. The only
// fatal condition is a missing specification sheet; every other problem
// degrades the result and is reported in Diagnostics.Warnings.
//
// The pass is sequential: matching completes before soft costs are
// collected, and the workbook is not modified.
func Ingest(wb *models.Workbook, opts Options) (*models.Result, error) {
	cfg := opts.config()
	log := opts.logger()

	names := wb.SheetNames()
	specName, ok := parser.LocateSpecificationSheet(names)
	if !ok {
		return nil, &MissingSheetError{Found: names, Suggestion: parser.SuggestSpecificationSheet(names)}
	}
	specSheet := wb.Sheet(specName)

	diag := models.Diagnostics{
		SpecificationSheet:      specName,
		FinancialHeaderRowIndex: parser.NoColumn,
	}
	warn := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		diag.Warnings = append(diag.Warnings, msg)
		log.Warn(msg)
	}

	// Specification sheet
	cols := parser.ResolveColumns(specSheet, cfg.HeaderScanRows)
	if !cols.HeaderFound {
		warn("no header row found in the first %d rows of %q; assuming row %d", cfg.HeaderScanRows, specName, cols.HeaderRow+1)
	}
	extracted := parser.ExtractRows(specSheet, cols, log)
	if len(extracted.Rows) == 0 {
		warn("no display rows with pitch, height and width were found on %q", specName)
	}
	if extracted.AltRowsDetected > 0 {
		warn("%d alternate display rows kept and excluded from totals", extracted.AltRowsDetected)
	}

	specs := make([]models.SpecificationRecord, len(extracted.Rows))
	for i, row := range extracted.Rows {
		specs[i] = row.Record
	}

	// Financial sheet
	finRows := []models.FinancialRow{}
	if finName, ok := parser.LocateFinancialSheet(names, specName); ok {
		diag.FinancialSheet = finName
		rows, finCols, found := parser.ParseFinancialRows(wb.Sheet(finName), cfg.FinancialScanRows, log)
		if found {
			finRows = append(finRows, rows...)
			diag.FinancialHeaderRowIndex = finCols.HeaderRow
		} else {
			warn("no Cost / Selling Price header in the first %d rows of %q; using specification sheet figures", cfg.FinancialScanRows, finName)
		}
	} else {
		warn("no margin analysis sheet found; using specification sheet figures")
	}

	// Matching hands over the consumed rows; flags are applied to our own copy.
	matched := match.Match(specs, finRows, cfg.MatchFloor)
	for idx := range matched.Consumed {
		finRows[idx].Matched = true
	}
	for i, idx := range matched.Assignments {
		specs[i].Group = finRows[idx].SectionName()
	}
	if len(finRows) > 0 {
		diag.UnmatchedScreens = matched.Unmatched(specs)
	}

	softCosts := match.NewCollector(cfg.SoftCostKeywords).Collect(finRows, matched.Consumed)

	agg := reconcile.NewAggregator(log)
	audits := make([]models.ScreenAudit, len(specs))
	for i, spec := range specs {
		var row *models.FinancialRow
		if idx, ok := matched.Assignments[i]; ok {
			row = &finRows[idx]
		}
		audits[i] = reconcile.BuildAudit(spec, extracted.Rows[i].Sheet, row)
		agg.AddAudit(audits[i])
	}
	for _, item := range softCosts {
		agg.AddSoftCost(item)
	}
	if err := agg.Reconcile(reconcile.FindDeclaredSubTotal(finRows)); err != nil {
		return nil, err
	}

	filename := opts.Filename
	if filename == "" {
		filename = wb.BookName
	}
	projectName := naming.Resolve(naming.Input{
		Workbook:           wb,
		SpecificationSheet: specName,
		FinancialSheet:     diag.FinancialSheet,
		Filename:           filename,
		ScanRows:           cfg.NameScanRows,
		OtherRows:          cfg.OtherSheetScanRows,
		OtherCols:          cfg.OtherSheetScanCols,
	}, opts.strategies(), cfg.PlaceholderName)

	diag.AltRowsDetected = extracted.AltRowsDetected
	diag.BlankRowsSkipped = extracted.BlankRowsSkipped
	diag.DuplicatesRemoved = extracted.DuplicatesRemoved
	diag.HeaderRowIndex = cols.HeaderRow

	log.Info("workbook ingested",
		"specificationSheet", specName,
		"financialSheet", diag.FinancialSheet,
		"displays", len(specs),
		"financialRows", len(finRows),
		"softCosts", len(softCosts),
		"projectName", projectName)

	return &models.Result{
		Specifications:      specs,
		FinancialRows:       finRows,
		Audits:              audits,
		Totals:              agg.Totals(),
		SoftCosts:           softCosts,
		GroupedSections:     naming.GroupSections(finRows),
		ResolvedProjectName: projectName,
		Diagnostics:         diag,
	}, nil
}
