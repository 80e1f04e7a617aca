package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/ukaji3/costsheet-go/pkg/costsheet"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/parser"
	"github.com/xuri/excelize/v2"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show how the sheets and columns of a workbook are recognized",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts := costsheet.Options{Config: cfg}

	wb, err := costsheet.LoadWorkbook(args[0], opts.LoadOptions())
	if err != nil {
		return err
	}

	names := wb.SheetNames()
	specName, _ := parser.LocateSpecificationSheet(names)
	finName, _ := parser.LocateFinancialSheet(names, specName)

	out := cmd.OutOrStdout()
	writeSheetTable(out, wb, specName, finName)

	if specName == "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, (&costsheet.MissingSheetError{Found: names, Suggestion: parser.SuggestSpecificationSheet(names)}).Error())
		return nil
	}

	cols := parser.ResolveColumns(wb.Sheet(specName), cfg.HeaderScanRows)
	fmt.Fprintf(out, "\nheader row %d of %q (found: %v)\n", cols.HeaderRow+1, specName, cols.HeaderFound)
	for _, spec := range parser.SpecificationFields {
		idx := cols.Col(spec.Field)
		if idx == parser.NoColumn {
			continue
		}
		letter, _ := excelize.ColumnNumberToName(idx + 1)
		how := "fallback"
		if cols.Detected[spec.Field] {
			how = "header"
		}
		fmt.Fprintf(out, "  %-14s %-3s %s\n", spec.Field, letter, how)
	}

	if finName != "" {
		if fin, found := parser.FindFinancialHeader(wb.Sheet(finName).Rows, cfg.FinancialScanRows); found {
			fmt.Fprintf(out, "\nfinancial header row %d of %q\n", fin.HeaderRow+1, finName)
		} else {
			fmt.Fprintf(out, "\nno financial header in the first %d rows of %q\n", cfg.FinancialScanRows, finName)
		}
	}
	return nil
}

func writeSheetTable(out io.Writer, wb *models.Workbook, specName, finName string) {
	for _, sheet := range wb.Sheets {
		role := "-"
		switch {
		case sheet.Name == specName:
			role = "specification"
		case sheet.Name == finName:
			role = "financial"
		}

		used := "(empty)"
		if b, ok := parser.DetectBounds(sheet.Rows); ok {
			used = fmt.Sprintf("%s %.0f%% filled", b.Range(), b.Density()*100)
		}

		boxes := ""
		if n := len(wb.TextBoxes[sheet.Name]); n > 0 {
			boxes = fmt.Sprintf(", %d text boxes", n)
		}
		fmt.Fprintf(out, "%-32q %-14s %s%s\n", sheet.Name, role, used, boxes)
	}
}
