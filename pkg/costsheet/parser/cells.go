package parser

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/xuri/excelize/v2"
)

// LoadOptions configures workbook decoding.
type LoadOptions struct {
	// FillMergedCells copies a merged range's value into every cell it covers.
	FillMergedCells bool
	// IncludeTextBoxes reads drawing text boxes (xlsx only).
	IncludeTextBoxes bool
}

// LoadXLSX reads an .xlsx file into a fully materialized workbook.
func LoadXLSX(path string, opts LoadOptions) (*models.Workbook, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ReadXLSX(bytes.NewReader(data), filepath.Base(path), opts)
}

// ReadXLSX decodes xlsx bytes from r. bookName is kept as a naming hint.
func ReadXLSX(r io.Reader, bookName string, opts LoadOptions) (*models.Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &models.Workbook{BookName: bookName}
	for _, sheetName := range f.GetSheetList() {
		rows, err := ExtractCells(f, sheetName, opts.FillMergedCells)
		if err != nil {
			// Unreadable sheets are kept empty so locating still sees the name
			rows = nil
		}
		wb.Sheets = append(wb.Sheets, models.Sheet{Name: sheetName, Rows: rows})
	}

	if opts.IncludeTextBoxes {
		boxes, err := ReadTextBoxes(data)
		if err == nil && len(boxes) > 0 {
			wb.TextBoxes = boxes
		}
	}

	return wb, nil
}

// ExtractCells reads a sheet as raw (unformatted) cell values, trimmed of
// surrounding whitespace. Trailing empty rows are kept; callers index by row.
func ExtractCells(f *excelize.File, sheetName string, fillMerged bool) ([][]string, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		for j, cell := range row {
			rows[i][j] = strings.TrimSpace(cell)
		}
	}

	if !fillMerged {
		return rows, nil
	}

	merges, err := f.GetMergeCells(sheetName)
	if err != nil {
		return rows, nil
	}
	for _, mc := range merges {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		rows = fillRange(rows, startRow-1, startCol-1, endRow-1, endCol-1, strings.TrimSpace(mc.GetCellValue()))
	}

	return rows, nil
}

// fillRange writes val into every cell of the 0-based inclusive range,
// growing ragged rows as needed.
func fillRange(rows [][]string, r1, c1, r2, c2 int, val string) [][]string {
	for r := r1; r <= r2; r++ {
		for len(rows) <= r {
			rows = append(rows, nil)
		}
		for len(rows[r]) <= c2 {
			rows[r] = append(rows[r], "")
		}
		for c := c1; c <= c2; c++ {
			rows[r][c] = val
		}
	}
	return rows
}
