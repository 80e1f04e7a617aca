package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Bounds is the 0-based inclusive bounding box of a sheet's non-empty cells.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
	// NonEmpty is the number of non-empty cells inside the box.
	NonEmpty int
}

// Density is the share of non-empty cells inside the box.
func (b Bounds) Density() float64 {
	total := (b.MaxRow - b.MinRow + 1) * (b.MaxCol - b.MinCol + 1)
	if total <= 0 {
		return 0
	}
	return float64(b.NonEmpty) / float64(total)
}

// Range returns the box in Excel notation (e.g. "A1:D10").
func (b Bounds) Range() string {
	startCell, _ := excelize.CoordinatesToCellName(b.MinCol+1, b.MinRow+1)
	endCell, _ := excelize.CoordinatesToCellName(b.MaxCol+1, b.MaxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// DetectBounds finds the used range of a grid. ok is false for an empty grid.
func DetectBounds(rows [][]string) (b Bounds, ok bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return Bounds{}, false
	}
	return Bounds{
		MinRow:   minRow,
		MaxRow:   maxRow,
		MinCol:   minCol,
		MaxCol:   maxCol,
		NonEmpty: countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol),
	}, true
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
