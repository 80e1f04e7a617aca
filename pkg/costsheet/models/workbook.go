// Package models defines data structures for cost sheet ingestion.
package models

// Sheet is a named grid of raw cell values.
type Sheet struct {
	// Name is the sheet name as it appears in the workbook.
	Name string `json:"name" yaml:"name"`
	// Rows holds cell text row by row (0-based). Rows may be ragged.
	Rows [][]string `json:"rows" yaml:"rows"`
}

// Cell returns the raw value at row r, column c, or "" when out of range.
func (s *Sheet) Cell(r, c int) string {
	if s == nil || r < 0 || r >= len(s.Rows) || c < 0 || c >= len(s.Rows[r]) {
		return ""
	}
	return s.Rows[r][c]
}

// Workbook is a fully materialized set of named sheets.
type Workbook struct {
	// BookName is the source file name (no path), used only as a naming hint.
	BookName string `json:"book_name" yaml:"book_name"`
	// Sheets in workbook order.
	Sheets []Sheet `json:"sheets" yaml:"sheets"`
	// TextBoxes maps sheet name to the text of drawing text boxes (xlsx only).
	TextBoxes map[string][]string `json:"text_boxes,omitempty" yaml:"text_boxes,omitempty"`
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		names = append(names, s.Name)
	}
	return names
}

// Sheet returns the sheet with the given name, or nil.
func (w *Workbook) Sheet(name string) *Sheet {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i]
		}
	}
	return nil
}
