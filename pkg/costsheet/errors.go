package costsheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xlsx or xls workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ExtractionError represents an error while decoding a workbook.
type ExtractionError struct {
	SheetName string
	Component string // "xlsx", "xls"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("extraction error (%s): %v", e.Component, e.Err)
	}
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

// MissingSheetError is returned when no sheet reads as the specification
// sheet. Nothing can be extracted without it.
type MissingSheetError struct {
	// Found lists every sheet name in the workbook, in order.
	Found []string
	// Suggestion is the sheet name closest to the expected one, if any.
	Suggestion string
}

func (e *MissingSheetError) Error() string {
	quoted := make([]string, len(e.Found))
	for i, name := range e.Found {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	msg := fmt.Sprintf("no specification sheet found (sheets: %s)", strings.Join(quoted, ", "))
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; rename %q to %q if it holds the display specifications", e.Suggestion, parser.CanonicalSpecificationSheet)
	}
	return msg
}
