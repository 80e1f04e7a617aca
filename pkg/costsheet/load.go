package costsheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/parser"
)

// LoadWorkbook decodes an .xlsx/.xlsm or legacy .xls file, chosen by extension.
func LoadWorkbook(path string, opts parser.LoadOptions) (*models.Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		wb, err := parser.LoadXLSX(path, opts)
		if err != nil {
			return nil, NewExtractionError("", "xlsx", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
		}
		return wb, nil
	case ".xls":
		wb, err := parser.LoadXLS(path)
		if err != nil {
			return nil, NewExtractionError("", "xls", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
		}
		return wb, nil
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidFormat, ext)
	}
}
