package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

// LoadXLS reads a legacy BIFF .xls file. Merged cells and drawings are not
// available through this format reader.
func LoadXLS(path string) (*models.Workbook, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		wb, err = xls.OpenReader(bytes.NewReader(data), "windows-1252")
		if err != nil {
			return nil, err
		}
	}

	out := &models.Workbook{BookName: filepath.Base(path)}
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		var rows [][]string
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cols := make([]string, row.LastCol())
			for c := 0; c < row.LastCol(); c++ {
				cols[c] = strings.TrimSpace(row.Col(c))
			}
			rows = append(rows, cols)
		}
		out.Sheets = append(out.Sheets, models.Sheet{Name: sheet.Name, Rows: rows})
	}

	return out, nil
}

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
