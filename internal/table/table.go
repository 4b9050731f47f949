// Package table binds a spreadsheet into a row-oriented DataTable whose
// column names become the selectable naming fields.
package table

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"batchrename/internal/errors"
	"batchrename/internal/log"
	"batchrename/pkg/types"
)

// workbookExtensions are the spreadsheet formats excelize can open.
var workbookExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// Load reads the spreadsheet at path into a DataTable. The first row is the
// header; data rows preserve source order and are padded to the header
// width. sheet selects a worksheet by name, the first sheet when empty
// (ignored for CSV input).
func Load(path, sheet string) (*types.DataTable, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileError("spreadsheet not found", path, errors.NotFound, nil)
		}
		return nil, errors.NewFileError("cannot access spreadsheet", path, errors.InvalidTarget, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var (
		rows [][]string
		err  error
	)
	switch {
	case workbookExtensions[ext]:
		rows, err = readWorkbook(path, sheet)
	case ext == ".csv":
		rows, err = readCSV(path)
	default:
		return nil, errors.NewFileError("unsupported spreadsheet format: "+ext, path, errors.InvalidTarget, nil)
	}
	if err != nil {
		return nil, err
	}

	return buildTable(rows), nil
}

func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewFileError("cannot open workbook", path, errors.InvalidTarget, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewFileError("cannot read sheet "+sheet, path, errors.InvalidTarget, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewFileError("cannot open csv", path, errors.InvalidTarget, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // header width is applied in buildTable
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.NewFileError("cannot parse csv", path, errors.InvalidTarget, err)
	}
	return records, nil
}

func buildTable(rows [][]string) *types.DataTable {
	t := &types.DataTable{}
	if len(rows) == 0 {
		return t
	}

	for _, name := range rows[0] {
		t.Columns = append(t.Columns, strings.TrimSpace(name))
	}

	for _, raw := range rows[1:] {
		row := make(types.Row, len(t.Columns))
		for i, col := range t.Columns {
			cell := ""
			if i < len(raw) {
				cell = raw[i]
			}
			row[col] = types.ParseValue(cell)
		}
		t.Rows = append(t.Rows, row)
	}

	log.Debug("bound table with %d columns and %d rows", len(t.Columns), len(t.Rows))
	return t
}
