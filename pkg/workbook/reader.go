// Package workbook reads the laboratory input workbook and writes the
// per-outcome output workbooks.
package workbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/xuri/excelize/v2"
)

// Database identifier columns required on every metabolite sheet.
const (
	ColumnEcoCyc = "EcoCyc"
	ColumnHMDB   = "HMDB"
)

// ErrWorkbookNotFound indicates the input workbook does not exist.
var ErrWorkbookNotFound = errors.New("workbook not found")

// ErrMissingDatabaseColumns indicates a sheet without EcoCyc and HMDB columns.
var ErrMissingDatabaseColumns = errors.New("sheet lacks EcoCyc and HMDB columns")

// Row maps column headers to cell values.
type Row map[string]string

// Sheet is one metabolite table from the input workbook. The first
// spreadsheet row supplies Columns, the second the Subheader line, and
// the rest become Rows. Columns with a blank header cell are dropped.
type Sheet struct {
	Name      string
	Columns   []string
	Subheader Row
	Rows      []Row
}

// Read loads every sheet of the workbook at path except those named in
// skip. Each remaining sheet must carry EcoCyc and HMDB columns.
func Read(path string, skip []string) ([]Sheet, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrWorkbookNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		if slices.Contains(skip, name) {
			continue
		}
		sheet, err := readSheet(f, name)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func readSheet(f *excelize.File, name string) (Sheet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return Sheet{}, fmt.Errorf("read sheet %q: %w", name, err)
	}
	if len(rows) == 0 {
		return Sheet{}, fmt.Errorf("%w: %q", ErrMissingDatabaseColumns, name)
	}

	// Header row, keeping only columns with a non-blank header cell.
	var columns []string
	var indexes []int
	for i, header := range rows[0] {
		if header == "" {
			continue
		}
		columns = append(columns, header)
		indexes = append(indexes, i)
	}
	if !slices.Contains(columns, ColumnEcoCyc) || !slices.Contains(columns, ColumnHMDB) {
		return Sheet{}, fmt.Errorf("%w: %q has columns %v", ErrMissingDatabaseColumns, name, columns)
	}

	sheet := Sheet{Name: name, Columns: columns, Subheader: Row{}}
	if len(rows) > 1 {
		sheet.Subheader = mapRow(rows[1], columns, indexes)
	}
	if len(rows) > 2 {
		for _, raw := range rows[2:] {
			sheet.Rows = append(sheet.Rows, mapRow(raw, columns, indexes))
		}
	}
	return sheet, nil
}

// mapRow projects one raw spreadsheet row onto the kept columns.
// GetRows returns ragged rows, so short rows read as blanks.
func mapRow(raw []string, columns []string, indexes []int) Row {
	row := make(Row, len(columns))
	for i, col := range columns {
		if idx := indexes[i]; idx < len(raw) {
			row[col] = raw[idx]
		} else {
			row[col] = ""
		}
	}
	return row
}
