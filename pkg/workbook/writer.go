package workbook

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"ligandid/pkg/identify/models"
)

// Table is one output sheet under construction: an ordered header plus
// appended rows. Cells for columns a row does not set are written blank.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable returns an empty table with the given column order.
func NewTable(columns []string) *Table {
	return &Table{Columns: columns}
}

// Append adds one row to the table.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// OutputSet accumulates per-sheet tables for every outcome and writes
// one workbook per outcome, each with one sheet per processed input sheet.
type OutputSet struct {
	order  []string
	tables map[models.Outcome]map[string]*Table
}

// NewOutputSet returns an empty output set.
func NewOutputSet() *OutputSet {
	set := &OutputSet{tables: make(map[models.Outcome]map[string]*Table)}
	for _, outcome := range models.Outcomes {
		set.tables[outcome] = make(map[string]*Table)
	}
	return set
}

// Add records the classified tables for one input sheet. Sheets keep
// their input order in every output workbook.
func (s *OutputSet) Add(sheetName string, tables map[models.Outcome]*Table) {
	s.order = append(s.order, sheetName)
	for outcome, table := range tables {
		s.tables[outcome][sheetName] = table
	}
}

// Write saves the five outcome workbooks into outdir, creating it if needed.
func (s *OutputSet) Write(outdir string) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, outcome := range models.Outcomes {
		path := filepath.Join(outdir, string(outcome)+".xlsx")
		if err := s.writeWorkbook(outcome, path); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

func (s *OutputSet) writeWorkbook(outcome models.Outcome, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheetName := range s.order {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheetName); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheetName); err != nil {
			return err
		}
		if err := writeTable(f, sheetName, s.tables[outcome][sheetName]); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func writeTable(f *excelize.File, sheetName string, table *Table) error {
	if table == nil {
		return nil
	}
	header := make([]interface{}, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	for r, row := range table.Rows {
		values := make([]interface{}, len(table.Columns))
		for i, col := range table.Columns {
			values[i] = row[col]
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}
	return nil
}
