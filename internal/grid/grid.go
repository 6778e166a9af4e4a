package grid

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Grid is a 1-indexed read-only view of one worksheet's cells.
type Grid struct {
	Name string
	rows [][]string
}

// MalformedInputError marks a source workbook the locator cannot search:
// no worksheets, or a worksheet with no defined extent.
type MalformedInputError struct {
	Reason string
}

func (e MalformedInputError) Error() string {
	return "malformed input: " + e.Reason
}

// FromRows builds a Grid from 0-indexed row data as returned by
// excelize GetRows.
func FromRows(name string, rows [][]string) Grid {
	return Grid{Name: name, rows: rows}
}

// Cell returns the value at the 1-indexed row/column, or "" outside the
// grid's extents.
func (g Grid) Cell(row, col int) string {
	if row < 1 || row > len(g.rows) {
		return ""
	}
	r := g.rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// MaxRow returns the last row number, 0 for an empty grid.
func (g Grid) MaxRow() int {
	return len(g.rows)
}

// MaxCol returns the widest row's last column number, 0 for an empty grid.
func (g Grid) MaxCol() int {
	max := 0
	for _, r := range g.rows {
		if len(r) > max {
			max = len(r)
		}
	}
	return max
}

// RowBlank reports whether every cell in the 1-indexed row is empty or
// whitespace.
func (g Grid) RowBlank(row int) bool {
	if row < 1 || row > len(g.rows) {
		return true
	}
	for _, cell := range g.rows[row-1] {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// LoadWorkbook opens an xlsx file and returns one Grid per worksheet in
// workbook order.
func LoadWorkbook(path string) ([]Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, MalformedInputError{Reason: "workbook has no worksheets"}
	}

	grids := make([]Grid, 0, len(sheets))
	for _, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", name, err)
		}
		grids = append(grids, FromRows(name, rows))
	}
	return grids, nil
}
