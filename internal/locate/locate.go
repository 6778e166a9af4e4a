// Package locate finds the statement header template inside worksheet grids.
//
// Statement exports pad a varying number of leading rows with titles and
// metadata, and some vendors shift the table right by a few columns. The
// locator scans every row top to bottom and tries start columns 1 through 4
// before moving on, so the bounded horizontal scan absorbs those shifts
// without matching narrower lookalikes.
package locate

import (
	"errors"
	"fmt"

	"github.com/ledgerize-dev/ledgerize/internal/grid"
	"github.com/ledgerize-dev/ledgerize/internal/model"
)

// ErrHeaderNotFound means no worksheet contains the header template.
var ErrHeaderNotFound = errors.New("header template not found")

// maxStartColumn bounds the horizontal scan for the template's first label.
const maxStartColumn = 4

// Location identifies where statement data begins: the worksheet index, the
// first data row (immediately below the matched header line), and the column
// at which the template starts.
type Location struct {
	Sheet  int
	Row    int
	Column int
}

// Find scans grids in order and returns the location of the first template
// match. Rows are scanned top to bottom, candidate start columns left to
// right; the first match anywhere wins and scanning stops.
func Find(grids []grid.Grid) (Location, error) {
	if len(grids) == 0 {
		return Location{}, grid.MalformedInputError{Reason: "no worksheets to search"}
	}

	for s, g := range grids {
		if g.MaxRow() == 0 || g.MaxCol() == 0 {
			return Location{}, grid.MalformedInputError{
				Reason: fmt.Sprintf("worksheet %q has no extent", g.Name),
			}
		}

		for row := 1; row <= g.MaxRow(); row++ {
			if g.RowBlank(row) {
				continue
			}
			for col := 1; col <= maxStartColumn; col++ {
				if matchesTemplate(g, row, col) {
					return Location{Sheet: s, Row: row + 1, Column: col}, nil
				}
			}
		}
	}

	return Location{}, ErrHeaderNotFound
}

// matchesTemplate checks all 7 labels for an exact match starting at
// (row, col).
func matchesTemplate(g grid.Grid, row, col int) bool {
	for i, label := range model.HeaderTemplate {
		if g.Cell(row, col+i) != label {
			return false
		}
	}
	return true
}
