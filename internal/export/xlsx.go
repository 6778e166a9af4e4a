package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ledgerize-dev/ledgerize/internal/model"
)

// sheetName is the single worksheet in every ledger workbook.
const sheetName = "Ledger"

// Writer writes normalized records to ledger workbooks under Dir.
type Writer struct {
	Dir    string
	Widths map[string]float64 // display widths keyed by output column label
}

// Write writes one ledger workbook for the given statement file, header row
// first, records in order. Returns the output path.
func (w *Writer) Write(src string, records []model.TransactionRecord) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("naming sheet: %w", err)
	}

	header := toRow(model.OutputHeader)
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return "", fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("row %d: %w", i+2, err)
		}
		row := toRow(rec.Fields())
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return "", fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := w.setWidths(f); err != nil {
		return "", err
	}

	path := filepath.Join(w.Dir, outputName(src))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}

// setWidths applies configured display widths to their columns. Labels with
// no configured width keep the default.
func (w *Writer) setWidths(f *excelize.File) error {
	for i, label := range model.OutputHeader {
		width, ok := w.Widths[label]
		if !ok {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("setting width of %s: %w", col, err)
		}
	}
	return nil
}

// outputName maps HDFC_DC_JohnDoe_240919.xlsx -> HDFC_DC_JohnDoe_240919.ledger.xlsx.
func outputName(src string) string {
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".ledger.xlsx"
}

func toRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
