package batch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerize-dev/ledgerize/internal/grid"
	"github.com/ledgerize-dev/ledgerize/internal/locate"
	"github.com/ledgerize-dev/ledgerize/internal/model"
	"github.com/ledgerize-dev/ledgerize/internal/tag"
)

// statementGrids builds a one-sheet workbook: a title row, the header
// template, then the given data rows (template column order).
func statementGrids(dataRows ...[]string) []grid.Grid {
	rows := [][]string{{"Account Statement"}}
	header := make([]string, len(model.HeaderTemplate))
	copy(header, model.HeaderTemplate[:])
	rows = append(rows, header)
	rows = append(rows, dataRows...)
	return []grid.Grid{grid.FromRows("Sheet1", rows)}
}

type fakeWriter struct {
	wrote []string
	fail  bool
}

func (w *fakeWriter) Write(src string, records []model.TransactionRecord) (string, error) {
	if w.fail {
		return "", errors.New("disk full")
	}
	w.wrote = append(w.wrote, src)
	return src + ".ledger.xlsx", nil
}

func loaderFor(files map[string][]grid.Grid) GridLoader {
	return func(path string) ([]grid.Grid, error) {
		grids, ok := files[path]
		if !ok {
			return nil, errors.New("no such file")
		}
		return grids, nil
	}
}

func TestRun_TransformsRows(t *testing.T) {
	files := map[string][]grid.Grid{
		"HDFC_DC_JohnDoe_240919.xlsx": statementGrids(
			[]string{"05/06/49", "UPI PAYMENT", "REF1", "05/06/49", "100.00", "", "900.00"},
			[]string{"06/06/49", "ATM RESET FEE", "REF2", "06/06/49", "", "50.00", "950.00"},
		),
	}
	w := &fakeWriter{}
	orch := &Orchestrator{Load: loaderFor(files), Out: w, RefYear: 2025}

	results := orch.Run([]string{"HDFC_DC_JohnDoe_240919.xlsx"})
	require.Len(t, results, 1)

	res := results[0]
	require.NoError(t, res.Err)
	assert.Equal(t, "HDFC_DC_JohnDoe", res.MOP)
	require.Len(t, res.Records, 2)

	first := res.Records[0]
	assert.Equal(t, "05/06/2049", first.Date)
	assert.Equal(t, "UPI PAYMENT", first.Narration)
	assert.Equal(t, "HDFC_DC_JohnDoe", first.MOP)
	assert.Equal(t, "100.00", first.AmtDr)
	assert.Equal(t, "", first.Item)

	second := res.Records[1]
	assert.Equal(t, "RESET", second.Item)
	assert.Equal(t, "50.00", second.AmtCr)

	assert.Equal(t, "HDFC_DC_JohnDoe_240919.xlsx.ledger.xlsx", res.Output)
	assert.Equal(t, []string{"HDFC_DC_JohnDoe_240919.xlsx"}, w.wrote)
}

func TestRun_FailureIsolation(t *testing.T) {
	good := statementGrids(
		[]string{"01/01/25", "UPI PAYMENT", "", "01/01/25", "10.00", "", "90.00"},
	)
	noHeader := []grid.Grid{grid.FromRows("Sheet1", [][]string{{"nothing here"}})}

	files := map[string][]grid.Grid{
		"HDFC_DC_JohnDoe_01.xlsx": good,
		"HDFC_DC_JohnDoe_02.xlsx": noHeader,
		"HDFC_DC_JohnDoe_03.xlsx": good,
	}
	orch := &Orchestrator{Load: loaderFor(files), RefYear: 2025}

	results := orch.Run([]string{
		"HDFC_DC_JohnDoe_01.xlsx",
		"HDFC_DC_JohnDoe_02.xlsx",
		"HDFC_DC_JohnDoe_03.xlsx",
	})
	require.Len(t, results, 3)

	assert.Len(t, results[0].Records, 1)
	assert.Len(t, results[2].Records, 1)

	assert.True(t, results[1].Skipped)
	assert.ErrorIs(t, results[1].Err, locate.ErrHeaderNotFound)
	assert.Empty(t, results[1].Records)
}

func TestRun_MalformedFilename(t *testing.T) {
	orch := &Orchestrator{Load: loaderFor(nil), RefYear: 2025}

	results := orch.Run([]string{"HDFC_240919.xlsx"})
	require.Len(t, results, 1)

	var malformed tag.MalformedFilenameError
	assert.ErrorAs(t, results[0].Err, &malformed)
	assert.False(t, results[0].Skipped)
}

func TestRun_LoaderError(t *testing.T) {
	orch := &Orchestrator{Load: loaderFor(nil), RefYear: 2025}

	results := orch.Run([]string{"HDFC_DC_JohnDoe_01.xlsx"})
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestRun_WriterError(t *testing.T) {
	files := map[string][]grid.Grid{
		"HDFC_DC_JohnDoe_01.xlsx": statementGrids(
			[]string{"01/01/25", "UPI PAYMENT", "", "01/01/25", "10.00", "", "90.00"},
		),
	}
	orch := &Orchestrator{Load: loaderFor(files), Out: &fakeWriter{fail: true}, RefYear: 2025}

	results := orch.Run([]string{"HDFC_DC_JohnDoe_01.xlsx"})
	require.Len(t, results, 1)
	assert.ErrorContains(t, results[0].Err, "disk full")
}

func TestRun_BlankDataRowsSkipped(t *testing.T) {
	files := map[string][]grid.Grid{
		"HDFC_DC_JohnDoe_01.xlsx": statementGrids(
			[]string{"01/01/25", "UPI PAYMENT", "", "01/01/25", "10.00", "", "90.00"},
			[]string{"", "", ""},
			[]string{"02/01/25", "CARD PAYMENT", "", "02/01/25", "20.00", "", "70.00"},
		),
	}
	orch := &Orchestrator{Load: loaderFor(files), RefYear: 2025}

	results := orch.Run([]string{"HDFC_DC_JohnDoe_01.xlsx"})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	require.Len(t, results[0].Records, 2)
	assert.Equal(t, "UPI PAYMENT", results[0].Records[0].Narration)
	assert.Equal(t, "CARD PAYMENT", results[0].Records[1].Narration)
}

func TestRun_Totals(t *testing.T) {
	files := map[string][]grid.Grid{
		"HDFC_DC_JohnDoe_01.xlsx": statementGrids(
			[]string{"01/01/25", "A", "", "01/01/25", "1,500.50", "", ""},
			[]string{"02/01/25", "B", "", "02/01/25", "100.00", "", ""},
			[]string{"03/01/25", "C", "", "03/01/25", "", "2,000.00", ""},
			[]string{"04/01/25", "D", "", "04/01/25", "garbage", "", ""},
		),
	}
	orch := &Orchestrator{Load: loaderFor(files), RefYear: 2025}

	results := orch.Run([]string{"HDFC_DC_JohnDoe_01.xlsx"})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	assert.Equal(t, "1600.50", results[0].TotalDr.StringFixed(2))
	assert.Equal(t, "2000.00", results[0].TotalCr.StringFixed(2))

	// The unparsable amount still passes through on its record.
	assert.Equal(t, "garbage", results[0].Records[3].AmtDr)
}

func TestRun_MalformedWorkbook(t *testing.T) {
	files := map[string][]grid.Grid{
		"HDFC_DC_JohnDoe_01.xlsx": {},
	}
	orch := &Orchestrator{Load: loaderFor(files), RefYear: 2025}

	results := orch.Run([]string{"HDFC_DC_JohnDoe_01.xlsx"})
	require.Len(t, results, 1)

	var malformed grid.MalformedInputError
	assert.ErrorAs(t, results[0].Err, &malformed)
	assert.False(t, results[0].Skipped)
}
