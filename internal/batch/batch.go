package batch

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerize-dev/ledgerize/internal/grid"
	"github.com/ledgerize-dev/ledgerize/internal/locate"
	"github.com/ledgerize-dev/ledgerize/internal/model"
	"github.com/ledgerize-dev/ledgerize/internal/tag"
	"github.com/ledgerize-dev/ledgerize/internal/transform"
)

// GridLoader turns a statement file into worksheet grids.
type GridLoader func(path string) ([]grid.Grid, error)

// Writer receives the ordered records for one file and returns the path it
// wrote them to.
type Writer interface {
	Write(src string, records []model.TransactionRecord) (string, error)
}

// TransformError wraps an unexpected failure while mapping a file's rows.
type TransformError struct {
	Err error
}

func (e TransformError) Error() string {
	return fmt.Sprintf("transforming rows: %v", e.Err)
}

func (e TransformError) Unwrap() error { return e.Err }

// Result describes the outcome of processing one statement file.
type Result struct {
	Path    string
	MOP     string
	Records []model.TransactionRecord
	Output  string
	TotalDr decimal.Decimal
	TotalCr decimal.Decimal
	Skipped bool // header not found; reported, not an abort
	Err     error
}

// Orchestrator runs statement files through header location and row
// transformation, one file at a time, in order.
type Orchestrator struct {
	Load    GridLoader
	Out     Writer // nil skips output writing
	RefYear int    // reference year for date expansion; 0 means current year
}

// Run processes each path in order. Per-file failures are captured in that
// file's Result and never abort the batch.
func (o *Orchestrator) Run(paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		results = append(results, o.processFile(p))
	}
	return results
}

func (o *Orchestrator) processFile(path string) (res Result) {
	res.Path = path

	// The file boundary: nothing raised below may take down the batch.
	defer func() {
		if r := recover(); r != nil {
			res.Err = TransformError{Err: fmt.Errorf("%v", r)}
		}
	}()

	mop, err := tag.MOP(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.MOP = mop

	grids, err := o.Load(path)
	if err != nil {
		res.Err = err
		return res
	}

	loc, err := locate.Find(grids)
	if errors.Is(err, locate.ErrHeaderNotFound) {
		res.Skipped = true
		res.Err = err
		return res
	}
	if err != nil {
		res.Err = err
		return res
	}

	refYear := o.RefYear
	if refYear == 0 {
		refYear = time.Now().Year()
	}

	g := grids[loc.Sheet]
	for row := loc.Row; row <= g.MaxRow(); row++ {
		if g.RowBlank(row) {
			continue
		}
		raw := make(model.RawRow, len(model.HeaderTemplate))
		for i, label := range model.HeaderTemplate {
			raw[label] = g.Cell(row, loc.Column+i)
		}
		res.Records = append(res.Records, transform.Record(raw, mop, refYear))
	}

	res.TotalDr, res.TotalCr = totals(res.Records)

	if o.Out != nil {
		out, err := o.Out.Write(path, res.Records)
		if err != nil {
			res.Err = fmt.Errorf("writing output: %w", err)
			return res
		}
		res.Output = out
	}

	return res
}

// totals sums the debit and credit columns for the batch summary. Values
// that do not parse as numbers contribute nothing; the record fields
// themselves are never validated or altered.
func totals(records []model.TransactionRecord) (dr, cr decimal.Decimal) {
	for _, rec := range records {
		if d, err := parseAmount(rec.AmtDr); err == nil {
			dr = dr.Add(d)
		}
		if c, err := parseAmount(rec.AmtCr); err == nil {
			cr = cr.Add(c)
		}
	}
	return dr, cr
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Decimal{}, errors.New("empty amount")
	}
	return decimal.NewFromString(s)
}
