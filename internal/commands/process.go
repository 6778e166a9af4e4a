package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ledgerize-dev/ledgerize/internal/batch"
	"github.com/ledgerize-dev/ledgerize/internal/config"
	"github.com/ledgerize-dev/ledgerize/internal/export"
	"github.com/ledgerize-dev/ledgerize/internal/grid"
	"github.com/ledgerize-dev/ledgerize/internal/runlog"
)

func newProcessCommand() *cobra.Command {
	var cfgPath string
	var refYear int

	cmd := &cobra.Command{
		Use:   "process [file...]",
		Short: "Convert statement workbooks into ledger workbooks",
		Long: `Process converts bank statement workbooks into normalized ledger
workbooks. Files may be given explicitly; with no arguments, the configured
input directory is scanned for matching workbooks.

Each file is handled independently: a malformed or headerless file is
reported and skipped, and the batch continues with the rest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cfgPath, args, refYear)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "ledgerize.yaml", "configuration file")
	cmd.Flags().IntVar(&refYear, "ref-year", 0, "reference year for two-digit date expansion (0 = current year)")

	return cmd
}

func runProcess(cfgPath string, paths []string, refYear int) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	root := filepath.Dir(cfgPath)

	if len(paths) == 0 {
		paths, err = discoverStatements(filepath.Join(root, cfg.Input.Dir), cfg.Input.Pattern)
		if err != nil {
			return fmt.Errorf("discovering statements: %w", err)
		}
	}
	if len(paths) == 0 {
		fmt.Println("No statement files found.")
		return nil
	}

	outDir := cfg.Output.Dir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(root, outDir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	orch := &batch.Orchestrator{
		Load:    grid.LoadWorkbook,
		Out:     &export.Writer{Dir: outDir, Widths: cfg.Output.ColumnWidths},
		RefYear: refYear,
	}

	runID := uuid.NewString()
	results := orch.Run(paths)

	var processed, skipped, failed int
	entries := make([]runlog.Entry, 0, len(results))
	for _, res := range results {
		entries = append(entries, logEntry(runID, res))

		name := filepath.Base(res.Path)
		switch {
		case res.Skipped:
			skipped++
			fmt.Printf("  - %s: header not found, skipped\n", name)
		case res.Err != nil:
			failed++
			fmt.Printf("  ✗ %s: %v\n", name, res.Err)
		default:
			processed++
			fmt.Printf("  ✓ %s -> %s (%d records, dr %s, cr %s)\n",
				name, filepath.Base(res.Output), len(res.Records),
				res.TotalDr.StringFixed(2), res.TotalCr.StringFixed(2))
		}
	}

	if err := runlog.Append(root, entries); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write run log: %v\n", err)
	}

	fmt.Printf("\nProcessed %d, skipped %d, failed %d (run %s)\n", processed, skipped, failed, runID)
	return nil
}

func logEntry(runID string, res batch.Result) runlog.Entry {
	e := runlog.Entry{
		Timestamp: time.Now(),
		RunID:     runID,
		File:      filepath.Base(res.Path),
		MOP:       res.MOP,
		Records:   len(res.Records),
		Status:    runlog.StatusOK,
	}
	switch {
	case res.Skipped:
		e.Status = runlog.StatusSkipped
		e.Reason = res.Err.Error()
	case res.Err != nil:
		e.Status = runlog.StatusFailed
		e.Reason = res.Err.Error()
	}
	return e
}

// discoverStatements returns workbook paths in dir whose base names match
// pattern, in directory order.
func discoverStatements(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading input dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		matched, err := filepath.Match(pattern, e.Name())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if matched {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}
