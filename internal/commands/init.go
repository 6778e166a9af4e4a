package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerize-dev/ledgerize/internal/config"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledgerize project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}

	return cmd
}

func runInit(dir string) error {
	cfg := config.Default()

	// Create directory structure.
	dirs := []string{
		cfg.Input.Dir,
		cfg.Output.Dir,
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write ledgerize.yaml.
	if err := config.Save(filepath.Join(dir, "ledgerize.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write statements/.gitkeep so the input directory survives a clean checkout.
	if err := os.WriteFile(filepath.Join(dir, cfg.Input.Dir, ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Printf("Initialized ledgerize project at %s\n", dir)
	return nil
}
