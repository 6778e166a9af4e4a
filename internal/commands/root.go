package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerize-dev/ledgerize/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledgerize",
		Short:   "Convert bank statement workbooks into normalized ledger workbooks",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newProcessCommand())

	return rootCmd
}
