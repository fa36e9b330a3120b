package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/beanport/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "beanport",
		Short:   "Import bank CSV statements into a beancount ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newImportCommand(),
		newFormatsCommand(),
		newCategorizeCommand(),
	)

	return rootCmd
}
