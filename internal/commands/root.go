package commands

import (
	"github.com/spf13/cobra"

	"github.com/spendable-dev/spendable/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "spendable",
		Short:   "Available-to-allocate calculator for personal budgets",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newAvailableCommand())
	rootCmd.AddCommand(newExploreCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}
