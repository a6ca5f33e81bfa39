package cmd

import (
	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "GitHub Actions commands",
	Long: `Commands for working with GitHub Actions workflow runs.

Available commands:
  delete-runs - Delete all workflow runs of a repository`,
}

func init() {
	// Subcommands are added in their respective files
}
