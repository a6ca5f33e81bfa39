package cmd

import (
	"github.com/spf13/cobra"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "GitHub repository commands",
	Long: `Commands for working with your repositories.

Available commands:
  list              - Print all owned repositories
  download-settings - Download repository settings into a TOML file
  apply-settings    - Apply repository settings from a TOML file`,
}

func init() {
	// Subcommands are added in their respective files
}
