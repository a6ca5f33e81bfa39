package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shub",
	Short: "Yet another GitHub CLI",
	Long: `Shub is a command-line tool for working with your own GitHub account:
listing owned and starred repositories, cleaning up workflow runs, keeping
repository merge settings in TOML files, and watching build statuses.

Authentication uses the SHUB_USERNAME and SHUB_TOKEN environment variables.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(reposCmd)
	rootCmd.AddCommand(starsCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(issuesCmd)
	rootCmd.AddCommand(whoamiCmd)
}
