package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"shub/pkg/render"
)

var reposListShort bool

var reposListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all owned repositories",
	Long: `Print every repository owned by the authenticated user, most recently
pushed first.

Output is line oriented, one repository per line:
  visibility | name | description | pushed | language | attrs

The attrs column carries the archived and fork flags, so the output
composes with standard text tools:
  shub repos list | grep -v archived
  shub repos list | grep private`,
	Args: cobra.NoArgs,
	RunE: runReposList,
}

func init() {
	reposListCmd.Flags().BoolVar(&reposListShort, "short", false, "Truncate long descriptions to fit the terminal")
	reposCmd.AddCommand(reposListCmd)
}

func runReposList(_ *cobra.Command, _ []string) error {
	_, client, err := setupApp()
	if err != nil {
		return err
	}

	repos, err := client.ListOwnedRepositories()
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}
	logrus.WithField("count", len(repos)).Debug("fetched owned repositories")

	for i := range repos {
		fmt.Println(render.OwnedRepoRow(&repos[i], reposListShort))
	}
	return nil
}
