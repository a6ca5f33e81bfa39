package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"shub/pkg/render"
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "List issues and pull requests assigned to you",
	Long: `List open issues and pull requests assigned to the authenticated user
across all repositories, one per line:

  repository | number | kind | title | updated`,
	Args: cobra.NoArgs,
	RunE: runIssues,
}

func runIssues(_ *cobra.Command, _ []string) error {
	_, client, err := setupApp()
	if err != nil {
		return err
	}

	issues, err := client.ListAssignedIssues()
	if err != nil {
		return fmt.Errorf("failed to list assigned issues: %w", err)
	}
	logrus.WithField("count", len(issues)).Debug("fetched assigned issues")

	for i := range issues {
		fmt.Println(render.IssueRow(&issues[i]))
	}
	return nil
}
