package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"shub/pkg/github"
)

var actionsDeleteRunsCmd = &cobra.Command{
	Use:   "delete-runs <owner>/<repo>",
	Short: "Delete all workflow runs of a repository",
	Long: `Delete every workflow run recorded for a repository.

The repository argument takes a namespaced name, e.g. kafji/shub. The owner
part may be omitted, in which case the authenticated user is assumed.

Examples:
  shub actions delete-runs kafji/shub
  shub actions delete-runs shub`,
	Args: cobra.ExactArgs(1),
	RunE: runActionsDeleteRuns,
}

func init() {
	actionsCmd.AddCommand(actionsDeleteRunsCmd)
}

func runActionsDeleteRuns(_ *cobra.Command, args []string) error {
	cfg, client, err := setupApp()
	if err != nil {
		return err
	}

	repo := github.ParseRepoID(args[0]).WithDefaultOwner(cfg.Username)
	fmt.Printf("Deleting workflow runs in %s.\n", repo)

	runs, err := client.ListWorkflowRuns(repo.Owner, repo.Name)
	if err != nil {
		return fmt.Errorf("failed to list workflow runs: %w", err)
	}

	deleted := 0
	for _, run := range runs {
		if err := client.DeleteWorkflowRun(repo.Owner, repo.Name, run.ID); err != nil {
			return fmt.Errorf("failed to delete workflow run %d: %w", run.ID, err)
		}
		logrus.WithFields(logrus.Fields{
			"repo":   repo.String(),
			"run_id": run.ID,
		}).Debug("deleted workflow run")
		deleted++
	}

	fmt.Printf("%d workflow runs deleted.\n", deleted)
	return nil
}
