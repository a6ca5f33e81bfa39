package cmd

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"shub/pkg/github"
)

// applyConcurrency bounds the fan-out when applying settings to several
// repositories at once.
const applyConcurrency = 4

var reposDownloadSettingsCmd = &cobra.Command{
	Use:   "download-settings <owner>/<repo> <path>",
	Short: "Download repository settings into a TOML file",
	Long: `Fetch the merge-policy settings of a repository and write them to a
TOML file.

The settings record covers:
  allow_squash_merge, allow_merge_commit, allow_rebase_merge,
  allow_auto_merge, delete_branch_on_merge

Example:
  shub repos download-settings kafji/shub ./gh-repo-settings.toml`,
	Args: cobra.ExactArgs(2),
	RunE: runReposDownloadSettings,
}

var reposApplySettingsCmd = &cobra.Command{
	Use:   "apply-settings <path> <owner>/<repo> [<owner>/<repo>...]",
	Short: "Apply repository settings from a TOML file",
	Long: `Read a TOML settings file and apply it to one or more repositories.
Repositories are processed concurrently and independently: a failure on one
does not stop the others.

Only keys present in the file are applied; absent keys leave the current
repository value untouched.

Example:
  shub repos apply-settings ./gh-repo-settings.toml kafji/shub kafji/dotfiles`,
	Args: cobra.MinimumNArgs(2),
	RunE: runReposApplySettings,
}

func init() {
	reposCmd.AddCommand(reposDownloadSettingsCmd)
	reposCmd.AddCommand(reposApplySettingsCmd)
}

func runReposDownloadSettings(_ *cobra.Command, args []string) error {
	cfg, client, err := setupApp()
	if err != nil {
		return err
	}

	repo := github.ParseRepoID(args[0]).WithDefaultOwner(cfg.Username)
	path := args[1]

	fmt.Printf("Downloading repository settings for %s to %s.\n", repo, path)

	settings, err := client.GetRepositorySettings(repo.Owner, repo.Name)
	if err != nil {
		return fmt.Errorf("failed to fetch settings: %w", err)
	}
	logrus.WithField("repo", repo.String()).Debug("fetched repository settings")

	if err := settings.SaveSettingsToFile(path); err != nil {
		return err
	}

	return nil
}

func runReposApplySettings(_ *cobra.Command, args []string) error {
	cfg, client, err := setupApp()
	if err != nil {
		return err
	}

	path := args[0]
	settings, err := github.LoadSettingsFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to load settings file: %w", err)
	}

	repos := make([]github.RepoID, 0, len(args)-1)
	for _, arg := range args[1:] {
		repos = append(repos, github.ParseRepoID(arg).WithDefaultOwner(cfg.Username))
	}

	var mu sync.Mutex
	var succeeded []string
	failed := make(map[string]error)

	p := pool.New().WithMaxGoroutines(applyConcurrency)
	for _, repo := range repos {
		repo := repo
		p.Go(func() {
			fmt.Printf("Applying repository settings from %s to %s.\n", path, repo)
			err := client.UpdateRepositorySettings(repo.Owner, repo.Name, settings)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed[repo.String()] = err
				return
			}
			succeeded = append(succeeded, repo.String())
		})
	}
	p.Wait()

	if len(failed) > 0 {
		for repo, err := range failed {
			fmt.Printf("✗ %s: %v\n", repo, err)
		}
		if len(succeeded) > 0 {
			return &github.PartialFailureError{Succeeded: succeeded, Failed: failed}
		}
		return fmt.Errorf("failed to apply settings to %d repositories", len(failed))
	}

	fmt.Printf("✓ Settings applied to %d repositories.\n", len(succeeded))
	return nil
}
