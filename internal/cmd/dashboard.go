package cmd

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"shub/internal/store"
	"shub/pkg/config"
	"shub/pkg/github"
	"shub/pkg/render"
)

// pollConcurrency bounds how many repositories have their check runs
// fetched at once during a refresh.
const pollConcurrency = 2

var dashboardRefresh bool

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show owned repositories and their build statuses",
	Long: `Show a dashboard of owned repositories (excluding forks and archived
repositories) with the build status of their latest commit.

Statuses come from a local cache database. Pass --refresh to re-fetch the
repository list and poll check runs before printing.

Examples:
  shub dashboard
  shub dashboard --refresh`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardRefresh, "refresh", false, "Re-fetch repositories and build statuses before printing")
}

func runDashboard(_ *cobra.Command, _ []string) error {
	cfg, client, err := setupApp()
	if err != nil {
		return err
	}

	dbPath, err := config.DatabasePath()
	if err != nil {
		return err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	repos, err := st.DashboardRepositories(cfg.Username)
	if err != nil {
		return err
	}

	// First run has nothing cached; refresh regardless of the flag.
	if dashboardRefresh || len(repos) == 0 {
		if err := refreshDashboard(client, st, cfg.Username); err != nil {
			return err
		}
		repos, err = st.DashboardRepositories(cfg.Username)
		if err != nil {
			return err
		}
	}

	printDashboard(repos)
	return nil
}

// refreshDashboard re-fetches owned repositories and derives a build
// status per repository from the check runs of its latest commit.
func refreshDashboard(client github.APIClient, st *store.Store, username string) error {
	logrus.Info("updating repositories")

	repos, err := client.ListOwnedRepositories()
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}
	if err := st.PutRepositories(repos); err != nil {
		return err
	}

	dashRepos, err := st.DashboardRepositories(username)
	if err != nil {
		return err
	}

	logrus.WithField("count", len(dashRepos)).Info("updating build statuses")

	var mu sync.Mutex
	var statuses []store.RepoStatus
	var firstErr error

	p := pool.New().WithMaxGoroutines(pollConcurrency)
	for _, repo := range dashRepos {
		repo := repo
		p.Go(func() {
			status, found, err := fetchBuildStatus(client, repo.Owner, repo.Name)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			if found {
				statuses = append(statuses, store.RepoStatus{
					Owner:  repo.Owner,
					Name:   repo.Name,
					Status: status,
				})
			}
		})
	}
	p.Wait()

	if firstErr != nil {
		return firstErr
	}

	return st.SetBuildStatuses(statuses)
}

// fetchBuildStatus derives the build status of a repository's latest
// commit. Repositories with no commits or no check runs report no status.
func fetchBuildStatus(client github.APIClient, owner, name string) (github.BuildStatus, bool, error) {
	commit, err := client.GetLatestCommit(owner, name)
	if err != nil {
		return 0, false, err
	}
	if commit == nil {
		return 0, false, nil
	}

	runs, err := client.ListCheckRuns(owner, name, commit.SHA)
	if err != nil {
		return 0, false, err
	}

	status, found := github.DeriveBuildStatus(runs)
	logrus.WithFields(logrus.Fields{
		"repo":   owner + "/" + name,
		"status": status,
		"found":  found,
	}).Debug("derived build status")
	return status, found, nil
}

func printDashboard(repos []store.DashboardRepo) {
	maxName := 0
	for _, repo := range repos {
		if len(repo.Name) > maxName {
			maxName = len(repo.Name)
		}
	}

	for _, repo := range repos {
		status := ""
		if repo.BuildStatus != nil {
			status = render.BuildStatusCell(*repo.BuildStatus)
		}
		fmt.Printf("%-*s  %s\n", maxName, repo.Name, status)
	}
}
