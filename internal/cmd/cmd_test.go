package cmd

import (
	"sync"
	"testing"

	"shub/pkg/config"
	"shub/pkg/github"
)

// mockClient implements github.APIClient for command tests. Call recording
// is mutex-guarded because several commands fan out concurrently.
type mockClient struct {
	mu sync.Mutex

	settings    *github.RepositorySettings
	settingsErr error

	updateErr    map[string]error
	updatedRepos []string
	updatedWith  *github.RepositorySettings

	ownedRepos   []github.Repository
	starredRepos []github.Repository
	issues       []github.Issue
	listErr      error

	workflowRuns []github.WorkflowRun
	deleteErr    error
	deletedRuns  []int64

	latestCommits map[string]*github.Commit
	checkRuns     map[string][]github.CheckRun
}

func (m *mockClient) GetRepositorySettings(owner, name string) (*github.RepositorySettings, error) {
	if m.settingsErr != nil {
		return nil, m.settingsErr
	}
	return m.settings, nil
}

func (m *mockClient) UpdateRepositorySettings(owner, name string, settings *github.RepositorySettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	repo := owner + "/" + name
	if err, ok := m.updateErr[repo]; ok {
		return err
	}
	m.updatedRepos = append(m.updatedRepos, repo)
	m.updatedWith = settings
	return nil
}

func (m *mockClient) ListOwnedRepositories() ([]github.Repository, error) {
	return m.ownedRepos, m.listErr
}

func (m *mockClient) ListStarredRepositories() ([]github.Repository, error) {
	return m.starredRepos, m.listErr
}

func (m *mockClient) ListAssignedIssues() ([]github.Issue, error) {
	return m.issues, m.listErr
}

func (m *mockClient) ListWorkflowRuns(owner, name string) ([]github.WorkflowRun, error) {
	return m.workflowRuns, m.listErr
}

func (m *mockClient) DeleteWorkflowRun(owner, name string, runID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedRuns = append(m.deletedRuns, runID)
	return nil
}

func (m *mockClient) GetLatestCommit(owner, name string) (*github.Commit, error) {
	return m.latestCommits[owner+"/"+name], nil
}

func (m *mockClient) ListCheckRuns(owner, name, ref string) ([]github.CheckRun, error) {
	return m.checkRuns[owner+"/"+name], nil
}

var _ github.APIClient = (*mockClient)(nil)

// stubClient routes setupApp at the mock and provides credentials through
// the environment.
func stubClient(t *testing.T, mock github.APIClient) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("SHUB_USERNAME", "kafji")
	t.Setenv("SHUB_TOKEN", "test-token")
	t.Setenv("SHUB_API_URL", "")
	t.Setenv("SHUB_LOG_LEVEL", "")

	orig := newAPIClient
	newAPIClient = func(*config.Config) (github.APIClient, error) {
		return mock, nil
	}
	t.Cleanup(func() { newAPIClient = orig })
}
