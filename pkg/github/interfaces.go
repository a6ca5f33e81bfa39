package github

// APIClient defines the interface for GitHub API operations used by the
// commands. Tests substitute a mock implementation.
type APIClient interface {
	// Repository settings operations
	GetRepositorySettings(owner, name string) (*RepositorySettings, error)
	UpdateRepositorySettings(owner, name string, settings *RepositorySettings) error

	// Listing operations
	ListOwnedRepositories() ([]Repository, error)
	ListStarredRepositories() ([]Repository, error)
	ListAssignedIssues() ([]Issue, error)

	// Workflow run operations
	ListWorkflowRuns(owner, name string) ([]WorkflowRun, error)
	DeleteWorkflowRun(owner, name string, runID int64) error

	// Commit status operations
	GetLatestCommit(owner, name string) (*Commit, error)
	ListCheckRuns(owner, name, ref string) ([]CheckRun, error)
}

var _ APIClient = (*Client)(nil)
