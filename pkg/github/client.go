package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// Client implements the APIClient interface using the GitHub REST API.
type Client struct {
	client *github.Client
	ctx    context.Context
}

// NewClient creates a new GitHub API client with the provided token.
func NewClient(token string) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
		ctx:    ctx,
	}
}

// NewClientWithBaseURL creates a client pointed at a non-default API base
// URL, e.g. a GitHub Enterprise instance or a test server.
func NewClientWithBaseURL(token, baseURL string) (*Client, error) {
	c := NewClient(token)

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}
	c.client.BaseURL = u

	return c, nil
}

// GetRepositorySettings retrieves the merge-policy settings of a repository.
func (c *Client) GetRepositorySettings(owner, name string) (*RepositorySettings, error) {
	var repo *github.Repository

	err := WithRetry(func() error {
		var err error
		repo, _, err = c.client.Repositories.Get(c.ctx, owner, name)
		if err != nil {
			return WrapAPIError(err, fmt.Sprintf("repository %s/%s", owner, name))
		}
		return nil
	}, DefaultRetryConfig())

	if err != nil {
		return nil, err
	}

	return &RepositorySettings{
		AllowSquashMerge:    repo.AllowSquashMerge,
		AllowMergeCommit:    repo.AllowMergeCommit,
		AllowRebaseMerge:    repo.AllowRebaseMerge,
		AllowAutoMerge:      repo.AllowAutoMerge,
		DeleteBranchOnMerge: repo.DeleteBranchOnMerge,
	}, nil
}

// UpdateRepositorySettings applies the settings record to a repository.
// Only settings present in the record are sent.
func (c *Client) UpdateRepositorySettings(owner, name string, settings *RepositorySettings) error {
	repo := &github.Repository{
		AllowSquashMerge:    settings.AllowSquashMerge,
		AllowMergeCommit:    settings.AllowMergeCommit,
		AllowRebaseMerge:    settings.AllowRebaseMerge,
		AllowAutoMerge:      settings.AllowAutoMerge,
		DeleteBranchOnMerge: settings.DeleteBranchOnMerge,
	}

	return WithRetry(func() error {
		_, _, err := c.client.Repositories.Edit(c.ctx, owner, name, repo)
		if err != nil {
			return WrapAPIError(err, fmt.Sprintf("repository %s/%s", owner, name))
		}
		return nil
	}, DefaultRetryConfig())
}

// ListOwnedRepositories lists all repositories owned by the authenticated
// user, most recently pushed first.
func (c *Client) ListOwnedRepositories() ([]Repository, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Type:        "owner",
		Sort:        "pushed",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []Repository

	err := WithRetry(func() error {
		all = nil // Reset on retry
		opts.Page = 0

		for {
			repos, resp, err := c.client.Repositories.ListByAuthenticatedUser(c.ctx, opts)
			if err != nil {
				return WrapAPIError(err, "owned repositories")
			}

			for _, repo := range repos {
				all = append(all, convertRepository(repo))
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return nil
	}, DefaultRetryConfig())

	return all, err
}

// ListStarredRepositories lists all repositories starred by the
// authenticated user, most recently updated first.
func (c *Client) ListStarredRepositories() ([]Repository, error) {
	opts := &github.ActivityListStarredOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []Repository

	err := WithRetry(func() error {
		all = nil // Reset on retry
		opts.Page = 0

		for {
			starred, resp, err := c.client.Activity.ListStarred(c.ctx, "", opts)
			if err != nil {
				return WrapAPIError(err, "starred repositories")
			}

			for _, star := range starred {
				all = append(all, convertRepository(star.Repository))
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return nil
	}, DefaultRetryConfig())

	return all, err
}

// ListWorkflowRuns lists all workflow runs of a repository.
func (c *Client) ListWorkflowRuns(owner, name string) ([]WorkflowRun, error) {
	opts := &github.ListWorkflowRunsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []WorkflowRun

	err := WithRetry(func() error {
		all = nil // Reset on retry
		opts.Page = 0

		for {
			runs, resp, err := c.client.Actions.ListRepositoryWorkflowRuns(c.ctx, owner, name, opts)
			if err != nil {
				return WrapAPIError(err, fmt.Sprintf("workflow runs for %s/%s", owner, name))
			}

			for _, run := range runs.WorkflowRuns {
				all = append(all, WorkflowRun{
					ID:     run.GetID(),
					Name:   run.GetName(),
					Status: run.GetStatus(),
				})
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return nil
	}, DefaultRetryConfig())

	return all, err
}

// DeleteWorkflowRun deletes a single workflow run.
func (c *Client) DeleteWorkflowRun(owner, name string, runID int64) error {
	return WithRetry(func() error {
		_, err := c.client.Actions.DeleteWorkflowRun(c.ctx, owner, name, runID)
		if err != nil {
			return WrapAPIError(err, fmt.Sprintf("workflow run %d for %s/%s", runID, owner, name))
		}
		return nil
	}, DefaultRetryConfig())
}

// GetLatestCommit returns the most recent commit of a repository, or nil
// when the repository has no commits.
func (c *Client) GetLatestCommit(owner, name string) (*Commit, error) {
	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	}

	var commit *Commit

	err := WithRetry(func() error {
		commits, _, err := c.client.Repositories.ListCommits(c.ctx, owner, name, opts)
		if err != nil {
			return WrapAPIError(err, fmt.Sprintf("commits for %s/%s", owner, name))
		}

		commit = nil
		if len(commits) > 0 {
			commit = convertCommit(commits[0])
		}
		return nil
	}, DefaultRetryConfig())

	return commit, err
}

// ListCheckRuns lists the check runs attached to a git ref.
func (c *Client) ListCheckRuns(owner, name, ref string) ([]CheckRun, error) {
	opts := &github.ListCheckRunsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []CheckRun

	err := WithRetry(func() error {
		all = nil // Reset on retry
		opts.Page = 0

		for {
			result, resp, err := c.client.Checks.ListCheckRunsForRef(c.ctx, owner, name, ref, opts)
			if err != nil {
				return WrapAPIError(err, fmt.Sprintf("check runs for %s/%s@%s", owner, name, ref))
			}

			for _, run := range result.CheckRuns {
				all = append(all, CheckRun{
					ID:          run.GetID(),
					Name:        run.GetName(),
					Status:      run.GetStatus(),
					Conclusion:  run.GetConclusion(),
					StartedAt:   run.GetStartedAt().Time,
					CompletedAt: run.GetCompletedAt().Time,
				})
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return nil
	}, DefaultRetryConfig())

	return all, err
}

// ListAssignedIssues lists open issues and pull requests assigned to the
// authenticated user across all repositories.
func (c *Client) ListAssignedIssues() ([]Issue, error) {
	opts := &github.IssueListOptions{
		Filter:      "assigned",
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []Issue

	err := WithRetry(func() error {
		all = nil // Reset on retry
		opts.Page = 0

		for {
			// all=true hits /issues, covering org-owned repositories too.
			issues, resp, err := c.client.Issues.List(c.ctx, true, opts)
			if err != nil {
				return WrapAPIError(err, "assigned issues")
			}

			for _, issue := range issues {
				all = append(all, Issue{
					Number:        issue.GetNumber(),
					Title:         issue.GetTitle(),
					State:         issue.GetState(),
					Repository:    issue.GetRepository().GetFullName(),
					IsPullRequest: issue.IsPullRequest(),
					URL:           issue.GetHTMLURL(),
					UpdatedAt:     issue.GetUpdatedAt().Time,
				})
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return nil
	}, DefaultRetryConfig())

	return all, err
}

// convertRepository converts a GitHub API repository to the summary record.
func convertRepository(repo *github.Repository) Repository {
	return Repository{
		ID:          repo.GetID(),
		Name:        repo.GetName(),
		Owner:       repo.GetOwner().GetLogin(),
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		Private:     repo.GetPrivate(),
		Archived:    repo.GetArchived(),
		Fork:        repo.GetFork(),
		Language:    repo.GetLanguage(),
		PushedAt:    repo.GetPushedAt().Time,
	}
}

func convertCommit(commit *github.RepositoryCommit) *Commit {
	return &Commit{
		SHA:         commit.GetSHA(),
		Message:     commit.GetCommit().GetMessage(),
		AuthorName:  commit.GetCommit().GetAuthor().GetName(),
		AuthorEmail: commit.GetCommit().GetAuthor().GetEmail(),
		AuthoredAt:  commit.GetCommit().GetAuthor().GetDate().Time,
	}
}
