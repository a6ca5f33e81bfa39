package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shub/internal/store"
	"shub/pkg/github"
)

func TestRefreshDashboard(t *testing.T) {
	mock := &mockClient{
		ownedRepos: []github.Repository{
			{Owner: "kafji", Name: "shub"},
			{Owner: "kafji", Name: "quiet"},
			{Owner: "kafji", Name: "forked", Fork: true},
		},
		latestCommits: map[string]*github.Commit{
			"kafji/shub": {SHA: "abc123"},
			// kafji/quiet has no commits.
		},
		checkRuns: map[string][]github.CheckRun{
			"kafji/shub": {
				{Name: "build", Status: "completed", Conclusion: "success"},
				{Name: "lint", Status: "completed", Conclusion: "failure"},
			},
		},
	}

	st, err := store.OpenInMemory()
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, refreshDashboard(mock, st, "kafji"))

	repos, err := st.DashboardRepositories("kafji")
	require.NoError(t, err)
	require.Len(t, repos, 2)

	byName := map[string]store.DashboardRepo{}
	for _, r := range repos {
		byName[r.Name] = r
	}

	require.NotNil(t, byName["shub"].BuildStatus)
	assert.Equal(t, github.BuildFailure, *byName["shub"].BuildStatus)
	assert.Nil(t, byName["quiet"].BuildStatus)
}

func TestFetchBuildStatus(t *testing.T) {
	mock := &mockClient{
		latestCommits: map[string]*github.Commit{
			"kafji/shub": {SHA: "abc123"},
		},
		checkRuns: map[string][]github.CheckRun{
			"kafji/shub": {
				{Name: "build", Status: "completed", Conclusion: "success"},
			},
		},
	}

	status, found, err := fetchBuildStatus(mock, "kafji", "shub")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, github.BuildSuccess, status)
}

func TestFetchBuildStatusEmptyRepository(t *testing.T) {
	mock := &mockClient{}

	_, found, err := fetchBuildStatus(mock, "kafji", "empty")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFetchBuildStatusNoCheckRuns(t *testing.T) {
	mock := &mockClient{
		latestCommits: map[string]*github.Commit{
			"kafji/plain": {SHA: "abc123"},
		},
	}

	_, found, err := fetchBuildStatus(mock, "kafji", "plain")
	require.NoError(t, err)
	assert.False(t, found)
}
