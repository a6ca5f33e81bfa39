package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shub/pkg/github"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shub.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.PutRepositories([]github.Repository{
		{Owner: "kafji", Name: "shub"},
	}))
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.migrate())
	require.NoError(t, s.migrate())
}

func TestPutRepositoriesReplacesOnOwnerName(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.PutRepositories([]github.Repository{
		{Owner: "kafji", Name: "shub"},
	}))
	require.NoError(t, s.SetBuildStatuses([]RepoStatus{
		{Owner: "kafji", Name: "shub", Status: github.BuildSuccess},
	}))

	// Re-storing the same repository replaces the row and drops the
	// cached status.
	require.NoError(t, s.PutRepositories([]github.Repository{
		{Owner: "kafji", Name: "shub"},
	}))

	repos, err := s.DashboardRepositories("kafji")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Nil(t, repos[0].BuildStatus)
}

func TestDashboardRepositoriesFiltersAndSorts(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.PutRepositories([]github.Repository{
		{Owner: "kafji", Name: "zebra"},
		{Owner: "kafji", Name: "attic"},
		{Owner: "kafji", Name: "forked", Fork: true},
		{Owner: "kafji", Name: "old", Archived: true},
		{Owner: "other", Name: "noise"},
	}))

	repos, err := s.DashboardRepositories("kafji")
	require.NoError(t, err)
	require.Len(t, repos, 2)

	assert.Equal(t, "attic", repos[0].Name)
	assert.Equal(t, "zebra", repos[1].Name)
}

func TestSetBuildStatuses(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.PutRepositories([]github.Repository{
		{Owner: "kafji", Name: "shub"},
		{Owner: "kafji", Name: "attic"},
	}))

	require.NoError(t, s.SetBuildStatuses([]RepoStatus{
		{Owner: "kafji", Name: "shub", Status: github.BuildFailure},
	}))

	repos, err := s.DashboardRepositories("kafji")
	require.NoError(t, err)
	require.Len(t, repos, 2)

	byName := map[string]DashboardRepo{}
	for _, r := range repos {
		byName[r.Name] = r
	}

	require.NotNil(t, byName["shub"].BuildStatus)
	assert.Equal(t, github.BuildFailure, *byName["shub"].BuildStatus)
	assert.Nil(t, byName["attic"].BuildStatus)
}

func TestDashboardRepositoriesEmpty(t *testing.T) {
	s := openTestStore(t)

	repos, err := s.DashboardRepositories("kafji")
	require.NoError(t, err)
	assert.Empty(t, repos)
}
