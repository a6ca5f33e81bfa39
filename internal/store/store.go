// Package store persists the dashboard cache in a local SQLite database.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"shub/pkg/github"
)

// Migrations run on every open; all statements must be idempotent.
const migrations = `
	CREATE TABLE IF NOT EXISTS repositories (
		rid INTEGER PRIMARY KEY AUTOINCREMENT,
		owner TEXT NOT NULL,
		name TEXT NOT NULL,
		fork BOOL NOT NULL DEFAULT FALSE,
		archived BOOL NOT NULL DEFAULT FALSE,
		build_status TEXT NULL,
		UNIQUE (owner, name) ON CONFLICT REPLACE
	);
`

// Store is the dashboard cache database.
type Store struct {
	db *sql.DB
}

// Open opens (creating when absent) the cache database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// SQLite supports one writer; a single pooled connection also keeps
	// in-memory databases visible across queries.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// OpenInMemory opens a throwaway in-memory database.
func OpenInMemory() (*Store, error) {
	return Open(":memory:")
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(migrations); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DashboardRepo is a cached repository row with its last known build status.
type DashboardRepo struct {
	Owner       string
	Name        string
	BuildStatus *github.BuildStatus
}

// PutRepositories stores repositories, replacing existing rows with the
// same owner and name.
func (s *Store) PutRepositories(repos []github.Repository) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO repositories (owner, name, fork, archived) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, repo := range repos {
		if _, err := stmt.Exec(repo.Owner, repo.Name, repo.Fork, repo.Archived); err != nil {
			return fmt.Errorf("failed to store %s/%s: %w", repo.Owner, repo.Name, err)
		}
	}

	return tx.Commit()
}

// DashboardRepositories returns the cached repositories shown on the
// dashboard: owned by owner, not forks, not archived.
func (s *Store) DashboardRepositories(owner string) ([]DashboardRepo, error) {
	rows, err := s.db.Query(
		`SELECT owner, name, build_status
			FROM repositories
			WHERE owner = ? AND fork = FALSE AND archived = FALSE
			ORDER BY name`,
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query repositories: %w", err)
	}
	defer rows.Close()

	var repos []DashboardRepo
	for rows.Next() {
		var repo DashboardRepo
		var status sql.NullString

		if err := rows.Scan(&repo.Owner, &repo.Name, &status); err != nil {
			return nil, fmt.Errorf("failed to scan repository row: %w", err)
		}

		if status.Valid {
			parsed, err := github.ParseBuildStatus(status.String)
			if err != nil {
				return nil, fmt.Errorf("corrupt build status for %s/%s: %w", repo.Owner, repo.Name, err)
			}
			repo.BuildStatus = &parsed
		}

		repos = append(repos, repo)
	}

	return repos, rows.Err()
}

// RepoStatus pairs a repository with a freshly derived build status.
type RepoStatus struct {
	Owner  string
	Name   string
	Status github.BuildStatus
}

// SetBuildStatuses updates the stored build status of each repository.
func (s *Store) SetBuildStatuses(statuses []RepoStatus) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"UPDATE repositories SET build_status = ? WHERE owner = ? AND name = ?",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare update: %w", err)
	}
	defer stmt.Close()

	for _, rs := range statuses {
		if _, err := stmt.Exec(rs.Status.String(), rs.Owner, rs.Name); err != nil {
			return fmt.Errorf("failed to update %s/%s: %w", rs.Owner, rs.Name, err)
		}
	}

	return tx.Commit()
}
