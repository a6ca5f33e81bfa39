package github

import "time"

// Repository is the summary record used by list-style commands.
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Owner       string    `json:"owner"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	Private     bool      `json:"private"`
	Archived    bool      `json:"archived"`
	Fork        bool      `json:"fork"`
	Language    string    `json:"language"`
	PushedAt    time.Time `json:"pushed_at"`
}

// Visibility renders the private flag the way the list output shows it.
func (r *Repository) Visibility() string {
	if r.Private {
		return "private"
	}
	return "public"
}

// WorkflowRun is a single execution record of a GitHub Actions workflow.
type WorkflowRun struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Commit is a repository commit as returned by the commits API.
type Commit struct {
	SHA         string    `json:"sha"`
	Message     string    `json:"message"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	AuthoredAt  time.Time `json:"authored_at"`
}

// CheckRun is a CI check attached to a commit.
type CheckRun struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`     // queued, in_progress, completed
	Conclusion  string    `json:"conclusion"` // empty until completed
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// Issue is an issue or pull request assigned to the authenticated user.
type Issue struct {
	Number        int       `json:"number"`
	Title         string    `json:"title"`
	State         string    `json:"state"`
	Repository    string    `json:"repository"`
	IsPullRequest bool      `json:"is_pull_request"`
	URL           string    `json:"url"`
	UpdatedAt     time.Time `json:"updated_at"`
}
