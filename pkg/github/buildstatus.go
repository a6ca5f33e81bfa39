package github

import "fmt"

// BuildStatus is the aggregate CI state of a repository's latest commit.
type BuildStatus int

const (
	BuildSuccess BuildStatus = iota
	BuildFailure
	BuildInProgress
)

func (s BuildStatus) String() string {
	switch s {
	case BuildSuccess:
		return "success"
	case BuildFailure:
		return "failure"
	case BuildInProgress:
		return "in_progress"
	default:
		return fmt.Sprintf("BuildStatus(%d)", int(s))
	}
}

// ParseBuildStatus parses the string form produced by String.
func ParseBuildStatus(s string) (BuildStatus, error) {
	switch s {
	case "success":
		return BuildSuccess, nil
	case "failure":
		return BuildFailure, nil
	case "in_progress":
		return BuildInProgress, nil
	default:
		return 0, fmt.Errorf("unknown build status %q", s)
	}
}

// DeriveBuildStatus reduces the check runs of a commit into a single status.
// Queued runs carry no signal and are skipped. Across the remaining runs the
// most severe state wins: in_progress over failure over success. Returns
// false when no run produced a status.
func DeriveBuildStatus(runs []CheckRun) (BuildStatus, bool) {
	var status BuildStatus
	found := false

	for _, run := range runs {
		var s BuildStatus
		switch run.Status {
		case "queued":
			continue
		case "in_progress":
			s = BuildInProgress
		case "completed":
			if run.Conclusion == "success" {
				s = BuildSuccess
			} else {
				s = BuildFailure
			}
		default:
			s = BuildFailure
		}

		if !found || s > status {
			status = s
			found = true
		}
	}

	return status, found
}
