package github

import (
	"fmt"
	"strings"
)

// RepoID identifies a repository by owner and name. Owner may be empty,
// in which case the authenticated user is assumed.
type RepoID struct {
	Owner string
	Name  string
}

// ParseRepoID parses a repository argument of the form "owner/name".
// The owner part is optional; the split happens at the first slash, so
// "a/b/c" yields owner "a" and name "b/c".
func ParseRepoID(s string) RepoID {
	if i := strings.Index(s, "/"); i >= 0 {
		return RepoID{Owner: s[:i], Name: s[i+1:]}
	}
	return RepoID{Name: s}
}

// WithDefaultOwner fills in owner when the argument omitted it.
func (r RepoID) WithDefaultOwner(owner string) RepoID {
	if r.Owner == "" {
		r.Owner = owner
	}
	return r
}

func (r RepoID) String() string {
	if r.Owner == "" {
		return r.Name
	}
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}
