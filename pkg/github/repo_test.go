package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRepoID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected RepoID
	}{
		{
			name:     "owner and name",
			input:    "kafji/shub",
			expected: RepoID{Owner: "kafji", Name: "shub"},
		},
		{
			name:     "missing owner",
			input:    "shub",
			expected: RepoID{Name: "shub"},
		},
		{
			name:     "double separator splits at first slash",
			input:    "kafji/sh/ub",
			expected: RepoID{Owner: "kafji", Name: "sh/ub"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseRepoID(tt.input))
		})
	}
}

func TestRepoIDWithDefaultOwner(t *testing.T) {
	assert.Equal(t,
		RepoID{Owner: "kafji", Name: "shub"},
		ParseRepoID("shub").WithDefaultOwner("kafji"))

	// Explicit owner wins over the default
	assert.Equal(t,
		RepoID{Owner: "other", Name: "shub"},
		ParseRepoID("other/shub").WithDefaultOwner("kafji"))
}

func TestRepoIDString(t *testing.T) {
	assert.Equal(t, "kafji/shub", RepoID{Owner: "kafji", Name: "shub"}.String())
	assert.Equal(t, "shub", RepoID{Name: "shub"}.String())
}
