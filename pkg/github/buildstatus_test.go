package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveBuildStatus(t *testing.T) {
	tests := []struct {
		name     string
		runs     []CheckRun
		expected BuildStatus
		found    bool
	}{
		{
			name:  "no runs",
			runs:  nil,
			found: false,
		},
		{
			name:  "only queued runs carry no signal",
			runs:  []CheckRun{{Status: "queued"}, {Status: "queued"}},
			found: false,
		},
		{
			name:     "all successful",
			runs:     []CheckRun{{Status: "completed", Conclusion: "success"}},
			expected: BuildSuccess,
			found:    true,
		},
		{
			name: "failure outranks success",
			runs: []CheckRun{
				{Status: "completed", Conclusion: "success"},
				{Status: "completed", Conclusion: "failure"},
			},
			expected: BuildFailure,
			found:    true,
		},
		{
			name: "in progress outranks failure",
			runs: []CheckRun{
				{Status: "completed", Conclusion: "failure"},
				{Status: "in_progress"},
				{Status: "completed", Conclusion: "success"},
			},
			expected: BuildInProgress,
			found:    true,
		},
		{
			name:     "completed without success conclusion counts as failure",
			runs:     []CheckRun{{Status: "completed", Conclusion: "cancelled"}},
			expected: BuildFailure,
			found:    true,
		},
		{
			name:     "unknown status counts as failure",
			runs:     []CheckRun{{Status: "weird"}},
			expected: BuildFailure,
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, found := DeriveBuildStatus(tt.runs)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.expected, status)
			}
		})
	}
}

func TestBuildStatusStringRoundTrip(t *testing.T) {
	for _, status := range []BuildStatus{BuildSuccess, BuildFailure, BuildInProgress} {
		parsed, err := ParseBuildStatus(status.String())
		assert.NoError(t, err)
		assert.Equal(t, status, parsed)
	}
}

func TestParseBuildStatusUnknown(t *testing.T) {
	_, err := ParseBuildStatus("cancelled")
	assert.Error(t, err)
}
