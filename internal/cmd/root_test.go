package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, parent *cobra.Command, name string) *cobra.Command {
	t.Helper()

	for _, cmd := range parent.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	t.Fatalf("command %q not registered under %q", name, parent.Name())
	return nil
}

func TestRootCommandRegistration(t *testing.T) {
	assert.Equal(t, "shub", rootCmd.Name())

	for _, name := range []string{"actions", "repos", "stars", "dashboard", "issues", "whoami"} {
		findCommand(t, rootCmd, name)
	}
}

func TestActionsSubcommands(t *testing.T) {
	actions := findCommand(t, rootCmd, "actions")
	findCommand(t, actions, "delete-runs")
}

func TestReposSubcommands(t *testing.T) {
	repos := findCommand(t, rootCmd, "repos")

	findCommand(t, repos, "list")
	findCommand(t, repos, "download-settings")
	findCommand(t, repos, "apply-settings")
}

func TestStarsFlags(t *testing.T) {
	require.NotNil(t, starsCmd.Flags().Lookup("lang"))
	require.NotNil(t, starsCmd.Flags().Lookup("short"))
}

func TestDashboardFlags(t *testing.T) {
	require.NotNil(t, dashboardCmd.Flags().Lookup("refresh"))
}
