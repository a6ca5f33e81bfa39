package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shub/pkg/config"
	"shub/pkg/github"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Validate credentials and show the authenticated user",
	Long: `Validate the configured token against the GitHub API and print the
authenticated user and the token's scopes.

Fails when the token does not authenticate, belongs to a different user
than SHUB_USERNAME, or is missing the repo scope.`,
	Args: cobra.NoArgs,
	RunE: runWhoami,
}

func runWhoami(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w\n\n%s", err, github.GetAuthInstructions())
	}

	am, err := github.NewAuthManager(cfg.Token)
	if err != nil {
		return err
	}

	info, err := am.ValidateToken(context.Background(), cfg.Username)
	if err != nil {
		if info != nil {
			fmt.Printf("Authenticated as %s.\n", info.User)
		}
		return err
	}

	fmt.Printf("Authenticated as %s.\n", info.User)
	if len(info.Scopes) > 0 {
		fmt.Printf("Token scopes: %s.\n", strings.Join(info.Scopes, ", "))
	}
	return nil
}
