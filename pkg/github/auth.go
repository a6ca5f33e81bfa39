package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// AuthManager validates the personal access token before commands use it.
type AuthManager struct {
	client *github.Client
}

// NewAuthManager creates an authentication manager for the given token.
func NewAuthManager(token string) (*AuthManager, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token cannot be empty")
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	return &AuthManager{client: github.NewClient(tc)}, nil
}

// TokenInfo contains information about the authenticated token.
type TokenInfo struct {
	User   string   `json:"user"`
	Scopes []string `json:"scopes"`
}

// ValidateToken checks that the token authenticates, belongs to the
// expected user, and carries the repo scope.
func (am *AuthManager) ValidateToken(ctx context.Context, expectedUser string) (*TokenInfo, error) {
	user, resp, err := am.client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to validate GitHub token: %w", err)
	}

	var scopes []string
	if scopeHeader := resp.Header.Get("X-OAuth-Scopes"); scopeHeader != "" {
		scopes = strings.Split(strings.ReplaceAll(scopeHeader, " ", ""), ",")
	}

	info := &TokenInfo{
		User:   user.GetLogin(),
		Scopes: scopes,
	}

	if expectedUser != "" && !strings.EqualFold(info.User, expectedUser) {
		return info, fmt.Errorf("token belongs to %s but SHUB_USERNAME is %s", info.User, expectedUser)
	}

	if err := validateScopes(scopes); err != nil {
		return info, err
	}

	return info, nil
}

// validateScopes checks that the token has the scopes shub needs. Tokens
// issued as fine-grained PATs report no classic scopes, so an empty list
// is not rejected.
func validateScopes(scopes []string) error {
	if len(scopes) == 0 {
		return nil
	}

	for _, scope := range scopes {
		if scope == "repo" {
			return nil
		}
	}

	return fmt.Errorf("GitHub token is missing the repo scope, required to read and update repositories")
}

// GetAuthInstructions returns instructions for setting up authentication.
func GetAuthInstructions() string {
	return `GitHub authentication is required. Set the following environment variables:

   export SHUB_USERNAME="your_github_username"
   export SHUB_TOKEN="your_personal_access_token"

To create a personal access token:
1. Go to GitHub Settings > Developer settings > Personal access tokens
2. Click "Generate new token (classic)"
3. Select the repo scope (full control of private repositories)
4. Copy the generated token into SHUB_TOKEN

Note: deleting workflow runs additionally requires the workflow scope.`
}
