package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"shub/pkg/render"
)

var (
	starsLang  string
	starsShort bool
)

var starsCmd = &cobra.Command{
	Use:   "stars",
	Short: "List starred repositories",
	Long: `List every repository starred by the authenticated user, most recently
updated first.

The --lang flag filters by primary language. Prefix the pattern with ! to
negate it, i.e. !rust filters out Rust repositories.

Examples:
  shub stars
  shub stars --short
  shub stars --lang go
  shub stars --lang '!rust'`,
	Args: cobra.NoArgs,
	RunE: runStars,
}

func init() {
	starsCmd.Flags().StringVar(&starsLang, "lang", "", "Filter by primary language; prefix with ! to negate")
	starsCmd.Flags().BoolVar(&starsShort, "short", false, "Truncate long descriptions to fit the terminal")
}

// LangFilter matches a repository's primary language, optionally negated.
type LangFilter struct {
	Negation bool
	Lang     string
}

// ParseLangFilter parses a --lang argument. A leading ! negates the match.
func ParseLangFilter(s string) LangFilter {
	if strings.HasPrefix(s, "!") {
		return LangFilter{Negation: true, Lang: s[1:]}
	}
	return LangFilter{Lang: s}
}

// Matches reports whether a repository with the given primary language
// passes the filter. Matching is case-insensitive.
func (f LangFilter) Matches(language string) bool {
	if f.Lang == "" {
		return true
	}
	matched := strings.EqualFold(f.Lang, language)
	if f.Negation {
		return !matched
	}
	return matched
}

func runStars(_ *cobra.Command, _ []string) error {
	_, client, err := setupApp()
	if err != nil {
		return err
	}

	repos, err := client.ListStarredRepositories()
	if err != nil {
		return fmt.Errorf("failed to list starred repositories: %w", err)
	}
	logrus.WithField("count", len(repos)).Debug("fetched starred repositories")

	filter := ParseLangFilter(starsLang)
	for i := range repos {
		if !filter.Matches(repos[i].Language) {
			continue
		}
		fmt.Println(render.StarredRepoRow(&repos[i], starsShort))
	}
	return nil
}
