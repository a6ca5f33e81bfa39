// Package render formats repository listings as line-oriented columnar
// output so the results stay filterable with standard text tools.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"shub/pkg/github"
)

const (
	visibilityColLen = 7
	nameColLen       = 30
	ownerColLen      = 15
	langColLen       = 10
	pushedColLen     = 14
	attrsColLen      = 15

	ownedDescColLen   = 40
	starredDescColLen = 60

	defaultTermWidth = 120
)

var (
	privateColor  = color.New(color.FgYellow)
	attrsColor    = color.New(color.FgCyan)
	successColor  = color.New(color.FgGreen)
	failureColor  = color.New(color.FgRed)
	progressColor = color.New(color.FgYellow)
)

// Ellipsize shortens text to at most max characters, flattening newlines
// and marking the cut with "..".
func Ellipsize(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}

	keep := runes[:max-2]
	for i, r := range keep {
		if r == '\n' {
			keep[i] = ' '
		}
	}

	return strings.TrimSpace(string(keep)) + ".."
}

// cell pads text to width, truncating when it overflows.
func cell(text string, width int) string {
	return fmt.Sprintf("%-*s", width, Ellipsize(text, width))
}

// TerminalWidth returns the width of the attached terminal, or a sensible
// default when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

// attrs renders the flags column (archived, fork).
func attrs(r *github.Repository) string {
	var parts []string
	if r.Archived {
		parts = append(parts, "archived")
	}
	if r.Fork {
		parts = append(parts, "fork")
	}
	return strings.Join(parts, ", ")
}

// OwnedRepoRow formats one row of `shub repos list`.
// Columns: visibility | name | description | pushed | language | attrs.
func OwnedRepoRow(r *github.Repository, short bool) string {
	visibility := r.Visibility()
	if r.Private {
		visibility = privateColor.Sprint(cell(visibility, visibilityColLen))
	} else {
		visibility = cell(visibility, visibilityColLen)
	}

	desc := r.Description
	if short {
		fixed := visibilityColLen + nameColLen + pushedColLen + langColLen + attrsColLen
		desc = cell(desc, descWidth(ownedDescColLen, fixed, TerminalWidth()))
	}

	cols := []string{
		visibility,
		cell(r.Name, nameColLen),
		desc,
		cell(Since(r.PushedAt), pushedColLen),
		cell(r.Language, langColLen),
		attrsColor.Sprint(cell(attrs(r), attrsColLen)),
	}
	return strings.Join(cols, " | ")
}

// StarredRepoRow formats one row of `shub stars`.
// Columns: name | description | owner | pushed | language | attrs.
func StarredRepoRow(r *github.Repository, short bool) string {
	desc := r.Description
	if short {
		fixed := nameColLen + ownerColLen + pushedColLen + langColLen + attrsColLen
		desc = cell(desc, descWidth(starredDescColLen, fixed, TerminalWidth()))
	}

	cols := []string{
		cell(r.Name, nameColLen),
		desc,
		cell(r.Owner, ownerColLen),
		cell(Since(r.PushedAt), pushedColLen),
		cell(r.Language, langColLen),
		attrsColor.Sprint(cell(attrs(r), attrsColLen)),
	}
	return strings.Join(cols, " | ")
}

// descWidth shrinks the description column on narrow terminals. otherCols
// is the summed width of the row's remaining columns.
func descWidth(preferred, otherCols, termWidth int) int {
	fixed := otherCols + 5*len(" | ")
	if available := termWidth - fixed; available > 0 && available < preferred {
		if available < 10 {
			return 10
		}
		return available
	}
	return preferred
}

// BuildStatusCell renders a build status with color.
func BuildStatusCell(status github.BuildStatus) string {
	switch status {
	case github.BuildSuccess:
		return successColor.Sprint(status.String())
	case github.BuildFailure:
		return failureColor.Sprint(status.String())
	case github.BuildInProgress:
		return progressColor.Sprint(status.String())
	default:
		return status.String()
	}
}

// IssueRow formats one row of `shub issues`.
func IssueRow(issue *github.Issue) string {
	kind := "issue"
	if issue.IsPullRequest {
		kind = "pull"
	}

	cols := []string{
		cell(issue.Repository, nameColLen),
		cell(fmt.Sprintf("#%d", issue.Number), 6),
		cell(kind, 5),
		cell(issue.Title, starredDescColLen),
		cell(Since(issue.UpdatedAt), pushedColLen),
	}
	return strings.Join(cols, " | ")
}
