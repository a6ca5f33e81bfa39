// Package github wraps the GitHub REST API operations used by shub.
// It provides a typed client over go-github for repository listings,
// workflow runs, check runs, and the merge-policy settings record that
// download-settings and apply-settings round-trip through TOML files.
package github
