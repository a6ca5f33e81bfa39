package github

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// RepositorySettings is the merge-policy settings record that
// download-settings and apply-settings round-trip through a TOML file.
//
// Fields are pointers so that a settings file may carry only a subset:
// keys absent from the file are left untouched when applied.
type RepositorySettings struct {
	AllowSquashMerge    *bool `toml:"allow_squash_merge"`
	AllowMergeCommit    *bool `toml:"allow_merge_commit"`
	AllowRebaseMerge    *bool `toml:"allow_rebase_merge"`
	AllowAutoMerge      *bool `toml:"allow_auto_merge"`
	DeleteBranchOnMerge *bool `toml:"delete_branch_on_merge"`
}

// IsEmpty reports whether no setting is present at all.
func (s *RepositorySettings) IsEmpty() bool {
	return s.AllowSquashMerge == nil &&
		s.AllowMergeCommit == nil &&
		s.AllowRebaseMerge == nil &&
		s.AllowAutoMerge == nil &&
		s.DeleteBranchOnMerge == nil
}

// Validate validates the settings record.
func (s *RepositorySettings) Validate() error {
	if s.IsEmpty() {
		return &ValidationError{
			Field:   "settings",
			Message: "settings file does not contain any known repository setting",
		}
	}
	return nil
}

// LoadSettings parses a TOML settings document.
func LoadSettings(data []byte) (*RepositorySettings, error) {
	var settings RepositorySettings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// LoadSettingsFromFile reads and parses a TOML settings file.
func LoadSettingsFromFile(filename string) (*RepositorySettings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	return LoadSettings(data)
}

// SaveSettingsToFile writes the settings record as TOML.
func (s *RepositorySettings) SaveSettingsToFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	return nil
}
