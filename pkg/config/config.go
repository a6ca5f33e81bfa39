package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "SHUB"

// Config holds the shub configuration. Values come from the config file
// first, then SHUB_* environment variables override them.
type Config struct {
	Username string `envconfig:"USERNAME" yaml:"username"`
	Token    string `envconfig:"TOKEN" yaml:"token"`
	APIURL   string `envconfig:"API_URL" yaml:"api_url"`
	LogLevel string `envconfig:"LOG_LEVEL" yaml:"log_level"`
}

// Load loads configuration from the default file location and the
// environment.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads configuration from a specific file path and the
// environment. A missing file is not an error; the environment alone may
// provide everything.
func LoadFromPath(path string) (*Config, error) {
	config := &Config{}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := envconfig.Process(envPrefix, config); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	return config, nil
}

// Validate checks that the credentials needed for API calls are present.
func (c *Config) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("GitHub username is required: set SHUB_USERNAME or username in the config file")
	}

	if c.Token == "" {
		return fmt.Errorf("GitHub token is required: set SHUB_TOKEN or token in the config file")
	}

	return nil
}

// GetConfigPath returns the default configuration file path.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".shub", "config.yaml"), nil
}

// DataDir returns the directory holding shub's local state, creating it
// when absent.
func DataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	dir := filepath.Join(base, "shub")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dir, nil
}

// DatabasePath returns the path of the dashboard cache database.
func DatabasePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "shub.db"), nil
}
