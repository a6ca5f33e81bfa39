package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"shub/pkg/config"
	"shub/pkg/github"
)

// newAPIClient builds the GitHub client from configuration. Tests replace
// it with a stub.
var newAPIClient = func(cfg *config.Config) (github.APIClient, error) {
	if cfg.APIURL != "" {
		return github.NewClientWithBaseURL(cfg.Token, cfg.APIURL)
	}
	return github.NewClient(cfg.Token), nil
}

// setupApp loads configuration, configures logging, and builds the API
// client shared by all commands.
func setupApp() (*config.Config, github.APIClient, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w\n\n%s", err, github.GetAuthInstructions())
	}

	configureLogging(cfg.LogLevel)

	client, err := newAPIClient(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return cfg, client, nil
}

func configureLogging(level string) {
	logrus.SetLevel(logrus.WarnLevel)
	if level == "" {
		return
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("level", level).Warn("unknown log level, using warning")
		return
	}
	logrus.SetLevel(parsed)
}
