// Package config loads TaskTally settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/awhite/tasktally/internal/timespan"
)

const (
	// DefaultFileName is the config file looked up in the working directory.
	DefaultFileName = ".tasktally.yml"

	// DefaultReportDir is where summary.md lands when nothing else is set.
	DefaultReportDir = "Report"
)

// ErrMissingToken indicates GITHUB_TOKEN is not set.
var ErrMissingToken = errors.New("GITHUB_TOKEN not configured")

// GitHub holds defaults for the range command's posting target.
type GitHub struct {
	Repo  string `yaml:"repo"`
	Issue int    `yaml:"issue"`
}

// Config stores the application settings.
type Config struct {
	ReportDir  string        `yaml:"report_dir"`
	DailyHours timespan.Band `yaml:"daily_hours"`
	GitHub     GitHub        `yaml:"github"`
}

// Load reads the YAML config at path, falling back to defaults when the file
// does not exist. A .env file in the working directory is loaded best-effort
// before any environment reads.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ReportDir:  DefaultReportDir,
		DailyHours: timespan.DefaultBand,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("could not read config file '%s': %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse YAML from '%s': %w", path, err)
	}

	if cfg.ReportDir == "" {
		cfg.ReportDir = DefaultReportDir
	}
	if (cfg.DailyHours == timespan.Band{}) {
		cfg.DailyHours = timespan.DefaultBand
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if c.GitHub.Repo == "" {
		c.GitHub.Repo = os.Getenv("GITHUB_REPOSITORY")
	}
}

// Token returns the GitHub token from the environment.
func Token() (string, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
