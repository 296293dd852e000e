package core

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig represents the CLI configuration file.
type AppConfig struct {
	// GitHub controls how the REST API is reached.
	GitHub GitHubConfig `yaml:"github"`
	// Log controls diagnostic output on stderr.
	Log LogConfig `yaml:"log"`
	// Output controls the report written to stdout.
	Output OutputConfig `yaml:"output"`
}

// GitHubConfig holds REST API settings.
type GitHubConfig struct {
	BaseURL    string `yaml:"base_url"`
	APIVersion string `yaml:"api_version"`
	UserAgent  string `yaml:"user_agent"`
	TimeoutMS  int64  `yaml:"timeout_ms"`
	TokenEnv   string `yaml:"token_env"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputConfig holds report settings.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// Timeout returns the request timeout as a duration.
func (c GitHubConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// DefaultAppConfig returns the configuration used when no file is given.
func DefaultAppConfig() AppConfig {
	var cfg AppConfig
	applyDefaults(&cfg)
	return cfg
}

// LoadAppConfig loads the configuration from a YAML file.
// It expands environment variables, applies defaults and validates the result.
func LoadAppConfig(path string) (AppConfig, error) {
	var cfg AppConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks enumerated and numeric settings.
func (c AppConfig) Validate() error {
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json, got %q", c.Output.Format)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.GitHub.TimeoutMS <= 0 {
		return fmt.Errorf("github.timeout_ms must be positive, got %d", c.GitHub.TimeoutMS)
	}
	return nil
}

func applyDefaults(cfg *AppConfig) {
	cfg.GitHub.BaseURL = strings.TrimSpace(cfg.GitHub.BaseURL)
	if cfg.GitHub.BaseURL == "" {
		cfg.GitHub.BaseURL = "https://api.github.com"
	}
	if cfg.GitHub.APIVersion == "" {
		cfg.GitHub.APIVersion = "2022-11-28"
	}
	if cfg.GitHub.UserAgent == "" {
		cfg.GitHub.UserAgent = "Gh-User-Activity"
	}
	if cfg.GitHub.TimeoutMS == 0 {
		cfg.GitHub.TimeoutMS = 10000
	}
	if cfg.GitHub.TokenEnv == "" {
		cfg.GitHub.TokenEnv = "TOKEN"
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
}
