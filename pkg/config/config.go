// Package config handles bucketgen configuration: source list locations,
// GitHub credentials and the pacing knobs for API access. Configuration is
// YAML with sensible defaults; every value can also be overridden by CLI
// flags.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wenget/bucketgen/pkg/errors"
)

// Defaults mirror the conventional bucket layout.
const (
	DefaultRepoSources   = "sources_repos.txt"
	DefaultScriptSources = "sources_scripts.txt"
	DefaultOutput        = "manifest.json"
)

// Config represents the application configuration.
type Config struct {
	// GitHubToken authenticates API requests. Falls back to the
	// GITHUB_TOKEN environment variable when empty.
	GitHubToken string `yaml:"github_token,omitempty"`

	// RepoSources is the file listing package repository URLs.
	RepoSources string `yaml:"repo_sources"`
	// ScriptSources is the file listing gist/raw script URLs. Optional.
	ScriptSources string `yaml:"script_sources"`
	// Output is the manifest file to write.
	Output string `yaml:"output"`

	// RateLimitDelaySeconds is the pause between successive API fetches.
	RateLimitDelaySeconds int `yaml:"rate_limit_delay"`
	// MaxRetries is the number of attempts per API request.
	MaxRetries int `yaml:"max_retries"`
	// RetryDelaySeconds is the pause between attempts.
	RetryDelaySeconds int `yaml:"retry_delay"`

	// CacheEnabled turns on on-disk caching of release listings.
	CacheEnabled bool `yaml:"cache_enabled"`
	// CacheTTLMinutes is how long cached release listings stay fresh.
	CacheTTLMinutes int `yaml:"cache_ttl"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// NoColor switches log output to the plain text format.
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		RepoSources:           DefaultRepoSources,
		ScriptSources:         DefaultScriptSources,
		Output:                DefaultOutput,
		RateLimitDelaySeconds: 1,
		MaxRetries:            3,
		RetryDelaySeconds:     5,
		CacheTTLMinutes:       60,
		LogLevel:              "info",
	}
}

// LoadConfig loads configuration from a YAML file, filling unset values with
// defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read config file %s", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	if c.RepoSources == "" {
		return errors.Wrap(errors.ErrConfigValidation, "repo_sources cannot be empty")
	}
	if c.Output == "" {
		return errors.Wrap(errors.ErrConfigValidation, "output cannot be empty")
	}
	if c.MaxRetries < 1 {
		return errors.Wrap(errors.ErrConfigValidation, "max_retries must be at least 1")
	}
	if c.RateLimitDelaySeconds < 0 || c.RetryDelaySeconds < 0 {
		return errors.Wrap(errors.ErrConfigValidation, "delays cannot be negative")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return errors.Wrapf(errors.ErrConfigValidation, "unknown log level %q", c.LogLevel)
	}
	return nil
}

// Token returns the configured GitHub token, falling back to the GITHUB_TOKEN
// environment variable.
func (c *Config) Token() string {
	if c.GitHubToken != "" {
		return c.GitHubToken
	}
	return os.Getenv("GITHUB_TOKEN")
}

// RateLimitDelay returns the inter-fetch pause as a duration.
func (c *Config) RateLimitDelay() time.Duration {
	return time.Duration(c.RateLimitDelaySeconds) * time.Second
}

// RetryDelay returns the retry pause as a duration.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds) * time.Second
}

// CacheTTL returns the release cache lifetime; zero when caching is off.
func (c *Config) CacheTTL() time.Duration {
	if !c.CacheEnabled {
		return 0
	}
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}
