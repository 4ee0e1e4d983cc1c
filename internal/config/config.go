// Package config loads mailfind configuration from YAML with environment
// overrides. Everything has a sensible default; a missing config file is
// not an error.
package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mbastida/mailfind/internal/errors"
)

// DefaultConfigName is the config file looked up in the working directory.
const DefaultConfigName = ".mailfind.yaml"

// Config is the complete mailfind configuration.
type Config struct {
	// Mailbox is the path to the semicolon-separated mailbox file.
	Mailbox string `yaml:"mailbox"`

	// NoColor disables ANSI styling even on a TTY.
	NoColor bool `yaml:"no_color"`

	// MaxResults caps how many messages a listing prints (0 = unlimited).
	MaxResults int `yaml:"max_results"`

	// KeywordCacheSize is the capacity of the keyword result cache.
	KeywordCacheSize int `yaml:"keyword_cache_size"`

	// WatchDebounce is the quiet window before appended mailbox lines are
	// ingested in watch mode (e.g. "200ms").
	WatchDebounce string `yaml:"watch_debounce"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// LogFile is the path for JSON log output. Empty logs to stderr only.
	LogFile string `yaml:"log_file"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Mailbox:          "correos.txt",
		NoColor:          false,
		MaxResults:       0,
		KeywordCacheSize: 256,
		WatchDebounce:    "200ms",
		LogLevel:         "info",
	}
}

// Load reads the config file at path (or DefaultConfigName when path is
// empty), then applies environment overrides. A missing file yields the
// defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigName
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.New(errors.ErrCodeConfigInvalid, "malformed config file", err).
				WithDetail("path", path)
		}
	case os.IsNotExist(err):
		if explicit {
			return nil, errors.New(errors.ErrCodeConfigNotFound, "config file not found", err).
				WithDetail("path", path)
		}
	default:
		return nil, errors.New(errors.ErrCodeConfigInvalid, "cannot read config file", err).
			WithDetail("path", path)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides config fields from MAILFIND_* environment variables.
// Env vars take priority over the file, matching flag > env > file > default.
func (c *Config) applyEnv() {
	if v := os.Getenv("MAILFIND_MAILBOX"); v != "" {
		c.Mailbox = v
	}
	if v := os.Getenv("MAILFIND_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("MAILFIND_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxResults = n
		}
	}
	if v, ok := os.LookupEnv("NO_COLOR"); ok && v != "" {
		c.NoColor = true
	}
}

// Validate checks field ranges and formats.
func (c *Config) Validate() error {
	if c.MaxResults < 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "max_results must not be negative", nil)
	}
	if c.KeywordCacheSize < 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "keyword_cache_size must not be negative", nil)
	}
	if c.WatchDebounce != "" {
		if _, err := time.ParseDuration(c.WatchDebounce); err != nil {
			return errors.New(errors.ErrCodeConfigInvalid, "watch_debounce is not a duration", err)
		}
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return errors.New(errors.ErrCodeConfigInvalid, "unknown log_level", nil).
			WithDetail("log_level", c.LogLevel)
	}
	return nil
}

// DebounceWindow returns the parsed watch debounce duration.
func (c *Config) DebounceWindow() time.Duration {
	d, err := time.ParseDuration(c.WatchDebounce)
	if err != nil || d <= 0 {
		return 200 * time.Millisecond
	}
	return d
}
