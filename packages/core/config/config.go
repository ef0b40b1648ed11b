package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/hitcall/packages/logger"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidTimeout indicates the timeout is not a positive duration.
	ErrInvalidTimeout = errors.New("timeout must be a positive duration")
	// ErrInvalidMaxRedirects indicates a negative redirect limit.
	ErrInvalidMaxRedirects = errors.New("maxRedirects cannot be negative")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// Config represents the hitcall configuration
type Config struct {
	Timeout         string `yaml:"timeout,omitempty"` // e.g. "10s"
	FollowRedirects *bool  `yaml:"followRedirects,omitempty"`
	MaxRedirects    int    `yaml:"maxRedirects,omitempty"`
	ValidateSSL     *bool  `yaml:"validateSSL,omitempty"`
	Proxy           string `yaml:"proxy,omitempty"`
	UserAgent       string `yaml:"userAgent,omitempty"`
	NoColor         *bool  `yaml:"noColor,omitempty"`
	LogLevel        string `yaml:"logLevel,omitempty"`
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetFollowRedirects returns the follow redirects setting, defaulting to true
func (c *Config) GetFollowRedirects() bool {
	return getBool(c.FollowRedirects, true)
}

// GetValidateSSL returns the validate SSL setting, defaulting to true
func (c *Config) GetValidateSSL() bool {
	return getBool(c.ValidateSSL, true)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// ParsedTimeout returns the timeout as a duration.
func (c *Config) ParsedTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(c.Timeout))
	if err != nil {
		return 0, fmt.Errorf("invalid timeout value %q: %w (use format like 10s, 1m, 500ms)", c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, c.Timeout)
	}
	return d, nil
}

// ParsedLogLevel returns the log level as a zap level.
func (c *Config) ParsedLogLevel() (zapcore.Level, error) {
	lvl, ok := logger.ParseLogLevel(c.LogLevel)
	if !ok {
		return lvl, fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, c.LogLevel)
	}
	return lvl, nil
}

// Validate checks the values that cannot be caught by decoding alone.
func (c *Config) Validate() error {
	if _, err := c.ParsedTimeout(); err != nil {
		return err
	}
	if c.MaxRedirects < 0 {
		return ErrInvalidMaxRedirects
	}
	if _, err := c.ParsedLogLevel(); err != nil {
		return err
	}
	return nil
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".hitcall.yaml",
	".hitcall.yml",
	"hitcall.yaml",
	"hitcall.yml",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search for config file in current directory
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Timeout != "" {
		result.Timeout = other.Timeout
	}
	if other.MaxRedirects > 0 {
		result.MaxRedirects = other.MaxRedirects
	}
	if other.Proxy != "" {
		result.Proxy = other.Proxy
	}
	if other.UserAgent != "" {
		result.UserAgent = other.UserAgent
	}
	if other.LogLevel != "" {
		result.LogLevel = other.LogLevel
	}

	// Boolean flags - only override if explicitly set in other config
	if other.FollowRedirects != nil {
		result.FollowRedirects = other.FollowRedirects
	}
	if other.ValidateSSL != nil {
		result.ValidateSSL = other.ValidateSSL
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	return &result
}
