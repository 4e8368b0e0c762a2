package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/msto63/strkw/foundation/core/errors"
	"github.com/msto63/strkw/foundation/core/log"
)

// Environment variables read by the loader
const (
	EnvConfig    = "STRKW_CONFIG"
	EnvLogLevel  = "STRKW_LOG_LEVEL"
	EnvLogFormat = "STRKW_LOG_FORMAT"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Regex   RegexConfig   `toml:"regex"`
	Runner  RunnerConfig  `toml:"runner"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name"`
	Environment string `toml:"environment"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
}

// RegexConfig holds regular expression settings
type RegexConfig struct {
	MatchTimeout Duration `toml:"match_timeout"`
}

// RunnerConfig holds suite runner settings
type RunnerConfig struct {
	FailFast      bool     `toml:"fail_fast"`
	Color         *bool    `toml:"color"`
	WatchDebounce Duration `toml:"watch_debounce"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.ConfigError("load", fmt.Errorf("config file not found: %s", path), map[string]interface{}{"path": path})
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.ConfigError("parse", err, map[string]interface{}{"path": path})
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, errors.ConfigError("parse", fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")), map[string]interface{}{"path": path})
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads path when it is set. Without a path it looks at
// STRKW_CONFIG and the default locations and falls back to Default.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	path = os.Getenv(EnvConfig)
	if path == "" {
		defaultPaths := []string{
			"./strkw.toml",
			"./configs/strkw.toml",
		}
		if home, err := os.UserHomeDir(); err == nil {
			defaultPaths = append(defaultPaths, filepath.Join(home, ".config/strkw/config.toml"))
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "strkw"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Regex
	if c.Regex.MatchTimeout.Duration == 0 {
		c.Regex.MatchTimeout.Duration = 5 * time.Second
	}

	// Runner
	if c.Runner.Color == nil {
		color := true
		c.Runner.Color = &color
	}
	if c.Runner.WatchDebounce.Duration == 0 {
		c.Runner.WatchDebounce.Duration = 500 * time.Millisecond
	}
}

// applyEnvOverrides lets the environment override logging settings
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.General.LogLevel = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		c.General.LogFormat = format
	}
}

// Validate checks values the loader cannot check by type
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return errors.ConfigError("validate", err, map[string]interface{}{"field": "general.log_level"})
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		return errors.ConfigError("validate", err, map[string]interface{}{"field": "general.log_format"})
	}
	if c.Regex.MatchTimeout.Duration < 0 {
		return errors.ConfigError("validate", fmt.Errorf("match_timeout must not be negative"), map[string]interface{}{"field": "regex.match_timeout"})
	}
	if c.Runner.WatchDebounce.Duration < 0 {
		return errors.ConfigError("validate", fmt.Errorf("watch_debounce must not be negative"), map[string]interface{}{"field": "runner.watch_debounce"})
	}
	return nil
}

// ColorEnabled reports whether reports are colored
func (c *Config) ColorEnabled() bool {
	return c.Runner.Color == nil || *c.Runner.Color
}

// Logger builds the application logger from the general section
func (c *Config) Logger() *log.Logger {
	level, err := log.ParseLevel(c.General.LogLevel)
	if err != nil {
		level = log.DefaultLevel()
	}
	format, err := log.ParseFormat(c.General.LogFormat)
	if err != nil {
		format = log.FormatConsole
	}
	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   c.General.Name,
	})
}
