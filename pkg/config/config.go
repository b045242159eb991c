package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	defaultFileMode   = "0644"
	defaultLogLevel   = "warn"
	defaultColorTheme = "auto"
)

type Config struct {
	// Permission bits for a newly created output file (octal)
	FileMode string `yaml:"file_mode"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
	Quiet      bool   `yaml:"quiet"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		FileMode:   defaultFileMode,
		LogLevel:   defaultLogLevel,
		ColorTheme: defaultColorTheme,
		Quiet:      false,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.FileMode == "" {
		cfg.FileMode = defaultFileMode
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.ColorTheme == "" {
		cfg.ColorTheme = defaultColorTheme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field values
func (c *Config) Validate() error {
	if _, err := parseMode(c.FileMode); err != nil {
		return fmt.Errorf("invalid file_mode %q: %w", c.FileMode, err)
	}
	if !isOneOf(c.LogLevel, "debug", "info", "warn", "error") {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if !isOneOf(c.ColorTheme, "auto", "dark", "light") {
		return fmt.Errorf("invalid color_theme %q", c.ColorTheme)
	}
	return nil
}

// Mode returns the output file permission bits, falling back to 0644
func (c *Config) Mode() os.FileMode {
	mode, err := parseMode(c.FileMode)
	if err != nil {
		return 0644
	}
	return mode
}

func parseMode(s string) (os.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, err
	}
	if v > 0777 {
		return 0, fmt.Errorf("mode out of range")
	}
	return os.FileMode(v), nil
}

func isOneOf(value string, valid ...string) bool {
	for _, v := range valid {
		if value == v {
			return true
		}
	}
	return false
}
