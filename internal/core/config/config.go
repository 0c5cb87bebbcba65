// Package config handles configuration loading and validation for
// tally.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultHistoryFile is the history file name used when neither the
// config file nor the environment names one.
const DefaultHistoryFile = "history.csv"

// DefaultDivisionPrecision is the number of fractional digits kept for
// non-terminating quotients.
const DefaultDivisionPrecision = 16

// Config holds the application configuration.
type Config struct {
	// HistoryFile is the name of the history CSV inside DataDir.
	HistoryFile string `yaml:"history_file"`
	// DivisionPrecision is the number of fractional digits kept when a
	// quotient does not terminate.
	DivisionPrecision int `yaml:"division_precision"`

	DataDir string `yaml:"-"` // set by caller, not from config file
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		HistoryFile:       DefaultHistoryFile,
		DivisionPrecision: DefaultDivisionPrecision,
	}
}

// Load reads configuration from the given path and sets the data
// directory. If configPath is empty or doesn't exist, returns defaults
// with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration
// options.
func (c *Config) applyDefaults() {
	if c.HistoryFile == "" {
		c.HistoryFile = DefaultHistoryFile
	}
	if c.DivisionPrecision == 0 {
		c.DivisionPrecision = DefaultDivisionPrecision
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.HistoryFile == "" {
		return fmt.Errorf("history_file cannot be empty")
	}

	if filepath.Base(c.HistoryFile) != c.HistoryFile {
		return fmt.Errorf("history_file must be a bare file name, got %q", c.HistoryFile)
	}

	if c.DivisionPrecision < 1 || c.DivisionPrecision > 64 {
		return fmt.Errorf("division_precision must be between 1 and 64, got %d", c.DivisionPrecision)
	}

	return nil
}

// HistoryPath returns the full path of the history CSV file.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, c.HistoryFile)
}
