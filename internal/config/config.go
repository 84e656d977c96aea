// Package config loads demokit configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all demokit configuration.
type Config struct {
	// Demo settings
	Demo DemoConfig `yaml:"demo"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DemoConfig configures the demonstration runner.
type DemoConfig struct {
	// Delay before the closing message, as a duration string.
	Delay string `yaml:"delay"`

	// Optional path to a YAML roster of people to greet.
	RosterPath string `yaml:"roster_path"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Demo: DemoConfig{
			Delay: "1s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults; environment overrides are
// applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if delay := os.Getenv("DEMOKIT_DELAY"); delay != "" {
		c.Demo.Delay = delay
	}
	if roster := os.Getenv("DEMOKIT_ROSTER"); roster != "" {
		c.Demo.RosterPath = roster
	}
	if level := os.Getenv("DEMOKIT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// GetDelay returns the demo delay as a duration.
// Unparseable values fall back to one second.
func (c *Config) GetDelay() time.Duration {
	d, err := time.ParseDuration(c.Demo.Delay)
	if err != nil {
		return time.Second
	}
	return d
}
