// Package config provides configuration parsing for systop.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the systop configuration.
type Config struct {
	// Monitor holds metric acquisition settings.
	Monitor MonitorConfig `yaml:"monitor"`

	// Display holds TUI rendering settings.
	Display DisplayConfig `yaml:"display"`

	// Log holds logging settings.
	Log LogConfig `yaml:"log"`
}

// MonitorConfig holds metric acquisition settings.
type MonitorConfig struct {
	// PollInterval is the cadence of periodic snapshot acquisition.
	PollInterval Duration `yaml:"poll_interval"`

	// HistorySamples is the per-series chart history capacity.
	HistorySamples int `yaml:"history_samples"`
}

// DisplayConfig holds TUI rendering settings.
type DisplayConfig struct {
	// TickInterval is the UI housekeeping tick (freshness text, transient
	// status expiry). Redraws are otherwise event-driven.
	TickInterval Duration `yaml:"tick_interval"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// File is the log output path. Empty disables logging; the TUI owns
	// the terminal, so there is no stderr logging while it runs.
	File string `yaml:"file"`

	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Duration wraps time.Duration so YAML values can be written as "1s",
// "250ms", or "2m".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return d.Duration.String(), nil
}

// Bounds for normalize. Intervals outside these are clamped, not rejected,
// so a sloppy config file cannot produce a busy-looping or frozen dashboard.
const (
	minPollInterval = 250 * time.Millisecond
	maxPollInterval = 5 * time.Minute
	minTickInterval = 100 * time.Millisecond
	maxTickInterval = 2 * time.Second
	minHistory      = 10
	maxHistory      = 600
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Monitor: MonitorConfig{
			PollInterval:   Duration{1 * time.Second},
			HistorySamples: 60,
		},
		Display: DisplayConfig{
			TickInterval: Duration{500 * time.Millisecond},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.config/systop/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "systop", "config.yaml"), nil
}

// Load reads the config from the default path. A missing file is not an
// error; the defaults are returned.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFromFile(path)
}

// LoadFromFile reads and validates the config at the given path.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps out-of-range values to their nearest bound and fills
// zero values from the defaults.
func (c *Config) normalize() {
	def := Default()

	if c.Monitor.PollInterval.Duration == 0 {
		c.Monitor.PollInterval = def.Monitor.PollInterval
	}
	c.Monitor.PollInterval.Duration = clampDuration(
		c.Monitor.PollInterval.Duration, minPollInterval, maxPollInterval)

	if c.Monitor.HistorySamples == 0 {
		c.Monitor.HistorySamples = def.Monitor.HistorySamples
	}
	if c.Monitor.HistorySamples < minHistory {
		c.Monitor.HistorySamples = minHistory
	}
	if c.Monitor.HistorySamples > maxHistory {
		c.Monitor.HistorySamples = maxHistory
	}

	if c.Display.TickInterval.Duration == 0 {
		c.Display.TickInterval = def.Display.TickInterval
	}
	c.Display.TickInterval.Duration = clampDuration(
		c.Display.TickInterval.Duration, minTickInterval, maxTickInterval)

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Log.Level = def.Log.Level
	}
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}
