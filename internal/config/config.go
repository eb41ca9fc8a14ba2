// Package config loads winctl settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "WINCTL_CONFIG"

// Config is the on-disk configuration.
type Config struct {
	Format     string           `yaml:"format"`
	Log        LogConfig        `yaml:"log"`
	Activation ActivationConfig `yaml:"activation"`
	Serve      ServeConfig      `yaml:"serve"`
	Wait       WaitConfig       `yaml:"wait"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type ActivationConfig struct {
	// LegacyLockTimeout keeps the foreground-lock timeout untouched during
	// escalation instead of zeroing it.
	LegacyLockTimeout bool `yaml:"legacy_lock_timeout"`
}

type ServeConfig struct {
	Transport string `yaml:"transport"`
	Port      int    `yaml:"port"`
}

type WaitConfig struct {
	IntervalMs int `yaml:"interval_ms"`
	TimeoutS   int `yaml:"timeout_s"`
}

// Default returns the built-in settings used when no file exists.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "warn"},
		Serve: ServeConfig{
			Transport: "stdio",
			Port:      8080,
		},
		Wait: WaitConfig{
			IntervalMs: 500,
			TimeoutS:   30,
		},
	}
}

// DefaultPath returns $WINCTL_CONFIG if set, otherwise
// <user config dir>/winctl/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "winctl", "config.yaml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Format {
	case "", "yaml", "json", "text":
	default:
		return fmt.Errorf("format must be yaml, json or text, got %q", c.Format)
	}
	switch c.Serve.Transport {
	case "stdio", "streamable-http":
	default:
		return fmt.Errorf("serve.transport must be stdio or streamable-http, got %q", c.Serve.Transport)
	}
	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port out of range: %d", c.Serve.Port)
	}
	if c.Wait.IntervalMs <= 0 {
		return fmt.Errorf("wait.interval_ms must be positive, got %d", c.Wait.IntervalMs)
	}
	if c.Wait.TimeoutS <= 0 {
		return fmt.Errorf("wait.timeout_s must be positive, got %d", c.Wait.TimeoutS)
	}
	return nil
}

// WaitInterval is wait.interval_ms as a duration.
func (c *Config) WaitInterval() time.Duration {
	return time.Duration(c.Wait.IntervalMs) * time.Millisecond
}

// WaitTimeout is wait.timeout_s as a duration.
func (c *Config) WaitTimeout() time.Duration {
	return time.Duration(c.Wait.TimeoutS) * time.Second
}
