package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultConfigDir is the directory name under the user config dir
	DefaultConfigDir = "mouselock"
	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.json"
)

// Config holds the application configuration
type Config struct {
	PollIntervalMS int   `json:"poll_interval_ms"`
	EdgeThreshold  int32 `json:"edge_threshold"`
	DefaultMonitor int   `json:"default_monitor"` // 0 = monitor under cursor at startup
	Notifications  bool  `json:"notifications"`
	Beep           bool  `json:"beep"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		PollIntervalMS: 16,
		EdgeThreshold:  1,
		DefaultMonitor: 0,
		Notifications:  true,
		Beep:           true,
	}
}

// Interval returns the poll interval as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return DefaultConfigDir
		}
		return filepath.Join(home, "."+DefaultConfigDir)
	}
	return filepath.Join(base, DefaultConfigDir)
}

// Load loads the configuration from disk
func Load() (*Config, error) {
	configPath := filepath.Join(GetConfigDir(), ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, err
	}

	// Unmarshal over the defaults so fields missing from an older
	// config file keep their default values
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save saves the configuration to disk
func Save(cfg *Config) error {
	if err := os.MkdirAll(GetConfigDir(), 0755); err != nil {
		return err
	}

	configPath := filepath.Join(GetConfigDir(), ConfigFileName)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
