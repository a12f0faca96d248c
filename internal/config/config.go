// ABOUTME: Moireu configuration management
// ABOUTME: Handles data directory and identity preferences

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config stores Moireu preferences.
type Config struct {
	// DataDir is where the state database lives (default: XDG data dir).
	DataDir string `json:"data_dir,omitempty"`
	// User overrides the placeholder identity used before a profile exists.
	User string `json:"user,omitempty"`
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "moireu", "config.json")
}

// GetDefaultDataDir returns the default state directory following XDG
// standards.
func GetDefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, "moireu")
}

// Load reads config from disk. A missing file yields an empty config.
func Load() (*Config, error) {
	data, err := os.ReadFile(GetConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// GetDataDir returns the state directory, preferring the environment.
func (c *Config) GetDataDir() string {
	if dir := os.Getenv("MOIREU_DATA"); dir != "" {
		return dir
	}
	if c.DataDir != "" {
		return c.DataDir
	}
	return GetDefaultDataDir()
}

// ApplyEnvironment sets environment variables from config. Call before
// resolving identity.
func (c *Config) ApplyEnvironment() {
	if c.User != "" && os.Getenv("MOIREU_USER") == "" {
		os.Setenv("MOIREU_USER", c.User)
	}
}
