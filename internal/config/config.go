// ABOUTME: Application configuration with XDG-resolved paths.
// ABOUTME: JSON config file plus the store factory used by CLI and MCP.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/fittrack/fittrack/internal/storage"
)

const appDir = "fittrack"

// Config stores fittrack configuration.
type Config struct {
	// DataDir overrides the root directory for data storage. Supports ~
	// expansion. Defaults to the XDG data directory.
	DataDir string `json:"data_dir,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return filepath.Join(xdg.DataHome, appDir)
	}
	return ExpandPath(c.DataDir)
}

// DBPath returns the database file path inside the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "fittrack.db")
}

// OpenStorage opens the record store at the configured path and seeds
// default settings.
func (c *Config) OpenStorage() (*storage.Store, error) {
	store, err := storage.Open(c.DBPath())
	if err != nil {
		return nil, err
	}
	if err := store.InitSettings(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("initialize settings: %w", err)
	}
	return store, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		return xdg.Home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(xdg.Home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "config.json")
}

// Load reads config from disk. A missing file yields the zero config.
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
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
