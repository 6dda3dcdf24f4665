// Package config loads and saves the picker's JSON configuration file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const configFile = ".bepick/config.json"

// DefaultHistoryLimit caps history listing when no limit is configured.
const DefaultHistoryLimit = 50

// Config holds user-level defaults for the picker.
type Config struct {
	WithTime     bool `json:"with_time,omitempty"`     // default mode for pick/convert
	HistoryLimit int  `json:"history_limit,omitempty"` // max rows shown by history list
}

// Load reads the config from disk. A missing file yields a zero config.
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
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

// Save writes the config to disk using atomic write (temp file + rename)
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// Atomic write: temp file in same dir, then rename
	tmp, err := os.CreateTemp(dir, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, configPath)
}

// GetHistoryLimit returns the configured history limit or the default.
func (c *Config) GetHistoryLimit() int {
	if c == nil || c.HistoryLimit <= 0 {
		return DefaultHistoryLimit
	}
	return c.HistoryLimit
}
