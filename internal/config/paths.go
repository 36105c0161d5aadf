package config

import (
	"os"
	"path/filepath"
)

// Paths contains commonly used file paths.
type Paths struct {
	Database string // Main SQLite database
	Logs     string // Log directory
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	return Paths{
		Database: filepath.Join(cfg.BaseDir, "deenlife.db"),
		Logs:     cfg.BaseDir,
	}
}

// DefaultBaseDir returns the default base directory (~/.deenlife).
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".deenlife"
	}
	return filepath.Join(home, ".deenlife")
}
