// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	switch {
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// ConfigDir is where config.yaml is looked up by default.
func ConfigDir() string {
	return ExpandPath("~/.config/freemium")
}

// DefaultDatabasePath is the preferences database used when database.path
// is unset.
func DefaultDatabasePath() string {
	return ExpandPath("~/.local/share/freemium/freemium.db")
}
