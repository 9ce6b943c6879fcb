// Package config resolves the application's configuration directory and
// file paths.
package config

import (
	"os"
	"path/filepath"
)

// AppName is the application directory name.
const AppName = "daydash"

// DefaultDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// LogPath returns the log file path inside dir. The dashboard UI owns the
// terminal while it runs, so logs go to a file rather than stderr.
func LogPath(dir string) string {
	return filepath.Join(dir, AppName+".log")
}
