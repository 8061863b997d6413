// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appDir = "bwordible"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultAnswersPath returns the default answer corpus path.
func DefaultAnswersPath() string {
	return filepath.Join(XDGConfigHome(), appDir, "answers.json")
}

// DefaultGuessesPath returns the default allowed-guess list path.
func DefaultGuessesPath() string {
	return filepath.Join(XDGConfigHome(), appDir, "guesses.json")
}

// DefaultDBPath returns the default path for the SQLite database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appDir, "bwordible.db")
}

// DefaultLogPath returns the log file path.
func DefaultLogPath() string {
	return filepath.Join(XDGDataHome(), appDir, "bwordible.log")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appDir, "config.toml")
}
