package config

import (
	"os"
	"path/filepath"
	"strings"
)

// GetHomePath returns $COVDELTA_HOME or ~/.covdelta
func GetHomePath() string {
	if home := os.Getenv("COVDELTA_HOME"); home != "" {
		return ExpandPath(home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".covdelta"
	}
	return filepath.Join(homeDir, ".covdelta")
}

// GetSettingsPath returns the path to settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHomePath(), "settings.json")
}

// GetDBPath returns the path to the coverage history database
func GetDBPath() string {
	return filepath.Join(GetHomePath(), "covdelta.db")
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
