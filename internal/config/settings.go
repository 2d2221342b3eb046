package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Settings represents the structure of $COVDELTA_HOME/settings.json
type Settings struct {
	ArtifactDir      string      `json:"artifact_dir,omitempty"`
	BaselineURL      string      `json:"baseline_url,omitempty"`
	Debug            *bool       `json:"debug,omitempty"`
	HeartbeatSeconds *int        `json:"heartbeat_seconds,omitempty"`
	LintCommand      string      `json:"lint_command,omitempty"`
	MaxLogFiles      *int        `json:"max_log_files,omitempty"`
	PackageRoot      string      `json:"package_root,omitempty"`
	ProjectRoot      string      `json:"project_root,omitempty"`
	RequiredFiles    StringArray `json:"required_files,omitempty"`
	RequiredTools    StringArray `json:"required_tools,omitempty"`
	TestCommand      string      `json:"test_command,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $COVDELTA_HOME/settings.json (or
// ~/.covdelta/settings.json if not set).
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand paths that may start with ~
	if settings.ArtifactDir != "" {
		settings.ArtifactDir = ExpandPath(settings.ArtifactDir)
	}
	if settings.ProjectRoot != "" {
		settings.ProjectRoot = ExpandPath(settings.ProjectRoot)
	}

	return &settings, nil
}
