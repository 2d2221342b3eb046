package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"covdelta/internal/config"
	"covdelta/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Coverage   CoverageCmd   `cmd:"" help:"Measure coverage for changed packages and report deltas"`
	Checklist  ChecklistCmd  `cmd:"" help:"Verify required files exist for changed packages"`
	Lint       LintCmd       `cmd:"" help:"Lint changed JavaScript sources"`
	CheckTools CheckToolsCmd `cmd:"check-tools" help:"Verify required local tools are installed"`
	History    HistoryCmd    `cmd:"" help:"Show recorded coverage history for a package"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("COVDELTA_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("COVDELTA_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes (make, the linter) inherit debug settings and
	// append to the same log file for correlation
	if c.Debug || c.DebugFile != "" {
		os.Setenv("COVDELTA_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("COVDELTA_DEBUG_FILE", logFilePath)
		}
	}

	// Create container AFTER logging is initialized so GORM's logger can
	// call logging.Logger
	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
