package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"covdelta/internal/adapters/lint"
	"covdelta/internal/services"
	"covdelta/internal/theme"
)

// LintCmd lints changed JavaScript sources with the configured linter.
type LintCmd struct {
	Files []string `arg:"" optional:"" name:"file" help:"Changed file paths"`

	Linter     string   `help:"Linter executable" env:"COVDELTA_LINT_COMMAND" default:"eslint"`
	LinterArgs []string `help:"Extra arguments passed to the linter"`
}

// Run executes the linter over the changed sources
func (c *LintCmd) Run(cli *CLI) error {
	if settings := cli.settings; settings != nil {
		if c.Linter == "eslint" && settings.LintCommand != "" {
			if _, hasEnv := os.LookupEnv("COVDELTA_LINT_COMMAND"); !hasEnv {
				c.Linter = settings.LintCommand
			}
		}
	}

	service := services.NewLintService(lint.NewExecLinter(c.Linter, c.LinterArgs))
	findings, err := service.Lint(context.Background(), c.Files)
	if err != nil {
		return err
	}

	if len(findings) == 0 {
		fmt.Fprintln(os.Stderr, "No lint errors.")
		return nil
	}

	for _, finding := range findings {
		fmt.Fprintln(os.Stderr, theme.Failure(finding.File))
		if output := strings.TrimSpace(finding.Output); output != "" {
			fmt.Fprintln(os.Stderr, output)
		}
	}
	return fmt.Errorf("lint failed for %d file(s)", len(findings))
}
