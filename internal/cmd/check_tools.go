package cmd

import (
	"fmt"
	"os"

	"covdelta/internal/domain"
	"covdelta/internal/theme"
)

// CheckToolsCmd verifies required local tools are installed.
type CheckToolsCmd struct {
	Tools []string `help:"Tools that must be on PATH" default:"node,make,eslint"`
}

// Run executes the tool presence check
func (c *CheckToolsCmd) Run(cli *CLI) error {
	if settings := cli.settings; settings != nil && len(settings.RequiredTools) > 0 {
		c.Tools = settings.RequiredTools
	}

	items := cli.Container.ToolChecker.Check(c.Tools)

	missing := 0
	for _, item := range items {
		fmt.Fprintln(os.Stderr, theme.Checkbox(item))
		if !item.Present {
			missing++
		}
	}

	if missing > 0 {
		return fmt.Errorf("%w: %d of %d tools missing", domain.ErrMissingTool, missing, len(items))
	}
	return nil
}
