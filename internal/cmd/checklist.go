package cmd

import (
	"fmt"
	"os"
	"strconv"

	"covdelta/internal/logging"
	"covdelta/internal/report"
	"covdelta/internal/resolver"
	"covdelta/internal/services"
	"covdelta/internal/theme"
)

// ChecklistCmd verifies each changed package carries its required files.
type ChecklistCmd struct {
	Files []string `arg:"" optional:"" name:"file" help:"Changed file paths"`

	Output        string   `help:"Build output file for key=value results" env:"GITHUB_OUTPUT"`
	PackageRoot   string   `help:"Package-root prefix for changed paths" env:"COVDELTA_PACKAGE_ROOT" default:"${default_package_root}"`
	ProjectRoot   string   `help:"Monorepo root directory" env:"COVDELTA_PROJECT_ROOT" default:"."`
	RequiredFiles []string `help:"Entries each package must contain" default:"README.md,package.json,docs,lib,test,examples,benchmark"`
}

// Run executes the required-files check
func (c *ChecklistCmd) Run(cli *CLI) error {
	if settings := cli.settings; settings != nil {
		if c.PackageRoot == DefaultPackageRoot && settings.PackageRoot != "" {
			c.PackageRoot = settings.PackageRoot
		}
		if c.ProjectRoot == "." && settings.ProjectRoot != "" {
			c.ProjectRoot = settings.ProjectRoot
		}
		if len(settings.RequiredFiles) > 0 {
			c.RequiredFiles = settings.RequiredFiles
		}
	}

	packages := resolver.New(c.PackageRoot).Resolve(c.Files)
	logging.Logger.Info("Checking required files", "packages", len(packages))

	service := services.NewChecklistService(c.ProjectRoot, c.PackageRoot, c.RequiredFiles)
	checklists := service.Check(packages)

	missing := 0
	for _, checklist := range checklists {
		fmt.Fprintf(os.Stderr, "%s:\n", checklist.Package)
		for _, item := range checklist.Items {
			fmt.Fprintf(os.Stderr, "  %s\n", theme.Checkbox(item))
		}
		missing += checklist.Missing()
	}

	if c.Output != "" {
		out := report.NewOutputWriter(c.Output)
		if err := out.Write("checklist", report.FormatChecklist(checklists)); err != nil {
			return err
		}
		if err := out.Write("missing", strconv.Itoa(missing)); err != nil {
			return err
		}
	}

	// Missing files are reported, not fatal; the orchestration layer
	// decides what to do with them
	return nil
}
