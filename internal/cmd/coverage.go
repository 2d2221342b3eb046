package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"covdelta/internal/adapters/baseline"
	"covdelta/internal/adapters/runner"
	"covdelta/internal/domain"
	"covdelta/internal/heartbeat"
	"covdelta/internal/logging"
	"covdelta/internal/ports"
	"covdelta/internal/report"
	"covdelta/internal/resolver"
	"covdelta/internal/services"
	"covdelta/internal/theme"
)

// DefaultPackageRoot is the package-root prefix assumed when none is
// configured.
const DefaultPackageRoot = "lib/node_modules/@stdlib/"

// CoverageCmd measures per-package coverage for a change set and emits
// the delta summary table.
type CoverageCmd struct {
	Files []string `arg:"" optional:"" name:"file" help:"Changed file paths"`

	AddonTarget      string `help:"Native addon build target" default:"install-node-addons"`
	ArtifactDir      string `help:"Directory for per-package coverage artifacts" env:"COVDELTA_ARTIFACT_DIR"`
	BaselineURL      string `help:"Base URL of the published coverage store" env:"COVDELTA_BASELINE_URL"`
	HeartbeatSeconds int    `help:"Seconds between liveness prints" default:"30"`
	NoHistory        bool   `help:"Skip recording this run in the history store"`
	Output           string `help:"Build output file for key=value results" env:"GITHUB_OUTPUT"`
	PackageRoot      string `help:"Package-root prefix for changed paths" env:"COVDELTA_PACKAGE_ROOT" default:"${default_package_root}"`
	ProjectRoot      string `help:"Monorepo root directory" env:"COVDELTA_PROJECT_ROOT" default:"."`
	RawDir           string `help:"Raw coverage directory, relative to project root" default:"reports/coverage"`
	ReportDir        string `help:"Generated lcov-report root, relative to project root" default:"reports/coverage/lcov-report"`
	TestCommand      string `help:"Coverage test command" default:"make"`
	TestTarget       string `help:"Coverage test target" default:"test-cov"`
}

// Run executes the coverage delta report
func (c *CoverageCmd) Run(cli *CLI) error {
	c.applySettings(cli)

	// Required environment: fail before any package work starts
	if c.Output == "" {
		return fmt.Errorf("%w: output file (set GITHUB_OUTPUT or --output)", domain.ErrMissingConfig)
	}
	if c.ArtifactDir == "" {
		return fmt.Errorf("%w: artifact directory (set COVDELTA_ARTIFACT_DIR or --artifact-dir)", domain.ErrMissingConfig)
	}

	runID := uuid.New().String()
	logging.Logger.Info("Starting coverage run",
		"run_id", runID, "changed_files", len(c.Files))

	packages := resolver.New(c.PackageRoot).Resolve(c.Files)
	logging.Logger.Info("Resolved packages", "count", len(packages), "packages", packages)

	out := report.NewOutputWriter(c.Output)

	hb := heartbeat.New(time.Duration(c.HeartbeatSeconds)*time.Second, os.Stderr)
	hb.Start()
	defer hb.Stop()

	if len(packages) == 0 {
		fmt.Fprintln(os.Stderr, "No packages affected by the change set.")
		return out.Write("table", "")
	}

	run := runner.NewExecRunner(runner.Config{
		AddonTarget: c.AddonTarget,
		PackageRoot: c.PackageRoot,
		ProjectRoot: c.ProjectRoot,
		RawDir:      c.RawDir,
		ReportDir:   c.ReportDir,
		TestCommand: c.TestCommand,
		TestTarget:  c.TestTarget,
	})

	var history ports.HistoryWriter
	if !c.NoHistory {
		history = cli.Container.History
	}

	service := services.NewCoverageService(
		run,
		cli.Container.Parser,
		baseline.NewHTTPStore(c.BaselineURL, cli.Container.Parser),
		history,
		c.ArtifactDir,
	)

	rows, err := service.Report(context.Background(), runID, packages)
	if err != nil {
		return err
	}

	printSummary(rows)
	return out.Write("table", report.FormatTable(rows, c.BaselineURL))
}

// applySettings applies settings.json values with proper precedence:
// CLI flags > env vars > settings.json > defaults.
func (c *CoverageCmd) applySettings(cli *CLI) {
	settings := cli.settings
	if settings == nil {
		return
	}

	if c.ArtifactDir == "" {
		c.ArtifactDir = settings.ArtifactDir
	}
	if c.BaselineURL == "" {
		c.BaselineURL = settings.BaselineURL
	}
	if c.HeartbeatSeconds == 30 && settings.HeartbeatSeconds != nil {
		c.HeartbeatSeconds = *settings.HeartbeatSeconds
	}
	if c.PackageRoot == DefaultPackageRoot && settings.PackageRoot != "" {
		c.PackageRoot = settings.PackageRoot
	}
	if c.ProjectRoot == "." && settings.ProjectRoot != "" {
		c.ProjectRoot = settings.ProjectRoot
	}
	if c.TestCommand == "make" && settings.TestCommand != "" {
		c.TestCommand = settings.TestCommand
	}
}

// printSummary writes a human-readable summary to the diagnostic stream.
func printSummary(rows []domain.ReportRow) {
	for _, row := range rows {
		fmt.Fprintf(os.Stderr, "%s:", row.Package)
		for _, m := range domain.Metrics {
			fmt.Fprintf(os.Stderr, "  %s %s %s",
				m, theme.Fraction(row.Coverage.Metric(m)), theme.Delta(row.Delta.Metric(m)))
		}
		fmt.Fprintln(os.Stderr)
	}
}
