package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"covdelta/internal/domain"
	"covdelta/internal/logging"
	"covdelta/internal/ports"
)

const defaultTimeout = 30 * time.Minute

// Config describes how to drive the external coverage test runner.
type Config struct {
	// AddonTarget is the build target for native addons, e.g.
	// "install-node-addons".
	AddonTarget string
	// PackageRoot is the package-root prefix inside the repo, e.g.
	// "lib/node_modules/@stdlib/".
	PackageRoot string
	ProjectRoot string
	// RawDir is the raw coverage output directory, relative to
	// ProjectRoot.
	RawDir string
	// ReportDir is the generated lcov-report root, relative to
	// ProjectRoot.
	ReportDir string
	// TestCommand and TestTarget form the coverage invocation, e.g.
	// "make test-cov".
	TestCommand string
	TestTarget  string
	Timeout     time.Duration
}

// ExecRunner drives the coverage-instrumented test command for a package
// and locates the report it produced.
type ExecRunner struct {
	cfg Config
}

// Verify interface compliance at compile time
var _ ports.CoverageRunner = (*ExecRunner)(nil)

// NewExecRunner creates a new ExecRunner
func NewExecRunner(cfg Config) *ExecRunner {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &ExecRunner{cfg: cfg}
}

// Run builds the package's native addon when it declares one, runs the
// coverage test command filtered to the package's tests, and locates the
// generated report. Runs must stay sequential: the coverage tool writes
// every report to the same shared location.
func (r *ExecRunner) Run(ctx context.Context, pkg string) (*domain.ReportLocation, error) {
	pkgDir := filepath.Join(r.cfg.ProjectRoot,
		filepath.FromSlash(r.cfg.PackageRoot), filepath.FromSlash(pkg))

	if _, err := os.Stat(filepath.Join(pkgDir, "binding.gyp")); err == nil {
		if err := r.buildAddon(ctx, pkg); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	args := []string{
		r.cfg.TestTarget,
		fmt.Sprintf("TESTS_FILTER=.*/%s/test.*", pkg),
	}
	cmd := exec.CommandContext(ctx, r.cfg.TestCommand, args...)
	cmd.Dir = r.cfg.ProjectRoot
	// Keep the structured output channel clean; test output is diagnostics
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	logging.Logger.Info("Running coverage tests", "package", pkg,
		"command", r.cfg.TestCommand, "args", args)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("coverage run failed for %s: %w", pkg, err)
	}

	return r.locate(pkg)
}

// buildAddon compiles the package's native addon before its tests run.
func (r *ExecRunner) buildAddon(ctx context.Context, pkg string) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	args := []string{
		r.cfg.AddonTarget,
		fmt.Sprintf("NODE_ADDONS_PATTERN=%s", pkg),
	}
	cmd := exec.CommandContext(ctx, r.cfg.TestCommand, args...)
	cmd.Dir = r.cfg.ProjectRoot
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	logging.Logger.Info("Building native addon", "package", pkg, "args", args)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("addon build failed for %s: %w", pkg, err)
	}
	return nil
}

// locate finds the report index. Packages with no inter-package
// dependencies publish at the top level; packages with dependencies
// publish nested under the package identifier. Top level is tried first
// because that is how the coverage tool organizes its output.
func (r *ExecRunner) locate(pkg string) (*domain.ReportLocation, error) {
	reportRoot := filepath.Join(r.cfg.ProjectRoot, filepath.FromSlash(r.cfg.ReportDir))

	top := filepath.Join(reportRoot, "index.html")
	if _, err := os.Stat(top); err == nil {
		return &domain.ReportLocation{Dir: reportRoot, Index: top}, nil
	}

	nestedDir := filepath.Join(reportRoot,
		filepath.FromSlash(r.cfg.PackageRoot), filepath.FromSlash(pkg))
	nested := filepath.Join(nestedDir, "index.html")
	if _, err := os.Stat(nested); err == nil {
		return &domain.ReportLocation{Dir: nestedDir, Index: nested, Nested: true}, nil
	}

	return nil, fmt.Errorf("%w: no report at %s or %s", domain.ErrReportNotFound, top, nested)
}

// ClearRawCoverage empties the raw coverage directory. The coverage tool
// is single-report-at-a-time and non-additive; stale data would leak into
// the next package's run.
func (r *ExecRunner) ClearRawCoverage() error {
	raw := filepath.Join(r.cfg.ProjectRoot, filepath.FromSlash(r.cfg.RawDir))
	if err := os.RemoveAll(raw); err != nil {
		return fmt.Errorf("failed to clear raw coverage directory: %w", err)
	}
	return os.MkdirAll(raw, 0755)
}
