package ports

import (
	"context"
	"io"

	"covdelta/internal/domain"
)

// CoverageRunner produces a fresh coverage report for one package.
type CoverageRunner interface {
	// ClearRawCoverage empties the shared raw coverage directory so the
	// next package's run does not observe stale data.
	ClearRawCoverage() error
	// Run executes the coverage-instrumented test command for pkg and
	// locates the report it produced.
	Run(ctx context.Context, pkg string) (*domain.ReportLocation, error)
}

// ReportParser extracts coverage fractions from a generated report.
type ReportParser interface {
	Parse(r io.Reader) (domain.CoverageReport, error)
	ParseFile(path string) (domain.CoverageReport, error)
}

// BaselineStore fetches the previously published coverage report for a
// package. Absence of a baseline is not an error.
type BaselineStore interface {
	Fetch(ctx context.Context, pkg string) (*domain.CoverageReport, error)
}
