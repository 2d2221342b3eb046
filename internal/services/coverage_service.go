package services

import (
	"context"

	"covdelta/internal/domain"
	"covdelta/internal/logging"
	"covdelta/internal/ports"
	"covdelta/internal/report"
)

// CoverageService runs the per-package coverage loop and assembles the
// summary rows.
type CoverageService struct {
	artifactDir string
	baseline    ports.BaselineStore
	history     ports.HistoryWriter
	parser      ports.ReportParser
	runner      ports.CoverageRunner
}

// NewCoverageService creates a new CoverageService. A nil history writer
// disables run recording; an empty artifactDir disables artifact copies.
func NewCoverageService(
	runner ports.CoverageRunner,
	parser ports.ReportParser,
	baseline ports.BaselineStore,
	history ports.HistoryWriter,
	artifactDir string,
) *CoverageService {
	return &CoverageService{
		artifactDir: artifactDir,
		baseline:    baseline,
		history:     history,
		parser:      parser,
		runner:      runner,
	}
}

// Report measures coverage for each package in turn and compares it with
// the published baseline. Packages are processed strictly sequentially:
// the coverage tool writes every report to the same shared location. Any
// build, test, or parse failure aborts the whole run.
func (s *CoverageService) Report(ctx context.Context, runID string, packages []string) ([]domain.ReportRow, error) {
	rows := make([]domain.ReportRow, 0, len(packages))
	for _, pkg := range packages {
		row, err := s.reportPackage(ctx, pkg)
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)
	}

	if s.history != nil && len(rows) > 0 {
		// History is a local convenience; a failed append must not fail CI
		if err := s.history.Append(ctx, runID, rows); err != nil {
			logging.Logger.Warn("Failed to append coverage history", "run_id", runID, "error", err)
		}
	}

	return rows, nil
}

func (s *CoverageService) reportPackage(ctx context.Context, pkg string) (*domain.ReportRow, error) {
	loc, err := s.runner.Run(ctx, pkg)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Located coverage report", "package", pkg,
		"index", loc.Index, "nested", loc.Nested)

	coverage, err := s.parser.ParseFile(loc.Index)
	if err != nil {
		return nil, err
	}

	if s.artifactDir != "" {
		if err := report.CopyArtifacts(loc, pkg, s.artifactDir); err != nil {
			return nil, err
		}
	}

	if err := s.runner.ClearRawCoverage(); err != nil {
		logging.Logger.Warn("Failed to clear raw coverage", "package", pkg, "error", err)
	}

	// Fetch failures surface as a nil baseline, never as an error
	old, _ := s.baseline.Fetch(ctx, pkg)
	if old == nil {
		logging.Logger.Info("No baseline for package", "package", pkg)
	}

	return &domain.ReportRow{
		Coverage: coverage,
		Delta:    domain.Compare(old, coverage),
		Package:  pkg,
	}, nil
}
