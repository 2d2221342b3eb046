package services

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covdelta/internal/domain"
)

type fakeRunner struct {
	locations map[string]*domain.ReportLocation
	runErr    error
	runs      []string
	cleared   int
}

func (f *fakeRunner) Run(ctx context.Context, pkg string) (*domain.ReportLocation, error) {
	f.runs = append(f.runs, pkg)
	if f.runErr != nil {
		return nil, f.runErr
	}
	return f.locations[pkg], nil
}

func (f *fakeRunner) ClearRawCoverage() error {
	f.cleared++
	return nil
}

type fakeParser struct {
	reports map[string]domain.CoverageReport
	err     error
}

func (f *fakeParser) Parse(r io.Reader) (domain.CoverageReport, error) {
	return domain.CoverageReport{}, f.err
}

func (f *fakeParser) ParseFile(path string) (domain.CoverageReport, error) {
	if f.err != nil {
		return domain.CoverageReport{}, f.err
	}
	return f.reports[path], nil
}

type fakeBaseline struct {
	reports map[string]*domain.CoverageReport
}

func (f *fakeBaseline) Fetch(ctx context.Context, pkg string) (*domain.CoverageReport, error) {
	return f.reports[pkg], nil
}

type fakeHistory struct {
	runID string
	rows  []domain.ReportRow
	calls int
	err   error
}

func (f *fakeHistory) Append(ctx context.Context, runID string, rows []domain.ReportRow) error {
	f.calls++
	f.runID = runID
	f.rows = rows
	return f.err
}

func uniform(covered, total int) domain.CoverageReport {
	f := domain.Fraction{Covered: covered, Total: total}
	return domain.CoverageReport{Statements: f, Branches: f, Functions: f, Lines: f}
}

func TestReport_ComparesAgainstBaselines(t *testing.T) {
	oldB := uniform(50, 100)
	runner := &fakeRunner{locations: map[string]*domain.ReportLocation{
		"pkg-a": {Index: "/reports/pkg-a/index.html"},
		"pkg-b": {Index: "/reports/pkg-b/index.html"},
	}}
	parser := &fakeParser{reports: map[string]domain.CoverageReport{
		"/reports/pkg-a/index.html": uniform(80, 100),
		"/reports/pkg-b/index.html": uniform(60, 100),
	}}
	baseline := &fakeBaseline{reports: map[string]*domain.CoverageReport{
		"pkg-b": &oldB,
	}}

	svc := NewCoverageService(runner, parser, baseline, nil, "")
	rows, err := svc.Report(context.Background(), "run-1", []string{"pkg-a", "pkg-b"})

	require.NoError(t, err)
	require.Len(t, rows, 2)

	// pkg-a has no baseline; every metric is new and green
	assert.Equal(t, "pkg-a", rows[0].Package)
	assert.True(t, rows[0].Delta.Statements.New)
	assert.Equal(t, "+80.00%", rows[0].Delta.Statements.Annotation())

	// pkg-b improved from 50% to 60%
	assert.Equal(t, "pkg-b", rows[1].Package)
	assert.False(t, rows[1].Delta.Lines.New)
	assert.Equal(t, "+20.00%", rows[1].Delta.Lines.Annotation())
	assert.Equal(t, domain.ColorGreen, rows[1].Delta.Lines.Color)
}

func TestReport_SequentialAndClearsBetweenPackages(t *testing.T) {
	runner := &fakeRunner{locations: map[string]*domain.ReportLocation{
		"pkg-a": {Index: "/reports/a"},
		"pkg-b": {Index: "/reports/b"},
		"pkg-c": {Index: "/reports/c"},
	}}
	parser := &fakeParser{reports: map[string]domain.CoverageReport{
		"/reports/a": uniform(1, 2),
		"/reports/b": uniform(1, 2),
		"/reports/c": uniform(1, 2),
	}}

	svc := NewCoverageService(runner, parser, &fakeBaseline{}, nil, "")
	_, err := svc.Report(context.Background(), "run-1", []string{"pkg-a", "pkg-b", "pkg-c"})

	require.NoError(t, err)
	assert.Equal(t, []string{"pkg-a", "pkg-b", "pkg-c"}, runner.runs)
	assert.Equal(t, 3, runner.cleared)
}

func TestReport_RunFailureAborts(t *testing.T) {
	runner := &fakeRunner{runErr: errors.New("make: *** [test-cov] Error 1")}

	svc := NewCoverageService(runner, &fakeParser{}, &fakeBaseline{}, nil, "")
	rows, err := svc.Report(context.Background(), "run-1", []string{"pkg-a"})

	assert.Error(t, err)
	assert.Nil(t, rows)
}

func TestReport_ParseFailureAborts(t *testing.T) {
	runner := &fakeRunner{locations: map[string]*domain.ReportLocation{
		"pkg-a": {Index: "/reports/a"},
	}}
	parser := &fakeParser{err: domain.ErrMalformedReport}

	svc := NewCoverageService(runner, parser, &fakeBaseline{}, nil, "")
	rows, err := svc.Report(context.Background(), "run-1", []string{"pkg-a"})

	assert.ErrorIs(t, err, domain.ErrMalformedReport)
	assert.Nil(t, rows)
}

func TestReport_RecordsHistory(t *testing.T) {
	runner := &fakeRunner{locations: map[string]*domain.ReportLocation{
		"pkg-a": {Index: "/reports/a"},
	}}
	parser := &fakeParser{reports: map[string]domain.CoverageReport{
		"/reports/a": uniform(80, 100),
	}}
	history := &fakeHistory{}

	svc := NewCoverageService(runner, parser, &fakeBaseline{}, history, "")
	_, err := svc.Report(context.Background(), "run-42", []string{"pkg-a"})

	require.NoError(t, err)
	assert.Equal(t, 1, history.calls)
	assert.Equal(t, "run-42", history.runID)
	require.Len(t, history.rows, 1)
	assert.Equal(t, "pkg-a", history.rows[0].Package)
}

func TestReport_HistoryFailureDoesNotFailRun(t *testing.T) {
	runner := &fakeRunner{locations: map[string]*domain.ReportLocation{
		"pkg-a": {Index: "/reports/a"},
	}}
	parser := &fakeParser{reports: map[string]domain.CoverageReport{
		"/reports/a": uniform(80, 100),
	}}
	history := &fakeHistory{err: errors.New("database is locked")}

	svc := NewCoverageService(runner, parser, &fakeBaseline{}, history, "")
	rows, err := svc.Report(context.Background(), "run-1", []string{"pkg-a"})

	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReport_EmptyPackageSet(t *testing.T) {
	history := &fakeHistory{}

	svc := NewCoverageService(&fakeRunner{}, &fakeParser{}, &fakeBaseline{}, history, "")
	rows, err := svc.Report(context.Background(), "run-1", nil)

	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Zero(t, history.calls)
}

func TestReport_CopiesArtifacts(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "index.html"), []byte("<html></html>"), 0644))

	runner := &fakeRunner{locations: map[string]*domain.ReportLocation{
		"pkg-a": {Dir: src, Index: filepath.Join(src, "index.html")},
	}}
	parser := &fakeParser{reports: map[string]domain.CoverageReport{
		filepath.Join(src, "index.html"): uniform(80, 100),
	}}

	artifactDir := t.TempDir()
	svc := NewCoverageService(runner, parser, &fakeBaseline{}, nil, artifactDir)
	_, err := svc.Report(context.Background(), "run-1", []string{"pkg-a"})

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(artifactDir, "pkg-a", "index.html"))
}
