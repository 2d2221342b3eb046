package domain

import "fmt"

// Metric identifies one of the four coverage dimensions, in the fixed
// order the coverage tool reports them.
type Metric int

const (
	MetricStatements Metric = iota
	MetricBranches
	MetricFunctions
	MetricLines
)

// Metrics lists all metrics in report order.
var Metrics = []Metric{MetricStatements, MetricBranches, MetricFunctions, MetricLines}

func (m Metric) String() string {
	switch m {
	case MetricStatements:
		return "Statements"
	case MetricBranches:
		return "Branches"
	case MetricFunctions:
		return "Functions"
	case MetricLines:
		return "Lines"
	}
	return "Unknown"
}

// Fraction is a covered/total pair for one metric.
// Invariant: Total >= Covered >= 0.
type Fraction struct {
	Covered int
	Total   int
}

// Value returns the coverage as a number in [0, 1]. A metric with nothing
// to cover counts as fully covered.
func (f Fraction) Value() float64 {
	if f.Total == 0 {
		return 1.0
	}
	return float64(f.Covered) / float64(f.Total)
}

// Full reports whether every countable item is covered.
func (f Fraction) Full() bool {
	return f.Covered == f.Total
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Covered, f.Total)
}

// CoverageReport holds the four fractions extracted from one report.
type CoverageReport struct {
	Branches   Fraction
	Functions  Fraction
	Lines      Fraction
	Statements Fraction
}

// Metric returns the fraction for the given metric.
func (r CoverageReport) Metric(m Metric) Fraction {
	switch m {
	case MetricStatements:
		return r.Statements
	case MetricBranches:
		return r.Branches
	case MetricFunctions:
		return r.Functions
	case MetricLines:
		return r.Lines
	}
	return Fraction{}
}

// SetMetric sets the fraction for the given metric.
func (r *CoverageReport) SetMetric(m Metric, f Fraction) {
	switch m {
	case MetricStatements:
		r.Statements = f
	case MetricBranches:
		r.Branches = f
	case MetricFunctions:
		r.Functions = f
	case MetricLines:
		r.Lines = f
	}
}

// ReportLocation points at a generated coverage report on disk.
type ReportLocation struct {
	// Dir is the directory holding the package's report files.
	Dir string
	// Index is the path to the report's index.html.
	Index string
	// Nested is true when the report was published under the per-package
	// subtree rather than at the top level.
	Nested bool
}

// ReportRow is one line of the summary table.
type ReportRow struct {
	Coverage CoverageReport
	Delta    CoverageDelta
	Package  string
}
