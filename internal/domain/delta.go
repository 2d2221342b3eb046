package domain

import (
	"fmt"
	"math"
)

// Color tags the qualitative direction of a delta.
type Color string

const (
	ColorGreen Color = "green"
	ColorRed   Color = "red"
)

// MetricDelta is the comparison result for a single metric.
type MetricDelta struct {
	// Change is the signed percentage change, rounded to two decimals.
	// For new metrics it is the current coverage expressed as a
	// percentage.
	Change float64
	Color  Color
	// New marks a metric with no usable baseline: either no prior report
	// was published or the prior fraction was exactly zero.
	New bool
}

// Annotation renders the delta as a signed percentage string.
func (d MetricDelta) Annotation() string {
	return fmt.Sprintf("%+.2f%%", d.Change)
}

// CoverageDelta holds one MetricDelta per metric.
type CoverageDelta struct {
	Branches   MetricDelta
	Functions  MetricDelta
	Lines      MetricDelta
	Statements MetricDelta
}

// Metric returns the delta for the given metric.
func (d CoverageDelta) Metric(m Metric) MetricDelta {
	switch m {
	case MetricStatements:
		return d.Statements
	case MetricBranches:
		return d.Branches
	case MetricFunctions:
		return d.Functions
	case MetricLines:
		return d.Lines
	}
	return MetricDelta{}
}

// Compare computes the delta of cur against old. A nil old means no
// baseline was published for the package. First-time coverage is never
// penalized: new metrics are always green.
func Compare(old *CoverageReport, cur CoverageReport) CoverageDelta {
	return CoverageDelta{
		Statements: compareMetric(old, cur, MetricStatements),
		Branches:   compareMetric(old, cur, MetricBranches),
		Functions:  compareMetric(old, cur, MetricFunctions),
		Lines:      compareMetric(old, cur, MetricLines),
	}
}

func compareMetric(old *CoverageReport, cur CoverageReport, m Metric) MetricDelta {
	curVal := cur.Metric(m).Value()

	// A measured baseline of exactly zero is indistinguishable from no
	// baseline at all; both avoid the division below.
	if old == nil || old.Metric(m).Value() == 0 {
		return MetricDelta{Change: round2(curVal * 100), Color: ColorGreen, New: true}
	}

	oldVal := old.Metric(m).Value()
	change := round2((curVal - oldVal) / oldVal * 100)
	color := ColorGreen
	if change < 0 {
		color = ColorRed
	}
	return MetricDelta{Change: change, Color: color}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
