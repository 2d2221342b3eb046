package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uniformReport(covered, total int) CoverageReport {
	f := Fraction{Covered: covered, Total: total}
	return CoverageReport{Statements: f, Branches: f, Functions: f, Lines: f}
}

func TestCompare_NoBaseline(t *testing.T) {
	cur := CoverageReport{
		Statements: Fraction{Covered: 80, Total: 100},
		Branches:   Fraction{Covered: 40, Total: 50},
		Functions:  Fraction{Covered: 10, Total: 10},
		Lines:      Fraction{Covered: 80, Total: 100},
	}

	delta := Compare(nil, cur)

	tests := []struct {
		metric Metric
		want   string
	}{
		{MetricStatements, "+80.00%"},
		{MetricBranches, "+80.00%"},
		{MetricFunctions, "+100.00%"},
		{MetricLines, "+80.00%"},
	}
	for _, tt := range tests {
		t.Run(tt.metric.String(), func(t *testing.T) {
			d := delta.Metric(tt.metric)
			assert.True(t, d.New)
			assert.Equal(t, ColorGreen, d.Color)
			assert.Equal(t, tt.want, d.Annotation())
		})
	}
}

func TestCompare_Improvement(t *testing.T) {
	old := uniformReport(50, 100)
	cur := uniformReport(60, 100)

	delta := Compare(&old, cur)

	d := delta.Metric(MetricStatements)
	assert.False(t, d.New)
	assert.Equal(t, ColorGreen, d.Color)
	assert.Equal(t, "+20.00%", d.Annotation())
}

func TestCompare_Regression(t *testing.T) {
	old := uniformReport(80, 100)
	cur := uniformReport(40, 100)

	delta := Compare(&old, cur)

	d := delta.Metric(MetricLines)
	assert.False(t, d.New)
	assert.Equal(t, ColorRed, d.Color)
	assert.Equal(t, "-50.00%", d.Annotation())
}

func TestCompare_NoChange(t *testing.T) {
	old := uniformReport(80, 100)

	delta := Compare(&old, old)

	d := delta.Metric(MetricStatements)
	assert.False(t, d.New)
	assert.Equal(t, ColorGreen, d.Color)
	assert.Equal(t, "+0.00%", d.Annotation())
}

func TestCompare_NoClamping(t *testing.T) {
	// old 0.1, new 0.5 is a 400% improvement
	old := uniformReport(10, 100)
	cur := uniformReport(50, 100)

	delta := Compare(&old, cur)

	assert.Equal(t, "+400.00%", delta.Metric(MetricStatements).Annotation())
}

func TestCompare_ZeroBaselineMetricTreatedAsNew(t *testing.T) {
	// A legitimately measured zero baseline is indistinguishable from
	// no baseline at all
	old := uniformReport(0, 100)
	cur := uniformReport(50, 100)

	delta := Compare(&old, cur)

	d := delta.Metric(MetricBranches)
	assert.True(t, d.New)
	assert.Equal(t, ColorGreen, d.Color)
	assert.Equal(t, "+50.00%", d.Annotation())
}

func TestCompare_ZeroTotalBaselineIsFullCoverage(t *testing.T) {
	// total=0 parses as fraction 1.0, so it is a real baseline
	old := uniformReport(0, 0)
	cur := uniformReport(50, 100)

	delta := Compare(&old, cur)

	d := delta.Metric(MetricStatements)
	assert.False(t, d.New)
	assert.Equal(t, ColorRed, d.Color)
	assert.Equal(t, "-50.00%", d.Annotation())
}

func TestCompare_RoundsToTwoDecimals(t *testing.T) {
	// (2/3 - 1/3) / (1/3) * 100 = 100.00 exactly; use thirds to force
	// rounding in the intermediate values
	old := uniformReport(1, 3)
	cur := uniformReport(2, 3)

	delta := Compare(&old, cur)

	assert.InDelta(t, 100.00, delta.Metric(MetricStatements).Change, 1e-9)
}
