package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFraction_Value(t *testing.T) {
	tests := []struct {
		name     string
		fraction Fraction
		want     float64
	}{
		{"partial", Fraction{Covered: 80, Total: 100}, 0.8},
		{"full", Fraction{Covered: 10, Total: 10}, 1.0},
		{"zero covered", Fraction{Covered: 0, Total: 50}, 0.0},
		{"zero total is fully covered", Fraction{Covered: 0, Total: 0}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.fraction.Value(), 1e-9)
		})
	}
}

func TestFraction_Full(t *testing.T) {
	assert.True(t, Fraction{Covered: 10, Total: 10}.Full())
	assert.True(t, Fraction{Covered: 0, Total: 0}.Full())
	assert.False(t, Fraction{Covered: 9, Total: 10}.Full())
}

func TestFraction_String(t *testing.T) {
	assert.Equal(t, "80/100", Fraction{Covered: 80, Total: 100}.String())
}

func TestCoverageReport_MetricAccess(t *testing.T) {
	report := CoverageReport{
		Statements: Fraction{Covered: 80, Total: 100},
		Branches:   Fraction{Covered: 40, Total: 50},
		Functions:  Fraction{Covered: 10, Total: 10},
		Lines:      Fraction{Covered: 81, Total: 100},
	}

	assert.Equal(t, Fraction{Covered: 80, Total: 100}, report.Metric(MetricStatements))
	assert.Equal(t, Fraction{Covered: 40, Total: 50}, report.Metric(MetricBranches))
	assert.Equal(t, Fraction{Covered: 10, Total: 10}, report.Metric(MetricFunctions))
	assert.Equal(t, Fraction{Covered: 81, Total: 100}, report.Metric(MetricLines))
}

func TestCoverageReport_SetMetric(t *testing.T) {
	var report CoverageReport
	for i, m := range Metrics {
		report.SetMetric(m, Fraction{Covered: i, Total: 10})
	}

	for i, m := range Metrics {
		assert.Equal(t, Fraction{Covered: i, Total: 10}, report.Metric(m))
	}
}

func TestMetric_String(t *testing.T) {
	assert.Equal(t, "Statements", MetricStatements.String())
	assert.Equal(t, "Branches", MetricBranches.String())
	assert.Equal(t, "Functions", MetricFunctions.String())
	assert.Equal(t, "Lines", MetricLines.String())
}
