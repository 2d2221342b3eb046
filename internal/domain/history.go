package domain

import "time"

// HistoryEntry is one package's recorded coverage from a past run. The
// metric values are percentages.
type HistoryEntry struct {
	Branches   float64
	Functions  float64
	Lines      float64
	Package    string
	RecordedAt time.Time
	RunID      string
	Statements float64
}

// TrendDirection indicates whether coverage is improving, declining, or
// stable between two runs.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// Trend classifies the change between two coverage percentages. Moves
// within half a percentage point count as stable.
func Trend(previous, current float64) TrendDirection {
	delta := current - previous
	switch {
	case delta > 0.5:
		return TrendUp
	case delta < -0.5:
		return TrendDown
	default:
		return TrendStable
	}
}
