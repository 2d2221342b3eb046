package ports

import (
	"context"

	"covdelta/internal/domain"
)

// HistoryReader reads recorded coverage runs.
type HistoryReader interface {
	Recent(ctx context.Context, pkg string, limit int) ([]domain.HistoryEntry, error)
}

// HistoryWriter appends the coverage rows of one run.
type HistoryWriter interface {
	Append(ctx context.Context, runID string, rows []domain.ReportRow) error
}

// HistoryRepository is the composite interface
type HistoryRepository interface {
	HistoryReader
	HistoryWriter
	Close() error
}
