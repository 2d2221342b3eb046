package storage

import "time"

// CoverageRecordModel is the GORM model for the coverage_records table.
// Metric values are percentages.
type CoverageRecordModel struct {
	Branches   float64   `gorm:"not null"`
	CreatedAt  time.Time
	Functions  float64   `gorm:"not null"`
	ID         uint      `gorm:"primaryKey"`
	Lines      float64   `gorm:"not null"`
	Package    string    `gorm:"not null;index:idx_package"`
	RecordedAt time.Time `gorm:"not null;index:idx_recorded_at"`
	RunID      string    `gorm:"not null;index:idx_run_id"`
	Statements float64   `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (CoverageRecordModel) TableName() string { return "coverage_records" }
