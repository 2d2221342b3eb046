package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"covdelta/internal/domain"
	"covdelta/internal/logging"
	"covdelta/internal/ports"
)

// SQLiteHistory implements ports.HistoryRepository using GORM
type SQLiteHistory struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.HistoryRepository = (*SQLiteHistory)(nil)

// gormLogger wraps the covdelta logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("COVDELTA_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteHistory creates a new SQLiteHistory at dbPath
func NewSQLiteHistory(dbPath string) (*SQLiteHistory, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&CoverageRecordModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate coverage schema: %w", err)
	}

	return &SQLiteHistory{db: db}, nil
}

// Append records the coverage rows of one run.
func (h *SQLiteHistory) Append(ctx context.Context, runID string, rows []domain.ReportRow) error {
	if len(rows) == 0 {
		return nil
	}

	now := time.Now().UTC()
	records := make([]CoverageRecordModel, 0, len(rows))
	for _, row := range rows {
		records = append(records, CoverageRecordModel{
			Branches:   row.Coverage.Branches.Value() * 100,
			Functions:  row.Coverage.Functions.Value() * 100,
			Lines:      row.Coverage.Lines.Value() * 100,
			Package:    row.Package,
			RecordedAt: now,
			RunID:      runID,
			Statements: row.Coverage.Statements.Value() * 100,
		})
	}

	if err := h.db.WithContext(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("failed to append coverage history: %w", err)
	}
	return nil
}

// Recent returns the most recent entries for pkg, newest first.
func (h *SQLiteHistory) Recent(ctx context.Context, pkg string, limit int) ([]domain.HistoryEntry, error) {
	query := h.db.WithContext(ctx).
		Where("package = ?", pkg).
		Order("recorded_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []CoverageRecordModel
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query coverage history: %w", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, domain.HistoryEntry{
			Branches:   record.Branches,
			Functions:  record.Functions,
			Lines:      record.Lines,
			Package:    record.Package,
			RecordedAt: record.RecordedAt,
			RunID:      record.RunID,
			Statements: record.Statements,
		})
	}
	return entries, nil
}

// Close closes the underlying database connection.
func (h *SQLiteHistory) Close() error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}
