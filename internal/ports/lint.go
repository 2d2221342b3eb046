package ports

import (
	"context"

	"covdelta/internal/domain"
)

// Linter runs an external linter over source files.
type Linter interface {
	LintFiles(ctx context.Context, files []string) ([]domain.LintFinding, error)
}
