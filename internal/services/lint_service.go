package services

import (
	"context"
	"strings"

	"covdelta/internal/domain"
	"covdelta/internal/ports"
)

// LintService lints changed sources with an external linter.
type LintService struct {
	linter ports.Linter
}

// NewLintService creates a new LintService
func NewLintService(linter ports.Linter) *LintService {
	return &LintService{linter: linter}
}

// Lint filters the changed set to JavaScript sources and runs the linter
// over them. No lintable files means no findings.
func (s *LintService) Lint(ctx context.Context, files []string) ([]domain.LintFinding, error) {
	var sources []string
	for _, file := range files {
		if strings.HasSuffix(file, ".js") {
			sources = append(sources, file)
		}
	}
	if len(sources) == 0 {
		return nil, nil
	}
	return s.linter.LintFiles(ctx, sources)
}
