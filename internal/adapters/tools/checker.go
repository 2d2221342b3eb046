package tools

import (
	"os/exec"

	"covdelta/internal/domain"
	"covdelta/internal/ports"
)

// PathChecker verifies required tools are installed by looking them up on
// PATH.
type PathChecker struct{}

// Verify interface compliance at compile time
var _ ports.ToolChecker = (*PathChecker)(nil)

// NewPathChecker creates a new PathChecker
func NewPathChecker() *PathChecker {
	return &PathChecker{}
}

// Check returns one (tool, present) pair per tool, preserving input order.
func (c *PathChecker) Check(toolNames []string) []domain.ChecklistItem {
	items := make([]domain.ChecklistItem, 0, len(toolNames))
	for _, name := range toolNames {
		_, err := exec.LookPath(name)
		items = append(items, domain.ChecklistItem{Name: name, Present: err == nil})
	}
	return items
}
