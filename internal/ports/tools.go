package ports

import "covdelta/internal/domain"

// ToolChecker reports which required tools are installed locally.
type ToolChecker interface {
	Check(tools []string) []domain.ChecklistItem
}
