package services

import (
	"os"
	"path/filepath"

	"covdelta/internal/domain"
)

// ChecklistService checks required package entries on disk.
type ChecklistService struct {
	packageRoot string
	projectRoot string
	required    []string
}

// NewChecklistService creates a new ChecklistService
func NewChecklistService(projectRoot, packageRoot string, required []string) *ChecklistService {
	return &ChecklistService{
		packageRoot: packageRoot,
		projectRoot: projectRoot,
		required:    required,
	}
}

// Check builds ordered (entry, present) pairs for each package. The
// required list order is preserved in every checklist.
func (s *ChecklistService) Check(packages []string) []domain.PackageChecklist {
	checklists := make([]domain.PackageChecklist, 0, len(packages))
	for _, pkg := range packages {
		pkgDir := filepath.Join(s.projectRoot,
			filepath.FromSlash(s.packageRoot), filepath.FromSlash(pkg))

		items := make([]domain.ChecklistItem, 0, len(s.required))
		for _, name := range s.required {
			_, err := os.Stat(filepath.Join(pkgDir, filepath.FromSlash(name)))
			items = append(items, domain.ChecklistItem{Name: name, Present: err == nil})
		}
		checklists = append(checklists, domain.PackageChecklist{Items: items, Package: pkg})
	}
	return checklists
}
