package report

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"covdelta/internal/domain"
)

// CopyArtifacts copies the located report subtree into the per-package
// artifact directory, so the next publish step can pick it up.
func CopyArtifacts(loc *domain.ReportLocation, pkg, artifactDir string) error {
	dest := filepath.Join(artifactDir, filepath.FromSlash(pkg))
	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	err := filepath.WalkDir(loc.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(loc.Dir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0644)
	})
	if err != nil {
		return fmt.Errorf("failed to copy artifacts for %s: %w", pkg, err)
	}
	return nil
}
