package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covdelta/internal/domain"
)

func TestCopyArtifacts(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "lib"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "index.html"), []byte("<html>summary</html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "lib", "main.js.html"), []byte("<html>file</html>"), 0644))

	artifactDir := t.TempDir()
	loc := &domain.ReportLocation{Dir: src, Index: filepath.Join(src, "index.html")}

	require.NoError(t, CopyArtifacts(loc, "math/base/special/sin", artifactDir))

	dest := filepath.Join(artifactDir, "math", "base", "special", "sin")
	index, err := os.ReadFile(filepath.Join(dest, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html>summary</html>", string(index))

	nested, err := os.ReadFile(filepath.Join(dest, "lib", "main.js.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html>file</html>", string(nested))
}

func TestCopyArtifacts_MissingSource(t *testing.T) {
	loc := &domain.ReportLocation{Dir: filepath.Join(t.TempDir(), "missing")}

	assert.Error(t, CopyArtifacts(loc, "pkg", t.TempDir()))
}
