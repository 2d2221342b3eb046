package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputWriter_SingleLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	w := NewOutputWriter(path)

	require.NoError(t, w.Write("table", ""))
	require.NoError(t, w.Write("missing", "docs/repl.txt"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "table=\nmissing=docs/repl.txt\n", string(data))
}

func TestOutputWriter_MultilineHeredoc(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	w := NewOutputWriter(path)
	value := "| Package |\n| --- |\n| pkg |"

	require.NoError(t, w.Write("table", value))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 5)

	key, delimiter, found := strings.Cut(lines[0], "<<")
	require.True(t, found)
	assert.Equal(t, "table", key)
	assert.True(t, strings.HasPrefix(delimiter, "covdelta_"))

	assert.Equal(t, delimiter, lines[len(lines)-1])
	assert.Equal(t, value, strings.Join(lines[1:len(lines)-1], "\n"))
}

func TestOutputWriter_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(path, []byte("existing=1\n"), 0644))

	w := NewOutputWriter(path)
	require.NoError(t, w.Write("table", "value"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing=1\ntable=value\n", string(data))
}

func TestOutputWriter_UnwritablePath(t *testing.T) {
	w := NewOutputWriter(filepath.Join(t.TempDir(), "missing-dir", "output"))

	assert.Error(t, w.Write("table", "value"))
}
