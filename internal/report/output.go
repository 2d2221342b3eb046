package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// OutputWriter appends key/value pairs to the build-system output file in
// GitHub Actions syntax.
type OutputWriter struct {
	path string
}

// NewOutputWriter creates a writer appending to the file at path.
func NewOutputWriter(path string) *OutputWriter {
	return &OutputWriter{path: path}
}

// Write appends one output value. Multiline values use a heredoc block
// with a random delimiter so the value can never terminate the block
// early.
func (w *OutputWriter) Write(key, value string) error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	var block string
	if strings.Contains(value, "\n") {
		delimiter := "covdelta_" + uuid.New().String()
		block = fmt.Sprintf("%s<<%s\n%s\n%s\n", key, delimiter, value, delimiter)
	} else {
		block = fmt.Sprintf("%s=%s\n", key, value)
	}

	if _, err := f.WriteString(block); err != nil {
		return fmt.Errorf("failed to write output %s: %w", key, err)
	}
	return nil
}
