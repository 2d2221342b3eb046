package lint

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"covdelta/internal/domain"
	"covdelta/internal/logging"
	"covdelta/internal/ports"
)

const defaultConcurrency = 4

// ExecLinter lints files by invoking an external linter binary once per
// file, a bounded number at a time. The linter is stateless per file, so
// parallel invocations are safe, unlike the coverage runner.
type ExecLinter struct {
	args        []string
	command     string
	concurrency int
}

// Verify interface compliance at compile time
var _ ports.Linter = (*ExecLinter)(nil)

// NewExecLinter creates a linter invoking command with the given extra
// arguments before each file path.
func NewExecLinter(command string, args []string) *ExecLinter {
	return &ExecLinter{
		args:        args,
		command:     command,
		concurrency: defaultConcurrency,
	}
}

// LintFiles runs the linter over the given files and returns one finding
// per rejected file, sorted by file name. A missing linter binary is an
// error; individual file failures are findings, not errors.
func (l *ExecLinter) LintFiles(ctx context.Context, files []string) ([]domain.LintFinding, error) {
	if _, err := exec.LookPath(l.command); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingTool, l.command)
	}

	var mu sync.Mutex
	var findings []domain.LintFinding

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for _, file := range files {
		file := file
		g.Go(func() error {
			args := append(append([]string{}, l.args...), file)
			cmd := exec.CommandContext(ctx, l.command, args...)

			output, err := cmd.CombinedOutput()
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logging.Logger.Debug("Lint failed", "file", file, "error", err)
				mu.Lock()
				findings = append(findings, domain.LintFinding{File: file, Output: string(output)})
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(findings, func(i, j int) bool { return findings[i].File < findings[j].File })
	return findings, nil
}
