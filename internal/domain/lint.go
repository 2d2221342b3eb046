package domain

// LintFinding is one file the linter rejected, with the linter's output.
type LintFinding struct {
	File   string
	Output string
}
