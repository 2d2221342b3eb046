package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"covdelta/internal/domain"
	"covdelta/internal/theme"
)

// HistoryCmd shows recorded coverage runs for a package.
type HistoryCmd struct {
	Package string `arg:"" help:"Package identifier"`
	Limit   int    `help:"Maximum entries to show" default:"10"`
}

// Run prints recent coverage history, newest first
func (c *HistoryCmd) Run(cli *CLI) error {
	entries, err := cli.Container.History.Recent(context.Background(), c.Package, c.Limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "No recorded runs for %s.\n", c.Package)
		return nil
	}

	// Entries come newest first; the trend compares each entry with the
	// one recorded before it
	for i, entry := range entries {
		trend := domain.TrendStable
		if i+1 < len(entries) {
			trend = domain.Trend(entries[i+1].Lines, entry.Lines)
		}

		runID := entry.RunID
		if len(runID) > 8 {
			runID = runID[:8]
		}
		fmt.Printf("%s  %s  statements %.2f%%  branches %.2f%%  functions %.2f%%  lines %.2f%%  %s\n",
			entry.RecordedAt.Format(time.RFC3339), runID,
			entry.Statements, entry.Branches, entry.Functions, entry.Lines,
			theme.Trend(trend))
	}
	return nil
}
