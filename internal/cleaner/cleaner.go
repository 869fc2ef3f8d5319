// Package cleaner removes irrelevant CSV exports from a directory and strips
// empty and audit columns from the rest.
package cleaner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sfbackup/cleancsvs/internal/config"
	"github.com/sfbackup/cleancsvs/internal/logging"
	"github.com/sfbackup/cleancsvs/internal/models"
)

// ErrUnreadable marks a file that could not be read or parsed. Such files
// are skipped with a warning instead of stopping the run.
var ErrUnreadable = errors.New("unreadable csv")

// Options controls a run.
type Options struct {
	// DryRun evaluates every rule and logs the outcome without deleting or
	// rewriting anything.
	DryRun bool
}

// Run cleans dir in two passes: irrelevant files are deleted first, then
// every remaining CSV is rewritten without its empty and audit columns.
func Run(ctx context.Context, dir string, log *logging.Logger, opts Options) (*models.RunReport, error) {
	report := models.NewRunReport(dir, opts.DryRun)

	deleted, skipped, err := FilterFiles(ctx, dir, log, opts)
	report.Deleted = append(report.Deleted, deleted...)
	report.Skipped = append(report.Skipped, skipped...)
	if err != nil {
		return report, err
	}

	// Fresh listing: phase one changed the directory.
	names, err := config.ListCSV(dir)
	if err != nil {
		return report, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	gone := make(map[string]bool, len(deleted))
	for _, d := range deleted {
		gone[d.File] = true
	}
	unreadable := make(map[string]bool, len(skipped))
	for _, s := range skipped {
		unreadable[s.File] = true
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("run cancelled: %w", err)
		}
		// Only reachable in dry-run for deletions; a file phase one could
		// not read will not parse now either.
		if gone[name] || unreadable[name] {
			continue
		}

		action, err := FilterColumns(filepath.Join(dir, name), log, opts)
		if err != nil {
			if errors.Is(err, ErrUnreadable) {
				log.Warnf("Skipped unreadable file: %s (%v)", name, err)
				report.Skipped = append(report.Skipped, models.SkippedFile{File: name, Reason: err.Error()})
				continue
			}
			return report, err
		}
		report.Processed = append(report.Processed, action)
	}

	report.Finish()
	return report, nil
}
