package cleaner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sfbackup/cleancsvs/internal/config"
	"github.com/sfbackup/cleancsvs/internal/csvdoc"
	"github.com/sfbackup/cleancsvs/internal/logging"
	"github.com/sfbackup/cleancsvs/internal/models"
)

// FilterFiles deletes every CSV directly inside dir that matches a noise
// pattern or has no data rows. Files that cannot be read are reported as
// skipped and left in place.
func FilterFiles(ctx context.Context, dir string, log *logging.Logger, opts Options) ([]models.FileAction, []models.SkippedFile, error) {
	names, err := config.ListCSV(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var (
		deleted []models.FileAction
		skipped []models.SkippedFile
	)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return deleted, skipped, fmt.Errorf("run cancelled: %w", err)
		}

		path := filepath.Join(dir, name)

		rule, err := deletionRule(path, name)
		if err != nil {
			log.Warnf("Skipped unreadable file: %s (%v)", name, err)
			skipped = append(skipped, models.SkippedFile{File: name, Reason: err.Error()})
			continue
		}
		if rule == "" {
			continue
		}

		if opts.DryRun {
			log.Infof("Would delete empty file: %s", name)
		} else {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return deleted, skipped, fmt.Errorf("failed to remove %s: %w", name, err)
			}
			log.Infof("Deleted empty file: %s", name)
		}
		deleted = append(deleted, models.FileAction{File: name, Rule: rule})
	}

	return deleted, skipped, nil
}

// deletionRule names the rule that condemns the file, or "" to keep it.
// Name rules are checked first so noise files are never parsed.
func deletionRule(path, name string) (string, error) {
	if rule := MatchNoisePattern(name); rule != "" {
		return rule, nil
	}

	doc, err := csvdoc.Read(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if doc.Empty() {
		return models.RuleEmpty, nil
	}
	return "", nil
}
