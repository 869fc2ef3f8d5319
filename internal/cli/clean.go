package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfbackup/cleancsvs/internal/cleaner"
	"github.com/sfbackup/cleancsvs/internal/config"
	"github.com/sfbackup/cleancsvs/internal/logging"
	"github.com/sfbackup/cleancsvs/internal/models"
)

func runClean(cmd *cobra.Command, flags *cleanFlags) error {
	if !config.DirExists(flags.dir) {
		return fmt.Errorf("not a directory: %s", flags.dir)
	}

	out := cmd.OutOrStdout()

	log, err := logging.Open(flags.dir, out)
	if err != nil {
		return err
	}
	defer log.Close()
	log.WarnFormat = warnLine

	report, err := cleaner.Run(cmd.Context(), flags.dir, log, cleaner.Options{DryRun: flags.dryRun})
	if err != nil {
		return err
	}

	if flags.report != "" {
		if err := config.SaveReport(flags.report, report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
	}

	fmt.Fprintln(out, summaryLine(report))
	return nil
}

// summaryLine is the closing console line. It is not written to the log.
func summaryLine(r *models.RunReport) string {
	verb := "Cleaned"
	if r.DryRun {
		verb = "Dry run of"
	}
	return fmt.Sprintf("%s %s: deleted %d files, processed %d files, skipped %d files, removed %d columns",
		styleSuccess.Render(verb), r.Dir, len(r.Deleted), len(r.Processed), len(r.Skipped), r.RemovedColumnTotal())
}
