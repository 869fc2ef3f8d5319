// Package cli implements the cleancsvs command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sfbackup/cleancsvs/internal/buildinfo"
	"github.com/sfbackup/cleancsvs/internal/config"
)

// cleanFlags are the optional knobs of the root command.
type cleanFlags struct {
	dir    string
	dryRun bool
	report string
}

func newRootCmd() *cobra.Command {
	flags := &cleanFlags{}

	cmd := &cobra.Command{
		Use:   "cleancsvs",
		Short: "Clean a folder of Salesforce backup CSV exports",
		Long: `cleancsvs cleans a folder of CSV files produced by the Salesforce data
backup export ("All Objects").

Run with no arguments inside the export folder. It will:
  1. Delete History, Summary and TenantSecurity exports and files with no data rows
  2. Strip columns that are empty or hold only audit stamps
     (CreatedDate, CreatedById, LastModifiedDate, LastModifiedById, SystemModstamp)

Every action is appended to _cleancsvs_log.txt in the folder.`,
		Version:      buildinfo.String(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.dir, "dir", "d", config.DefaultDir, "folder to clean")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "log what would change without touching any file")
	cmd.Flags().StringVar(&flags.report, "report", "", "write a YAML summary of the run to this path")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
