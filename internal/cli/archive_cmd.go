package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/chrono/internal/cli/formatter"
	"github.com/alexanderramin/chrono/internal/history"
	"github.com/spf13/cobra"
)

func newArchiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect the SQLite history archive",
		Long: `Inspect the SQLite archive written by exports. FILE defaults to
CHRONO_ARCHIVE_DB. The archive is never loaded back into live timers.`,
	}
	cmd.AddCommand(
		newArchiveStatsCmd(app),
		newArchiveListCmd(app),
		newArchiveRunsCmd(app),
	)
	return cmd
}

func openArchiveArg(app *App, args []string) (*history.Archiver, error) {
	path := app.ArchivePath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, errors.New("no archive: pass FILE or set CHRONO_ARCHIVE_DB")
	}
	return history.OpenArchiver(path)
}

func newArchiveStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [FILE]",
		Short: "Completions and total time per category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openArchiveArg(app, args)
			if err != nil {
				return err
			}
			defer a.Close()
			totals, err := a.Totals(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCategoryTotals(totals))
			return nil
		},
	}
}

func newArchiveListCmd(app *App) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list [FILE]",
		Short: "List archived completions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openArchiveArg(app, args)
			if err != nil {
				return err
			}
			defer a.Close()
			entries, err := a.Entries(cmd.Context(), category)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistoryTable(entries, time.Local))
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only this category")
	return cmd
}

func newArchiveRunsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "runs [FILE]",
		Short: "List recorded export runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openArchiveArg(app, args)
			if err != nil {
				return err
			}
			defer a.Close()
			runs, err := a.Runs(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExportRuns(runs, time.Local))
			return nil
		},
	}
}
