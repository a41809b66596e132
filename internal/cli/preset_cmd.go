package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/chrono/internal/cli/formatter"
	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/alexanderramin/chrono/internal/preset"
	"github.com/spf13/cobra"
)

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage YAML timer presets",
	}
	cmd.AddCommand(
		newPresetCheckCmd(),
		newPresetInitCmd(),
	)
	return cmd
}

func newPresetCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a preset file and list its timers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timers, err := preset.Load(args[0])
			if err != nil {
				return err
			}
			preview := make([]domain.Timer, 0, len(timers))
			for _, t := range timers {
				preview = append(preview, domain.NewTimer("", t.Name, t.Category, int(t.Duration), t.HalfwayAlert, time.Time{}))
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatTimerTable(preview))
			fmt.Fprintln(out, formatter.Success(fmt.Sprintf("%s is valid (%s)", args[0], formatter.Plural(len(timers), "timer"))))
			return nil
		},
	}
}

func newPresetInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init FILE",
		Short: "Write a sample preset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(args[0]); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", args[0])
				} else if !errors.Is(err, os.ErrNotExist) {
					return err
				}
			}
			if err := preset.Save(args[0], preset.Sample); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Wrote "+args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
