package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chrono/internal/preset"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive timer board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app)
		},
	}
}

// runTUI seeds presets into an empty store and runs the program until the
// user quits or ctx ends.
func runTUI(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(app.Store.Snapshot().Timers) == 0 && len(app.Presets) > 0 {
		if _, err := preset.Apply(ctx, app.Timers, app.Presets); err != nil {
			return fmt.Errorf("apply presets: %w", err)
		}
	}

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newAppModel(subCtx, app, app.Store.Subscribe(subCtx))
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, app.ProgramOptions...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
