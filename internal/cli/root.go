package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/chrono/internal/history"
	"github.com/alexanderramin/chrono/internal/preset"
	"github.com/alexanderramin/chrono/internal/service"
	"github.com/alexanderramin/chrono/internal/store"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Store is the live timer store as the presentation layer sees it.
type Store interface {
	service.TimerStore
	Subscribe(ctx context.Context) <-chan store.Snapshot
}

// App holds the collaborators used by CLI commands and the TUI.
type App struct {
	Store   Store
	Timers  service.TimerService
	History service.HistoryService

	// Sharer and Observer are reused when a command builds its own export
	// target from flags.
	Sharer   history.Sharer
	Observer service.UseCaseObserver

	// Presets are added when the TUI starts with an empty store.
	Presets []preset.Timer
	// PresetPath is where the TUI saves the current timers.
	PresetPath string
	// ArchivePath is the default archive for the archive commands.
	ArchivePath string

	IsInteractive  func() bool
	ProgramOptions []tea.ProgramOption
	Now            func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "chrono" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "chrono",
		Short:         "Categorized countdown timers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newTUICmd(app),
		newRunCmd(app),
		newPresetCmd(),
		newArchiveCmd(app),
	)

	return root
}
