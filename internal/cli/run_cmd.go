package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/chrono/internal/cli/formatter"
	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/alexanderramin/chrono/internal/history"
	"github.com/alexanderramin/chrono/internal/preset"
	"github.com/alexanderramin/chrono/internal/service"
	"github.com/alexanderramin/chrono/internal/store"
	"github.com/spf13/cobra"
)

type runOptions struct {
	timers      timerSpecList
	presetFile  string
	category    string
	exportDir   string
	archivePath string
}

func newRunCmd(app *App) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run timers headless until they complete",
		Long: `Add timers from --timer flags and an optional preset file, start them
(all, or only --category), print status changes until every started timer
completes, then print the history. Interrupt with Ctrl+C to stop early.`,
		Example: `  chrono run --timer Tea:3m:Kitchen --timer Eggs:420:Kitchen:halfway
  chrono run --preset workout.yaml --category Workout --export ./out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadless(cmd.Context(), app, cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.Var(&opts.timers, "timer", "timer as NAME:SECONDS:CATEGORY[:halfway] (repeatable)")
	f.StringVar(&opts.presetFile, "preset", "", "YAML preset file to load")
	f.StringVarP(&opts.category, "category", "c", "", "start only this category")
	f.StringVar(&opts.exportDir, "export", "", "write "+history.FileName+" to this directory when done")
	f.StringVar(&opts.archivePath, "archive", "", "append history to this SQLite archive when done")

	return cmd
}

func runHeadless(ctx context.Context, app *App, out io.Writer, opts runOptions) error {
	created, err := addRunTimers(ctx, app, opts)
	if err != nil {
		return err
	}
	if len(created) == 0 {
		return errors.New("no timers: pass --timer or --preset")
	}

	// Subscribe before starting so no transition is missed.
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	updates := app.Store.Subscribe(watchCtx)

	snap, err := startRunTimers(ctx, app, created, opts.category)
	if err != nil {
		return err
	}
	watched := make([]string, 0, len(created))
	for _, t := range snap.Running() {
		watched = append(watched, t.ID)
	}
	if len(watched) == 0 {
		return fmt.Errorf("no timers started in category %q", opts.category)
	}
	fmt.Fprintf(out, "%s\n", formatter.Dim(fmt.Sprintf("Running %s. Ctrl+C to stop.", formatter.Plural(len(watched), "timer"))))

	w := newRunWatcher(out, watched, app.now)
	interrupted := false
	w.report(snap)
	for !w.finished() && !interrupted {
		select {
		case <-ctx.Done():
			interrupted = true
		case next, ok := <-updates:
			if !ok {
				interrupted = true
				break
			}
			snap = next
			w.report(snap)
		}
	}
	if interrupted {
		fmt.Fprintln(out, formatter.StyleYellow.Render("Interrupted."))
		snap = app.Store.Snapshot()
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.Header("History"))
	fmt.Fprint(out, formatter.FormatHistoryTable(snap.History, time.Local))

	// An interrupted run still exports what completed; use a fresh context.
	return exportRun(context.WithoutCancel(ctx), app, out, opts)
}

func addRunTimers(ctx context.Context, app *App, opts runOptions) ([]domain.Timer, error) {
	var created []domain.Timer
	if opts.presetFile != "" {
		presets, err := preset.Load(opts.presetFile)
		if err != nil {
			return nil, err
		}
		added, err := preset.Apply(ctx, app.Timers, presets)
		if err != nil {
			return nil, err
		}
		created = append(created, added...)
	}
	for _, spec := range opts.timers {
		t, err := app.Timers.Add(ctx, spec.Name, spec.Category, spec.Duration, spec.HalfwayAlert)
		if err != nil {
			return nil, err
		}
		created = append(created, t)
	}
	return created, nil
}

func startRunTimers(ctx context.Context, app *App, created []domain.Timer, category string) (store.Snapshot, error) {
	if category != "" {
		return app.Timers.StartCategory(ctx, category)
	}
	var snap store.Snapshot
	for _, t := range created {
		var err error
		if snap, err = app.Timers.Start(ctx, t.ID); err != nil {
			return snap, err
		}
	}
	return snap, nil
}

func exportRun(ctx context.Context, app *App, out io.Writer, opts runOptions) error {
	if opts.exportDir == "" && opts.archivePath == "" {
		return nil
	}

	var exporter service.FileExporter
	if opts.exportDir != "" {
		exporter = history.NewExporter(opts.exportDir, app.Sharer)
	}
	var archiver service.HistoryArchiver
	if opts.archivePath != "" {
		a, err := history.OpenArchiver(opts.archivePath)
		if err != nil {
			return err
		}
		defer a.Close()
		archiver = a
	}

	res, err := service.NewHistoryService(app.Store, exporter, archiver, app.Observer).Export(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.FormatExportSummary(res.Path, res.Entries, res.Run))
	return nil
}

// runWatcher prints status changes and halfway alerts for watched timers.
type runWatcher struct {
	out     io.Writer
	ids     []string
	now     func() time.Time
	last    map[string]domain.TimerStatus
	halfway map[string]bool
	done    map[string]bool
}

func newRunWatcher(out io.Writer, ids []string, now func() time.Time) *runWatcher {
	return &runWatcher{
		out:     out,
		ids:     ids,
		now:     now,
		last:    make(map[string]domain.TimerStatus),
		halfway: make(map[string]bool),
		done:    make(map[string]bool),
	}
}

func (w *runWatcher) report(snap store.Snapshot) {
	for _, id := range w.ids {
		t, ok := snap.Timer(id)
		if !ok {
			// Removed timers will never complete.
			w.done[id] = true
			continue
		}
		if t.PastHalfway() && !w.halfway[id] {
			w.halfway[id] = true
			fmt.Fprintln(w.out, formatter.FormatHalfwayAlert(t, w.now()))
		}
		if w.last[id] != t.Status {
			w.last[id] = t.Status
			fmt.Fprintln(w.out, formatter.FormatStatusLine(t, w.now()))
		}
		w.done[id] = t.Status == domain.TimerCompleted
	}
}

func (w *runWatcher) finished() bool {
	for _, id := range w.ids {
		if !w.done[id] {
			return false
		}
	}
	return true
}
