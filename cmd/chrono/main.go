package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/chrono/internal/cli"
	"github.com/alexanderramin/chrono/internal/config"
	"github.com/alexanderramin/chrono/internal/history"
	"github.com/alexanderramin/chrono/internal/preset"
	"github.com/alexanderramin/chrono/internal/service"
	"github.com/alexanderramin/chrono/internal/store"
	"github.com/alexanderramin/chrono/internal/ticker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Logs never go to the terminal while the TUI owns it: a log file when
	// configured, stderr only for use-case logging in headless runs.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "chrono")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	} else if cfg.LogUseCases {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewSlogUseCaseObserver(logger)
	}

	// Wire the live store and its ticking driver
	timers := store.New()

	driver := ticker.NewDriver(timers, ticker.Config{TickInterval: cfg.TickInterval, Logger: logger})
	driverDone := make(chan struct{})
	go func() {
		defer close(driverDone)
		driver.Run(ctx)
	}()
	// Closing the store ends the driver's subscription.
	defer func() {
		timers.Close()
		<-driverDone
	}()

	// Wire export targets
	sharer, err := history.NewSharer(cfg.ShareMode, logger)
	if err != nil {
		return err
	}
	exporter := history.NewExporter(cfg.ExportDir, sharer)

	// A nil *Archiver must not reach the service as a non-nil interface.
	var archiver service.HistoryArchiver
	if cfg.ArchiveDB != "" {
		a, err := history.OpenArchiver(cfg.ArchiveDB)
		if err != nil {
			return fmt.Errorf("opening archive: %w", err)
		}
		defer a.Close()
		archiver = a
	}

	var presets []preset.Timer
	if cfg.PresetsFile != "" {
		if _, statErr := os.Stat(cfg.PresetsFile); statErr == nil {
			if presets, err = preset.Load(cfg.PresetsFile); err != nil {
				return err
			}
		}
	}

	app := &cli.App{
		Store:       timers,
		Timers:      service.NewTimerService(timers, observer),
		History:     service.NewHistoryService(timers, exporter, archiver, observer),
		Sharer:      sharer,
		Observer:    observer,
		Presets:     presets,
		PresetPath:  cfg.PresetsFile,
		ArchivePath: cfg.ArchiveDB,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
