// systop is an interactive terminal system monitor.
//
// It continuously samples host metrics (CPU, memory, per-process stats,
// network counters, disk usage) and renders them as a tabbed dashboard with
// live gauges, scrolling history charts, and a sortable, killable process
// list.
//
// Usage:
//
//	systop [flags]
//
// Flags:
//
//	-config string    Path to configuration file (default: ~/.config/systop/config.yaml)
//	-interval string  Snapshot poll interval override, e.g. "2s"
//	-history int      History chart capacity override, in samples
//	-log string       Log file path override (default: no logging)
//	-version          Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"gitlab.com/tinyland/lab/systop/collectors"
	"gitlab.com/tinyland/lab/systop/collectors/system"
	"gitlab.com/tinyland/lab/systop/config"
	"gitlab.com/tinyland/lab/systop/display/tui"
	"gitlab.com/tinyland/lab/systop/internal/procctl"
)

func main() {
	var (
		configPath   = flag.String("config", "", "Path to configuration file (default: ~/.config/systop/config.yaml)")
		intervalFlag = flag.String("interval", "", "Snapshot poll interval override, e.g. \"2s\"")
		historyFlag  = flag.Int("history", 0, "History chart capacity override, in samples")
		logPath      = flag.String("log", "", "Log file path override (default: no logging)")
		showVersion  = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("systop %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// The dashboard owns the whole terminal; refuse to start without one.
	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "systop: stdout is not a terminal")
		os.Exit(1)
	}

	var cfg *config.Config
	var cfgErr error
	if *configPath != "" {
		cfg, cfgErr = config.LoadFromFile(*configPath)
	} else {
		cfg, cfgErr = config.Load()
	}
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "systop: failed to load config: %v\n", cfgErr)
		os.Exit(1)
	}

	// CLI overrides win over the config file.
	if *intervalFlag != "" {
		d, err := time.ParseDuration(*intervalFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "systop: invalid -interval %q: %v\n", *intervalFlag, err)
			os.Exit(1)
		}
		cfg.Monitor.PollInterval = config.Duration{Duration: d}
	}
	if *historyFlag > 0 {
		cfg.Monitor.HistorySamples = *historyFlag
	}
	if *logPath != "" {
		cfg.Log.File = *logPath
	}

	logger, closeLog, err := buildLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "systop: failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// The TUI draws on the alt screen; if we die unexpectedly, restore the
	// primary screen and cursor before printing the error.
	defer func() {
		if r := recover(); r != nil {
			fmt.Print("\x1b[?1049l\x1b[?25h")
			fmt.Fprintf(os.Stderr, "systop: panic: %v\n", r)
			os.Exit(1)
		}
	}()

	registry := collectors.NewRegistry()
	registry.Register(system.New(cfg.Monitor.PollInterval.Duration, logger))

	updatesCh := make(chan collectors.Update, collectors.DefaultUpdateBufferSize)
	runner := collectors.NewRunner(registry, updatesCh, logger)

	model := tui.NewModel(cfg, runner, procctl.NewTerminator(), logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if err := runner.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "systop: collector start failed: %v\n", err)
		os.Exit(1)
	}

	// Bridge goroutine: convert collector updates into Bubbletea messages.
	go func() {
		for update := range updatesCh {
			snap, _ := update.Data.(*system.Snapshot)
			p.Send(tui.SnapshotMsg{
				Snapshot:  snap,
				Timestamp: update.Timestamp,
				Err:       update.Err,
			})
		}
	}()

	_, runErr := p.Run()
	runner.Stop()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "systop: %v\n", runErr)
		os.Exit(1)
	}
}

// buildLogger opens the configured log file. Logging is off by default:
// the TUI owns the terminal, so there is nowhere sensible to write unless a
// file is configured.
func buildLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}
