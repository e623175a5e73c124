// SPDX-License-Identifier: MIT

// Command gridpath loads a scenario file, runs its searches and prints one
// line per search. With -view the first result with a path is shown in the
// terminal until a key is pressed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridkit/internal/ctxlog"
	"github.com/katalvlaran/gridkit/render"
	"github.com/katalvlaran/gridkit/scenario"
)

// ExitError carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Message }

// config is the parsed command line.
type config struct {
	path      string
	logLevel  string
	logFormat string
	view      bool
}

// newScreen is swapped in tests for a simulation screen.
var newScreen = tcell.NewScreen

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, outW)
	if err != nil || shouldExit {
		return err
	}

	logger := newLogger(cfg.logLevel, cfg.logFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	sc, err := scenario.Load(ctx, cfg.path)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	outcomes, err := scenario.Run(ctx, sc)
	if err != nil {
		return err
	}
	for _, o := range outcomes {
		fmt.Fprintln(outW, o.String())
	}

	if !cfg.view {
		return nil
	}
	for _, o := range outcomes {
		if len(o.Path) == 0 {
			continue
		}
		return view(sc, o)
	}
	logger.Warn("Nothing to view: no search produced a path.")

	return nil
}

// view shows one outcome in a full-screen terminal session.
func view(sc *scenario.Scenario, o scenario.Outcome) error {
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	return render.Interact(screen, sc.Grid(), o.Path,
		render.WithCaption(o.String()+"  [any key]"))
}

// parseArgs processes command-line arguments. It returns the config, whether
// the program should exit cleanly, or an ExitError.
func parseArgs(args []string, output io.Writer) (config, bool, error) {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
gridpath - run grid searches described in an HCL scenario file.

Usage:
  gridpath [options] SCENARIO.hcl

Options:
`)
		fs.PrintDefaults()
	}

	logLevel := fs.String("log-level", "warn", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	logFormat := fs.String("log-format", "text", "Log output format: 'text' or 'json'.")
	viewFlag := fs.Bool("view", false, "Show the first path in the terminal.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config{}, true, nil
		}
		return config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return config{}, true, nil
	}
	if fs.NArg() > 1 {
		return config{}, false, &ExitError{Code: 2, Message: "exactly one scenario file expected"}
	}

	cfg := config{
		path:      fs.Arg(0),
		logLevel:  strings.ToLower(*logLevel),
		logFormat: strings.ToLower(*logFormat),
		view:      *viewFlag,
	}
	if cfg.logFormat != "text" && cfg.logFormat != "json" {
		return config{}, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch cfg.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return config{}, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return cfg, false, nil
}

// newLogger builds a text or JSON slog.Logger writing to w.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
