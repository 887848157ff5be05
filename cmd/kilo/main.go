// Package main is the entry point for the kilo editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/kilo/internal/app"
	"github.com/dshills/kilo/internal/config"
	"github.com/dshills/kilo/internal/renderer/style"
)

// Version information (set via ldflags during build).
var (
	version = "0.0.1"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	// Raw mode turns Ctrl-C into a key, so only signals sent by other
	// processes arrive here.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		// The display is already restored, so the error is readable.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	opts := app.Options{Version: version}
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.Backend, "backend", "", "Display backend (ansi, tcell)")
	flag.StringVar(&opts.Theme, "theme", "", "Colour theme (kilo or a chroma style name)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "kilo - a small terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: kilo [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-S save, Ctrl-Q quit, Ctrl-F find\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kilo                        Open an empty buffer\n")
		fmt.Fprintf(os.Stderr, "  kilo main.c                 Open a file\n")
		fmt.Fprintf(os.Stderr, "  kilo -theme monokai main.c  Open with a chroma colour theme\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("kilo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	switch opts.Backend {
	case "", config.BackendANSI, config.BackendTCell:
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid backend %q (must be %s or %s)\n", opts.Backend, config.BackendANSI, config.BackendTCell)
		os.Exit(1)
	}

	if opts.Theme != "" {
		if _, err := style.Load(opts.Theme, true); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	opts.Files = flag.Args()
	if len(opts.Files) > 1 {
		fmt.Fprintf(os.Stderr, "Error: kilo edits one file at a time\n")
		os.Exit(1)
	}

	return opts
}
