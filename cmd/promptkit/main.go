// ABOUTME: CLI entry point for the promptkit demo with terminal crash recovery
// ABOUTME: Loads config, builds the stdio terminal and runs the cursor demo and survey

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mauromedda/promptkit-go/internal/config"
	"github.com/mauromedda/promptkit-go/internal/log"
	"github.com/mauromedda/promptkit-go/pkg/prompt"
	"github.com/mauromedda/promptkit-go/pkg/tui/terminal"
	"github.com/mauromedda/promptkit-go/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("promptkit %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}
	if args.listThemes {
		fmt.Println(strings.Join(theme.BuiltinNames(), "\n"))
		os.Exit(0)
	}

	if err := run(args); err != nil {
		if errors.Is(err, prompt.ErrInterrupted) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads settings, opens the terminal and drives the demo.
func run(args cliArgs) error {
	loaded, err := config.Load(args.config, os.Getenv)
	if err != nil {
		return err
	}
	settings := config.Merge(loaded, args.overrides())
	if err := settings.Validate(); err != nil {
		return err
	}

	closeLog, err := setupLogging(settings)
	if err != nil {
		return err
	}
	defer closeLog()

	th, err := resolveTheme(settings.Theme, os.Getenv)
	if err != nil {
		return err
	}

	t, restoreVT, err := terminal.NewStdio(os.Getenv, terminalOptions(settings)...)
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer func() { _ = restoreVT() }()
	defer terminal.RestoreOnPanic(t)

	log.With("mode", t.Mode().String()).Info("terminal ready")

	p := prompt.New(t,
		prompt.WithTheme(th),
		prompt.WithMaxAttempts(settings.MaxAttempts),
	)

	if args.cursorDemo {
		if err := cursorDemo(t, p); err != nil {
			return err
		}
	}
	return survey(p)
}

// setupLogging applies the level and, when a log file is configured, routes
// output to it.
func setupLogging(s *config.Settings) (func(), error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	if s.LogFile == "" {
		return func() {}, nil
	}
	closeFn, err := log.OpenFile(s.LogFile)
	if err != nil {
		return nil, err
	}
	return func() { _ = closeFn() }, nil
}

// terminalOptions maps settings onto terminal options.
func terminalOptions(s *config.Settings) []terminal.Option {
	var opts []terminal.Option
	if s.NoColor {
		opts = append(opts, terminal.WithCapabilities(terminal.Caps{}))
	}
	// Validate already rejected unknown names.
	if mode, ok, _ := terminal.ParseCursorMode(s.Dialect); ok {
		opts = append(opts, terminal.WithCursorMode(mode))
	}
	return opts
}

// resolveTheme accepts a built-in name, a file path, or the name of a file
// in the themes directory.
func resolveTheme(name string, getenv func(string) string) (*theme.Theme, error) {
	if name == "" || theme.Builtin(name) != nil {
		return theme.Resolve(name)
	}
	if _, err := os.Stat(name); err == nil {
		return theme.LoadFile(name)
	}
	candidate := filepath.Join(config.ThemesDir(getenv), name+".yaml")
	if _, err := os.Stat(candidate); err == nil {
		return theme.LoadFile(candidate)
	}
	return nil, fmt.Errorf("unknown theme %q (built-in: %s)", name, strings.Join(theme.BuiltinNames(), ", "))
}
