// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -config, -theme, -dialect, -log, -verbose, -no-color, -max-attempts, -version, -cursor-demo

package main

import (
	"flag"

	"github.com/mauromedda/promptkit-go/internal/config"
)

type cliArgs struct {
	config      string
	theme       string
	dialect     string
	logFile     string
	verbose     bool
	noColor     bool
	maxAttempts int
	version     bool
	cursorDemo  bool
	listThemes  bool
}

func parseFlags(fs *flag.FlagSet, argv []string) (cliArgs, error) {
	var args cliArgs

	fs.StringVar(&args.config, "config", "", "Config file (default $XDG_CONFIG_HOME/promptkit/config.yaml)")
	fs.StringVar(&args.theme, "theme", "", "Built-in theme name or theme file path")
	fs.StringVar(&args.dialect, "dialect", "", "Cursor strategy: auto, ansi, dec, dsr, legacy, none")
	fs.StringVar(&args.logFile, "log", "", "Append diagnostics to this file")
	fs.BoolVar(&args.verbose, "verbose", false, "Log at debug level")
	fs.BoolVar(&args.noColor, "no-color", false, "Disable styling and cursor control")
	fs.IntVar(&args.maxAttempts, "max-attempts", 0, "Give up after this many rejected answers (0 = never)")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.BoolVar(&args.cursorDemo, "cursor-demo", false, "Run the cursor save/restore demo before the survey")
	fs.BoolVar(&args.listThemes, "list-themes", false, "List built-in themes and exit")

	err := fs.Parse(argv)
	return args, err
}

// overrides returns the settings given on the command line.
func (a cliArgs) overrides() *config.Settings {
	s := &config.Settings{
		Theme:       a.theme,
		Dialect:     a.dialect,
		NoColor:     a.noColor,
		MaxAttempts: a.maxAttempts,
		LogFile:     a.logFile,
	}
	if a.verbose {
		s.LogLevel = "debug"
	}
	return s
}
