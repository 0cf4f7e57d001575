package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	LogLevel string `help:"Log level (debug|info|warn|error); overrides the config file"`
	NoColor  bool   `help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play a table from a config file"`
	Simulate SimulateCmd      `cmd:"" help:"Run bot-only tables and report results"`
	Eval     EvalCmd          `cmd:"" help:"Classify and compare five card hands"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drawpoker"),
		kong.Description("Single street five card draw poker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// newLogger builds the process logger. Logs go to file when one is named
// so they don't interleave with table output.
func newLogger(level log.Level, file string) (*log.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "drawpoker",
		Level:           level,
	})
	return logger, closer, nil
}

// resolveLevel prefers the command line level over the fallback
func (g *Globals) resolveLevel(fallback log.Level) (log.Level, error) {
	if g.LogLevel == "" {
		return fallback, nil
	}
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", g.LogLevel, err)
	}
	return level, nil
}
