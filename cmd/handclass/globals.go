package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/handclass/internal/config"
	"github.com/lox/handclass/internal/display"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"handclass.hcl" type:"path" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (debug|info|warn|error), overrides config"`
	NoColor  bool   `help:"Disable coloured output, overrides config"`

	out    io.Writer
	logOut io.Writer
}

// env is what a command needs once flags and config are resolved
type env struct {
	cfg     *config.Config
	logger  *log.Logger
	printer *display.Printer
}

// setup loads configuration, applies flag overrides and builds the logger and printer.
// overrides runs before validation so commands can apply their own flags.
func (g *Globals) setup(overrides func(*config.Config)) (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.NoColor {
		color := false
		cfg.Color = &color
	}
	if overrides != nil {
		overrides(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := g.out
	if out == nil {
		out = os.Stdout
	}
	logOut := g.logOut
	if logOut == nil {
		logOut = os.Stderr
	}

	return &env{
		cfg:     cfg,
		logger:  newLogger(cfg.LogLevel, logOut),
		printer: display.New(out, cfg.ColorEnabled()),
	}, nil
}

// newLogger creates a console logger at the given level, defaulting to info
func newLogger(level string, w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: true})
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
