package commands

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/hidldoc/internal/config"
	"git.home.luguber.info/inful/hidldoc/internal/logfields"
	"github.com/alecthomas/kong"
)

// Global is shared state bound into every command's Run.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer // user-facing output, stdout in production
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"hidldoc.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Index      IndexCmd   `cmd:"" default:"withargs" help:"Generate index.html and the book table of contents"`
	Init       InitCmd    `cmd:"" help:"Initialize a new configuration file"`
	VersionCmd VersionCmd `cmd:"" name:"version" help:"Print version information"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig reads the configuration file. A missing file falls back to the
// defaults so the tool works without any configuration.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, config.ErrConfigNotFound) {
		slog.Debug("No configuration file, using defaults", logfields.Path(path))
		return config.Default(), nil
	}
	return cfg, err
}

// configureLogging replaces the default logger with the configured handler.
// Verbose always wins over the configured level.
func configureLogging(w io.Writer, cfg config.LoggingConfig, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level.SlogLevel()}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	var h slog.Handler
	if cfg.Format == config.LogFormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}
