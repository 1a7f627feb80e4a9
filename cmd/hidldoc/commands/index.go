package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/hidldoc/internal/config"
	"git.home.luguber.info/inful/hidldoc/internal/docs"
	"git.home.luguber.info/inful/hidldoc/internal/index"
	"git.home.luguber.info/inful/hidldoc/internal/logfields"
	"git.home.luguber.info/inful/hidldoc/internal/metrics"
	"git.home.luguber.info/inful/hidldoc/internal/templates"
	"github.com/fatih/color"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
)

// IndexCmd implements the 'index' command.
type IndexCmd struct {
	Manifest string `arg:"" type:"path" help:"YAML manifest listing the generated documents"`
	Output   string `short:"o" help:"Output root (overrides output.directory)"`
	Lint     bool   `help:"Render the index without writing any files"`
	Watch    bool   `short:"w" help:"Regenerate whenever the manifest changes"`
}

func (c *IndexCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	configureLogging(os.Stderr, cfg.Logging, root.Verbose)

	fs := afero.NewOsFs()
	generate := func() error {
		res, err := RunIndex(fs, cfg, c.Manifest)
		if err != nil {
			return err
		}
		printSummary(g.out(), res)
		return nil
	}

	if !c.Watch {
		return generate()
	}
	if err := generate(); err != nil {
		slog.Error("Index generation failed", logfields.Error(err))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchManifest(ctx, c.Manifest, defaultDebounce, func() {
		if err := generate(); err != nil {
			slog.Error("Index generation failed", logfields.Error(err))
		}
	})
}

// applyOverrides lets command line flags win over the configuration file.
func (c *IndexCmd) applyOverrides(cfg *config.Config) {
	if c.Output != "" {
		cfg.Output.Directory = c.Output
	}
	if c.Lint {
		cfg.Lint = true
	}
}

// RunIndex loads the manifest, collects one entry per document and writes
// the index page and table of contents below cfg.Output.Directory.
func RunIndex(fs afero.Fs, cfg *config.Config, manifestPath string) (*index.Result, error) {
	manifest, err := docs.LoadManifest(fs, manifestPath)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded manifest", logfields.Path(manifestPath), logfields.Entries(len(manifest.Documents)))

	collector := index.NewCollector(cfg.Output.Directory)
	collector.AppendAll(manifest.Documents)

	page, err := templates.LoadIndexPage(fs, cfg.Output.Directory, cfg.Index.Template)
	if err != nil {
		return nil, err
	}

	var (
		reg      *prom.Registry
		recorder metrics.Recorder = metrics.NoopRecorder{}
	)
	// Lint mode leaves the filesystem untouched, metrics textfile included.
	if cfg.Metrics.Textfile != "" && !cfg.Lint {
		reg = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
	}
	writer := index.NewWriter(index.Options{
		Title:    cfg.Index.Title,
		TOCRoot:  cfg.TOC.Root,
		TOCFile:  cfg.TOC.File,
		Lint:     cfg.Lint,
		Page:     page,
		Fs:       fs,
		Recorder: recorder,
	})
	res, err := writer.Write(collector)

	if reg != nil {
		if mErr := metrics.WriteTextfile(reg, cfg.Metrics.Textfile); mErr != nil {
			slog.Warn("Failed to export metrics", logfields.Path(cfg.Metrics.Textfile), logfields.Error(mErr))
		}
	}
	return res, err
}

func printSummary(w io.Writer, res *index.Result) {
	if !res.Written {
		_, _ = color.New(color.FgYellow).Fprintf(w, "lint: %d entries in %d packages, no files written\n", res.Entries, res.Packages)
		return
	}
	_, _ = color.New(color.FgGreen).Fprintf(w, "indexed %d entries in %d packages\n", res.Entries, res.Packages)
	_, _ = fmt.Fprintf(w, "  %s\n  %s\n", res.PagePath, res.TOCPath)
}
