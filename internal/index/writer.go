package index

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/hidldoc/internal/fileutil"
	ferrors "git.home.luguber.info/inful/hidldoc/internal/foundation/errors"
	"git.home.luguber.info/inful/hidldoc/internal/logfields"
	"git.home.luguber.info/inful/hidldoc/internal/metrics"
	"git.home.luguber.info/inful/hidldoc/internal/templates"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Output file names and the default page title.
const (
	PageFileName = "index.html"
	TOCFileName  = "_book.yaml"
	DefaultTitle = "Index"
)

// Stage names used for logs and metrics.
const (
	StageRenderPage = "render_page"
	StageWritePage  = "write_page"
	StageWriteTOC   = "write_toc"
)

// Options configures a Writer. Zero values select the defaults.
type Options struct {
	Title    string // page title, DefaultTitle
	TOCRoot  string // site path of the TOC, DefaultTOCRoot
	TOCFile  string // TOC file name below the output root, TOCFileName
	Lint     bool   // render everything, write nothing
	Page     *templates.Page
	Fs       afero.Fs
	Recorder metrics.Recorder
}

// Result describes one run.
type Result struct {
	RunID    string
	Entries  int
	Packages int
	Table    string // HTML table fragment substituted as "entries"
	Page     string // rendered index page
	TOC      string // rendered table of contents
	PagePath string
	TOCPath  string
	Written  bool // false in lint mode
}

// Writer renders and persists the index page and table of contents.
type Writer struct {
	opts Options
}

// NewWriter returns a Writer with defaults applied to opts.
func NewWriter(opts Options) *Writer {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.TOCRoot == "" {
		opts.TOCRoot = DefaultTOCRoot
	}
	if opts.TOCFile == "" {
		opts.TOCFile = TOCFileName
	}
	if opts.Page == nil {
		opts.Page = templates.DefaultIndexPage()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	return &Writer{opts: opts}
}

// Write sorts the collected entries, then renders and writes index.html
// followed by the table of contents. The first failure aborts the run.
func (w *Writer) Write(c *Collector) (*Result, error) {
	start := time.Now()
	root := c.OutputRoot()
	res := &Result{
		RunID:    uuid.NewString(),
		Entries:  c.Len(),
		PagePath: filepath.Join(root, PageFileName),
		TOCPath:  filepath.Join(root, w.opts.TOCFile),
	}
	log := slog.With(logfields.RunID(res.RunID))
	log.Info("Generating index", logfields.Entries(res.Entries), logfields.LintMode(w.opts.Lint), logfields.Path(root))

	c.Sort()
	entries := c.Entries()
	groups := GroupByPackage(entries)
	res.Packages = len(groups)
	w.opts.Recorder.SetIndexSize(res.Entries, res.Packages)

	err := w.stage(log, StageRenderPage, false, func() error {
		res.Table = RenderTable(entries)
		page, err := w.opts.Page.Render(map[string]string{
			"title":     w.opts.Title,
			"entries":   res.Table,
			"book_path": TOCPath(w.opts.TOCRoot, w.opts.TOCFile),
		})
		res.Page = page
		return err
	})
	if err == nil {
		err = w.stage(log, StageWritePage, w.opts.Lint, func() error {
			if err := fileutil.WriteString(w.opts.Fs, res.PagePath, res.Page); err != nil {
				return fsError(ErrPageWriteFailed, err, "write index page", res.PagePath)
			}
			log.Info("Wrote index", logfields.Path(res.PagePath))
			return nil
		})
	}
	if err == nil {
		res.TOC = RenderTOC(groups, w.opts.TOCRoot)
		err = w.stage(log, StageWriteTOC, w.opts.Lint, func() error {
			return w.writeTOC(log, res.TOCPath, res.TOC)
		})
	}

	w.opts.Recorder.ObserveRunDuration(time.Since(start))
	if err != nil {
		w.opts.Recorder.IncRunOutcome(metrics.ResultFatal)
		return nil, err
	}
	res.Written = !w.opts.Lint
	if w.opts.Lint {
		w.opts.Recorder.IncRunOutcome(metrics.ResultSkipped)
		log.Info("Lint mode: index rendered, no files written", logfields.Entries(res.Entries), logfields.Packages(res.Packages))
	} else {
		w.opts.Recorder.IncRunOutcome(metrics.ResultSuccess)
	}
	return res, nil
}

func (w *Writer) writeTOC(log *slog.Logger, path, toc string) error {
	if err := fileutil.WriteString(w.opts.Fs, path, toc); err != nil {
		return fsError(ErrTOCWriteFailed, err, "write table of contents", path)
	}
	if err := fileutil.EnsureRegularFile(w.opts.Fs, path); err != nil {
		return fsError(ErrTOCWriteFailed, err, "table of contents missing after write", path)
	}
	log.Info("Wrote toc", logfields.Path(path))
	return nil
}

// stage runs fn, or skips it when skip is set, and records its outcome.
func (w *Writer) stage(log *slog.Logger, name string, skip bool, fn func() error) error {
	if skip {
		w.opts.Recorder.IncStageResult(name, metrics.ResultSkipped)
		log.Debug("Stage skipped", logfields.Stage(name))
		return nil
	}
	start := time.Now()
	err := fn()
	d := time.Since(start)
	w.opts.Recorder.ObserveStageDuration(name, d)
	if err != nil {
		w.opts.Recorder.IncStageResult(name, metrics.ResultFatal)
		log.Error("Stage failed", logfields.Stage(name), logfields.Error(err))
		return err
	}
	w.opts.Recorder.IncStageResult(name, metrics.ResultSuccess)
	log.Debug("Stage complete", logfields.Stage(name), logfields.DurationMS(float64(d.Microseconds())/1000))
	return nil
}

func fsError(sentinel, cause error, message, path string) error {
	return ferrors.FileSystemError(message).
		WithCause(fmt.Errorf("%w: %w", sentinel, cause)).
		WithContext("path", path).
		Build()
}
