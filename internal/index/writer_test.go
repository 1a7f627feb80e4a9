package index

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"git.home.luguber.info/inful/hidldoc/internal/docs"
	ferrors "git.home.luguber.info/inful/hidldoc/internal/foundation/errors"
	"git.home.luguber.info/inful/hidldoc/internal/metrics"
	"git.home.luguber.info/inful/hidldoc/internal/templates"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCollector(root string) *Collector {
	c := NewCollector(root)
	c.AppendAll([]docs.Document{
		{Name: "INfc", PackageName: "android.hardware.nfc", PackageVersion: 1.0, Kind: docs.KindInterface, Description: "Controls the NFC chip."},
		{Name: "types", PackageName: "android.hardware.nfc", PackageVersion: 1.0, Kind: docs.KindOther},
		{Name: "IDevice", PackageName: "android.hardware.audio", PackageVersion: 2.0, Kind: docs.KindInterface, Description: "Audio device."},
		{Name: "INfc", PackageName: "android.hardware.nfc", PackageVersion: 1.1, Kind: docs.KindInterface, Description: "Adds eSE support."},
	})
	return c
}

func TestWriter_WritesPageThenTOC(t *testing.T) {
	root := t.TempDir()
	rec := &countingRecorder{stages: map[string]metrics.ResultLabel{}}
	w := NewWriter(Options{Recorder: rec})

	res, err := w.Write(sampleCollector(root))
	require.NoError(t, err)

	assert.True(t, res.Written)
	assert.Equal(t, 4, res.Entries)
	assert.Equal(t, 2, res.Packages)
	assert.NotEmpty(t, res.RunID)

	// #nosec G304 -- test reads its own temp output
	page, err := os.ReadFile(filepath.Join(root, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, res.Page, string(page))
	assert.Contains(t, string(page), "<title>Index</title>")
	assert.Contains(t, string(page), res.Table)
	idxAudio := strings.Index(res.Table, "android.hardware.audio.IDevice")
	idx11 := strings.Index(res.Table, ">android.hardware.nfc.INfc</a>\n  </td>\n  <td>\n1.1")
	idx10 := strings.Index(res.Table, ">android.hardware.nfc.INfc</a>\n  </td>\n  <td>\n1.0")
	require.True(t, idxAudio >= 0 && idx11 >= 0 && idx10 >= 0, res.Table)
	assert.Less(t, idxAudio, idx11)
	assert.Less(t, idx11, idx10, "newest version first")

	// #nosec G304 -- test reads its own temp output
	toc, err := os.ReadFile(filepath.Join(root, "_book.yaml"))
	require.NoError(t, err)
	assert.Equal(t, res.TOC, string(toc))
	assert.True(t, strings.HasPrefix(string(toc), "# Generated by hidl-doc\ntoc:\n"))
	assert.Less(t, strings.Index(string(toc), "- title: android.hardware.audio"), strings.Index(string(toc), "- title: android.hardware.nfc"))
	assert.Contains(t, string(toc), "  - title: INfc @1.1\n    path: /reference/hidl/android/hardware/nfc/1.1/INfc.html\n")

	assert.Equal(t, metrics.ResultSuccess, rec.stages[StageRenderPage])
	assert.Equal(t, metrics.ResultSuccess, rec.stages[StageWritePage])
	assert.Equal(t, metrics.ResultSuccess, rec.stages[StageWriteTOC])
	assert.Equal(t, metrics.ResultSuccess, rec.outcome)
	assert.Equal(t, 4, rec.entries)
}

func TestWriter_LintModeWritesNothing(t *testing.T) {
	root := t.TempDir()
	rec := &countingRecorder{stages: map[string]metrics.ResultLabel{}}
	w := NewWriter(Options{Lint: true, Recorder: rec})

	res, err := w.Write(sampleCollector(root))
	require.NoError(t, err)

	assert.False(t, res.Written)
	assert.Contains(t, res.Table, "<table>")
	assert.NotEmpty(t, res.TOC)
	_, err = os.Stat(filepath.Join(root, "_book.yaml"))
	assert.True(t, os.IsNotExist(err), "lint mode must not write the toc")
	_, err = os.Stat(filepath.Join(root, "index.html"))
	assert.True(t, os.IsNotExist(err), "lint mode must not write the page")

	assert.Equal(t, metrics.ResultSuccess, rec.stages[StageRenderPage])
	assert.Equal(t, metrics.ResultSkipped, rec.stages[StageWriteTOC])
	assert.Equal(t, metrics.ResultSkipped, rec.outcome)
}

func TestWriter_EmptyCollector(t *testing.T) {
	fs := afero.NewMemMapFs()
	res, err := NewWriter(Options{Fs: fs}).Write(NewCollector("/out"))
	require.NoError(t, err)

	assert.Equal(t, "", res.Table)
	assert.NotContains(t, res.Page, "<table>")
	toc, err := afero.ReadFile(fs, "/out/_book.yaml")
	require.NoError(t, err)
	assert.Equal(t, "# Generated by hidl-doc\ntoc:\n- title: Index\n  path: /reference/hidl\n", string(toc))
}

func TestWriter_CustomOptions(t *testing.T) {
	fs := afero.NewMemMapFs()
	page, err := templates.Parse("index", "{{ .title }}|{{ .book_path }}|{{ .entries }}")
	require.NoError(t, err)
	w := NewWriter(Options{Fs: fs, Title: "HIDL", TOCRoot: "/docs/hidl/", TOCFile: "toc.yaml", Page: page})

	c := NewCollector("/out")
	c.Append(docs.Document{Name: "IFoo", PackageName: "p", PackageVersion: 1}, nil, nil)
	res, err := w.Write(c)
	require.NoError(t, err)

	assert.Equal(t, "/out/toc.yaml", res.TOCPath)
	assert.True(t, strings.HasPrefix(res.Page, "HIDL|/docs/hidl/toc.yaml|<table>"))
	toc, err := afero.ReadFile(fs, "/out/toc.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(toc), "    path: /docs/hidl/p/1.0/IFoo.html\n")
}

func TestWriter_TOCWriteFailureIsFatalFilesystemError(t *testing.T) {
	base := afero.NewMemMapFs()
	fs := &failingFs{Fs: base, failOn: "/out/_book.yaml.tmp"}
	rec := &countingRecorder{stages: map[string]metrics.ResultLabel{}}

	_, err := NewWriter(Options{Fs: fs, Recorder: rec}).Write(sampleCollector("/out"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTOCWriteFailed)

	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryFileSystem, classified.Category())
	assert.True(t, classified.IsFatal())
	assert.False(t, classified.CanRetry())
	path, _ := classified.Context().GetString("path")
	assert.Equal(t, "/out/_book.yaml", path)

	exists, _ := afero.Exists(base, "/out/index.html")
	assert.True(t, exists, "page is written before the toc")
	assert.Equal(t, metrics.ResultFatal, rec.stages[StageWriteTOC])
	assert.Equal(t, metrics.ResultFatal, rec.outcome)
}

func TestWriter_PageWriteFailureStopsBeforeTOC(t *testing.T) {
	base := afero.NewMemMapFs()
	fs := &failingFs{Fs: base, failOn: "/out/index.html.tmp"}

	_, err := NewWriter(Options{Fs: fs}).Write(sampleCollector("/out"))
	require.ErrorIs(t, err, ErrPageWriteFailed)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))

	exists, _ := afero.Exists(base, "/out/_book.yaml")
	assert.False(t, exists)
}

func TestWriter_TOCPathIsDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "_book.yaml"), 0o750))

	_, err := NewWriter(Options{}).Write(sampleCollector(root))
	require.ErrorIs(t, err, ErrTOCWriteFailed)

	info, statErr := os.Stat(filepath.Join(root, "_book.yaml"))
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestWriter_TOCMissingAfterWrite(t *testing.T) {
	base := afero.NewMemMapFs()
	fs := &vanishingFs{Fs: base, missing: "/out/_book.yaml"}
	rec := &countingRecorder{stages: map[string]metrics.ResultLabel{}}

	_, err := NewWriter(Options{Fs: fs, Recorder: rec}).Write(sampleCollector("/out"))
	require.ErrorIs(t, err, ErrTOCWriteFailed)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, ferrors.CategoryFileSystem, ferrors.GetCategory(err))
	assert.Contains(t, err.Error(), "table of contents missing after write")
	assert.Equal(t, metrics.ResultFatal, rec.stages[StageWriteTOC])

	exists, _ := afero.Exists(base, "/out/_book.yaml")
	assert.True(t, exists, "rename completed before the check")
}

// vanishingFs reports one path as absent from Stat.
type vanishingFs struct {
	afero.Fs
	missing string
}

func (f *vanishingFs) Stat(name string) (os.FileInfo, error) {
	if name == f.missing {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrNotExist}
	}
	return f.Fs.Stat(name)
}

// failingFs fails to open one path.
type failingFs struct {
	afero.Fs
	failOn string
}

func (f *failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if name == f.failOn {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

type countingRecorder struct {
	stages  map[string]metrics.ResultLabel
	outcome metrics.ResultLabel
	entries int
}

func (r *countingRecorder) ObserveStageDuration(string, time.Duration) {}

func (r *countingRecorder) IncStageResult(stage string, result metrics.ResultLabel) {
	r.stages[stage] = result
}

func (r *countingRecorder) ObserveRunDuration(time.Duration) {}

func (r *countingRecorder) IncRunOutcome(result metrics.ResultLabel) { r.outcome = result }

func (r *countingRecorder) SetIndexSize(entries, _ int) { r.entries = entries }
