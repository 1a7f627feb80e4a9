// Package fileutil writes generated output files.
package fileutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrNotRegularFile is returned when a path exists but is not a regular file.
var ErrNotRegularFile = errors.New("not a regular file")

// WriteAtomic writes path by streaming into a sibling temporary file and
// renaming it into place. The temporary file is closed on every exit path and
// removed when anything fails, so readers never observe a partial file.
func WriteAtomic(fs afero.Fs, path string, write func(w io.Writer) error) (err error) {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}
	tmp := path + ".tmp"
	// #nosec G302 -- generated documentation is public content
	f, err := fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if f != nil {
			_ = f.Close()
		}
		if err != nil {
			_ = fs.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = write(bw); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("flush temp file: %w", err)
	}
	closeErr := f.Close()
	f = nil
	if closeErr != nil {
		err = fmt.Errorf("close temp file: %w", closeErr)
		return err
	}
	if err = fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

// WriteString is WriteAtomic for an in-memory body.
func WriteString(fs afero.Fs, path, content string) error {
	return WriteAtomic(fs, path, func(w io.Writer) error {
		_, err := io.WriteString(w, content)
		return err
	})
}

// EnsureRegularFile checks that path exists and is a regular file.
func EnsureRegularFile(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}
	return nil
}
