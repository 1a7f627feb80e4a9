package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/hidldoc/internal/logfields"
	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// watchManifest calls rebuild after the manifest settles following a change.
// It blocks until ctx is cancelled.
func watchManifest(ctx context.Context, manifestPath string, debounce time.Duration, rebuild func()) error {
	abs, err := filepath.Abs(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to resolve manifest path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors replace files by rename, so watch the directory.
	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch manifest directory %s: %w", dir, err)
	}
	slog.Info("Watching manifest", logfields.Path(abs))

	changes := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
					continue
				}
				slog.Debug("Manifest change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("Manifest watcher error", logfields.Error(err))
			}
		}
	}()

	debounceLoop(ctx, changes, debounce, rebuild)
	return nil
}

// debounceLoop runs fn once per burst of signals on changes, after the
// burst has been quiet for d.
func debounceLoop(ctx context.Context, changes <-chan struct{}, d time.Duration, fn func()) {
	timer := time.NewTimer(d)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-changes:
			timer.Reset(d)
		case <-timer.C:
			fn()
		}
	}
}
