// Package watcher implements watch mode: it observes a source tree and
// reports debounced batches of changed paths so the document can be
// regenerated after each quiet period.
package watcher

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultQuietPeriod is how long the tree must stay unchanged before a
// regeneration is triggered. Editors often write several events per save.
const defaultQuietPeriod = 500 * time.Millisecond

// IgnoreChecker filters watched paths. The generated output file must be
// excluded by the caller, otherwise each regeneration would trigger the next.
type IgnoreChecker interface {
	ShouldIgnoreDir(absolutePath string) bool
	ShouldIgnore(absolutePath string) bool
}

// Watcher provides recursive file system watching with debouncing.
type Watcher struct {
	fsWatcher     *fsnotify.Watcher
	debouncer     *Debouncer
	ignoreChecker IgnoreChecker
	outputPath    string
	rootDir       string
	logger        *slog.Logger
}

// New creates a recursive watcher on rootDir. outputPath names the generated
// document; changes to it never trigger regeneration.
func New(rootDir, outputPath string, ignoreChecker IgnoreChecker, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:     fsWatcher,
		debouncer:     NewDebouncer(defaultQuietPeriod),
		ignoreChecker: ignoreChecker,
		outputPath:    filepath.Clean(outputPath),
		rootDir:       rootDir,
		logger:        logger,
	}

	err = filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != rootDir && ignoreChecker.ShouldIgnoreDir(path) {
			return filepath.SkipDir
		}
		if watchErr := fsWatcher.Add(path); watchErr != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", watchErr)
		}
		return nil
	})
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return w, nil
}

// Changes returns the channel that receives debounced batches of changed
// paths.
func (w *Watcher) Changes() <-chan []string {
	return w.debouncer.Output()
}

// Start listens for file system events until the watcher is closed. Call it
// in a goroutine.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// handleEvent filters one fsnotify event and feeds the debouncer.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	// New directories are added to the watch set but do not trigger a run.
	if event.Has(fsnotify.Create) {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			if !w.ignoreChecker.ShouldIgnoreDir(path) {
				if err := w.fsWatcher.Add(path); err != nil {
					w.logger.Warn("failed to watch new directory", "path", path, "error", err)
				}
			}
			return
		}
	}

	if filepath.Clean(path) == w.outputPath {
		return
	}
	if w.ignoreChecker.ShouldIgnore(path) {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.debouncer.Add(path)
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
