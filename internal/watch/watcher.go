// Package watch re-applies navigation edits to layout files as they change.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/navinject/internal/foundation/errors"
	"git.home.luguber.info/inful/navinject/internal/inject"
	"git.home.luguber.info/inful/navinject/internal/logfields"
)

// DefaultDebounce is how long a file must stay quiet before it is processed.
const DefaultDebounce = 300 * time.Millisecond

// Processor handles one settled layout file.
type Processor interface {
	ProcessFile(path string) inject.FileReport
}

// Watcher watches a layout tree and feeds settled files to a Processor.
type Watcher struct {
	root      string
	ext       string
	debounce  time.Duration
	processor Processor
	logger    *slog.Logger
	fsw       *fsnotify.Watcher
}

// New creates a watcher for files ending in ext below root.
func New(root, ext string, processor Processor) (*Watcher, error) {
	if ext == "" {
		ext = inject.DefaultExtension
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryWatch, "failed to create file watcher").Build()
	}

	w := &Watcher{
		root:      root,
		ext:       ext,
		debounce:  DefaultDebounce,
		processor: processor,
		logger:    slog.Default(),
		fsw:       fsw,
	}
	if _, err := w.addTree(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// WithDebounce sets the quiet period.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	if d > 0 {
		w.debounce = d
	}
	return w
}

// WithLogger sets the structured logger.
func (w *Watcher) WithLogger(l *slog.Logger) *Watcher {
	if l != nil {
		w.logger = l
	}
	return w
}

// Close releases the watches. Run closes the watcher itself on return; Close
// is for a watcher that is never run.
func (w *Watcher) Close() {
	if err := w.fsw.Close(); err != nil {
		w.logger.Error("Error closing file watcher", logfields.Error(err))
	}
}

// Run processes change events until ctx is cancelled. All processing happens
// on the calling goroutine. The underlying watcher is closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	w.logger.Info("Watching layout files", logfields.Root(w.root), slog.Duration("debounce", w.debounce))

	pending := make(map[string]time.Time)
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	rearm := func() {
		if len(pending) == 0 {
			return
		}
		next := time.Time{}
		for _, deadline := range pending {
			if next.IsZero() || deadline.Before(next) {
				next = deadline
			}
		}
		timer.Reset(max(time.Until(next), 0))
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return errors.WatchError("file watcher stopped unexpectedly").
					WithContext("path", w.root).
					Build()
			}
			for _, path := range w.handle(event) {
				pending[path] = time.Now().Add(w.debounce)
			}
			timer.Stop()
			rearm()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.WatchError("file watcher stopped unexpectedly").
					WithContext("path", w.root).
					Build()
			}
			w.logger.Error("File watcher error", logfields.Error(err))

		case <-timer.C:
			now := time.Now()
			var due []string
			for path, deadline := range pending {
				if !deadline.After(now) {
					due = append(due, path)
				}
			}
			slices.Sort(due)
			for _, path := range due {
				delete(pending, path)
				if ctx.Err() != nil {
					return nil
				}
				w.process(path)
			}
			rearm()
		}
	}
}

// handle returns the layout files an event makes pending.
func (w *Watcher) handle(event fsnotify.Event) []string {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return nil
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			files, err := w.addTree(event.Name)
			if err != nil {
				w.logger.Warn("Failed to watch new directory", logfields.Path(event.Name), logfields.Error(err))
			}
			return files
		}
	}

	if filepath.Ext(event.Name) != w.ext {
		return nil
	}
	w.logger.Debug("Layout file changed", logfields.Path(event.Name), logfields.Event(event.Op.String()))
	return []string{event.Name}
}

func (w *Watcher) process(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	report := w.processor.ProcessFile(path)
	w.logger.Debug("Processed changed layout file",
		logfields.Path(path),
		logfields.Outcome(report.Outcome.String()))
}

// addTree watches dir and every non-hidden directory below it, returning the
// layout files already present.
func (w *Watcher) addTree(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if filepath.Ext(path) == w.ext {
				files = append(files, path)
			}
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}
		return w.fsw.Add(path)
	})
	if err != nil {
		return files, errors.WrapError(err, errors.CategoryWatch, "failed to watch directory").
			WithContext("path", dir).
			Build()
	}
	return files, nil
}
