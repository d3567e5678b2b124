package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/franciscovln/note-storage-app/pkg/core"
)

// watchWorker observes the store directory and delivers collections written
// by other contexts. It watches the directory rather than the file itself
// because atomic writes land as a rename, which replaces the watched inode.
type watchWorker struct {
	*worker.BaseWorker
	repo      *Repository
	events    chan<- []core.Note
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newWatchWorker(repo *Repository, events chan<- []core.Note) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("store-watcher"),
		repo:       repo,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(w.repo.config.Dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch store directory: %w", err)
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(w.repo.config.Debounce)
	w.repo.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// shouldIgnore filters directory events down to settled writes of the store
// file: temp files from atomic writes, configured ignore globs, and
// metadata-only events are all discarded.
func (w *watchWorker) shouldIgnore(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return true
	}

	base := filepath.Base(event.Name)
	for _, pattern := range append([]string{TempFilePrefix + "*"}, w.repo.config.IgnoreGlobs...) {
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}

	ok, err := doublestar.Match(w.repo.config.File, base)
	return err != nil || !ok
}

// reload reads the settled store file and delivers the parsed collection,
// unless the content matches this context's own last write. A missing file
// reads as an empty collection.
func (w *watchWorker) reload(ctx context.Context) {
	data, err := os.ReadFile(w.repo.path())
	if err != nil && !os.IsNotExist(err) {
		w.repo.reportError(fmt.Errorf("failed to re-read store file: %w", err))
		return
	}

	if err == nil && w.repo.isSelfWrite(data) {
		if w.repo.config.Logger != nil {
			w.repo.config.Logger.Debug("ignoring own write", "path", w.repo.path())
		}
		return
	}

	var notes []core.Note
	if err == nil {
		notes = w.repo.decode(data)
	}

	w.repo.recordReconcile()
	select {
	case w.events <- notes:
	case <-ctx.Done():
	}
}

// handleWatcherError processes errors from the fsnotify watcher.
func (w *watchWorker) handleWatcherError(err error) (shouldContinue bool) {
	w.repo.reportError(err)
	return true
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)

			// Stack traces are captured only at debug level to keep
			// production logs lean.
			var stack string
			if w.repo.config.Logger.Enabled(ctx, slog.LevelDebug) {
				stack = string(debug.Stack())
			}

			if stack != "" {
				w.repo.config.Logger.Error("watcher panic", "error", panicErr, "stack", stack)
			} else {
				w.repo.config.Logger.Error("watcher panic", "error", panicErr)
			}
		}
	}()
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.mainEventLoop(ctx)

	// Stop accepting new events and wait for in-flight debounce timers so
	// nothing fires after the channel's consumers have gone away.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

func (w *watchWorker) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}

			if w.shouldIgnore(event) {
				continue
			}
			if w.repo.config.Logger != nil {
				w.repo.config.Logger.Debug("store file changed externally", "op", event.Op.String())
			}
			w.debouncer.trigger(func() { w.reload(ctx) })

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleWatcherError(wErr)
		}
	}
}
