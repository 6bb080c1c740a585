package style

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"github.com/germtb/gox-wrapper/internal/logging"
)

// DefaultDebounce groups the burst of events editors emit for one save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a sheet file into a Live whenever the file changes.
// A file that fails to load is logged and the previous sheet stays active.
type Watcher struct {
	path     string
	live     *Live
	logger   logging.Logger
	debounce time.Duration
	watcher  *fsnotify.Watcher

	mu       sync.Mutex
	handlers []func(Sheet)
}

// NewWatcher loads path into live and starts watching its directory.
// The directory is watched rather than the file so that atomic saves
// (write to temp, rename over) are seen.
func NewWatcher(path string, live *Live, logger logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", path)
	}

	w := &Watcher{
		path:     abs,
		live:     live,
		logger:   logger.WithComponent("style-watcher").With("file", abs),
		debounce: DefaultDebounce,
	}
	if err := w.Reload(); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}
	w.watcher = fw
	return w, nil
}

// SetDebounce changes the quiet period before a reload. Call before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// OnReload registers fn to be called with every successfully loaded sheet.
func (w *Watcher) OnReload(fn func(Sheet)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, fn)
}

// Reload reads the file now and swaps it into the Live on success.
func (w *Watcher) Reload() error {
	sheet, err := Load(w.path)
	if err != nil {
		return err
	}
	w.live.Store(sheet)

	w.mu.Lock()
	handlers := append([]func(Sheet){}, w.handlers...)
	w.mu.Unlock()
	for _, fn := range handlers {
		fn(sheet)
	}
	return nil
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug(ctx, "sheet changed", "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			if err := w.Reload(); err != nil {
				w.logger.Warn(ctx, err, "keeping previous sheet")
				continue
			}
			w.logger.Info(ctx, "sheet reloaded", "classes", len(w.live.Sheet()))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(ctx, err, "watch error")
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
