package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/toyz/scaffold/internal/logger"
)

// ChangeFunc receives the source files changed since the last call, sorted
type ChangeFunc func(ctx context.Context, paths []string)

// Watcher collects source file changes and hands them to a ChangeFunc once
// the directory has been quiet for the debounce period. Calls to the
// ChangeFunc never overlap.
type Watcher struct {
	watcher  *fsnotify.Watcher
	matches  func(path string) bool
	ignored  []string
	onChange ChangeFunc
	log      *zap.SugaredLogger

	mu       sync.Mutex
	pending  map[string]struct{}
	timer    *time.Timer
	debounce time.Duration

	runMu sync.Mutex
}

// NewWatcher creates a watcher. matches selects the files of interest and
// events below any ignored directory are dropped.
func NewWatcher(debounce time.Duration, matches func(string) bool, ignored []string, onChange ChangeFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	abs := make([]string, 0, len(ignored))
	for _, dir := range ignored {
		if a, err := filepath.Abs(dir); err == nil {
			abs = append(abs, a)
		}
	}

	return &Watcher{
		watcher:  fw,
		matches:  matches,
		ignored:  abs,
		onChange: onChange,
		log:      logger.ComponentLogger(logger.ComponentWatch),
		pending:  make(map[string]struct{}),
		debounce: debounce,
	}, nil
}

// Add starts watching dirs
func (w *Watcher) Add(dirs ...string) error {
	for _, dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.log.Debugw("watching directory", logger.FieldPath, dir)
	}
	return nil
}

// Run processes events until ctx is done, then releases the watcher
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("watcher error", logger.FieldError, err)
		}
	}
}

// handle records write and create events on matching files
func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if !w.matches(event.Name) || w.isIgnored(event.Name) {
		return
	}

	w.log.Debugw("source changed", logger.FieldPath, event.Name, "op", event.Op.String())
	w.schedule(ctx, event.Name)
}

func (w *Watcher) isIgnored(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, dir := range w.ignored {
		rel, err := filepath.Rel(dir, abs)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// schedule adds path to the pending set and restarts the debounce timer
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[path] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.flush(ctx)
	})
}

// flush hands the pending paths to the ChangeFunc
func (w *Watcher) flush(ctx context.Context) {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	if len(paths) == 0 || ctx.Err() != nil {
		return
	}
	sort.Strings(paths)

	w.runMu.Lock()
	defer w.runMu.Unlock()
	w.log.Infow("regenerating", logger.FieldCount, len(paths))
	w.onChange(ctx, paths)
}

func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	if err := w.watcher.Close(); err != nil {
		w.log.Warnw("failed to close watcher", logger.FieldError, err)
	}
}
