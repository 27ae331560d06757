// Package watch re-runs a callback whenever a single file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/faizmokh/questlog/internal/logging"
)

// Watcher observes the directory holding the file, so editors that save by
// renaming a temp file over the original are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *log.Logger
	onChange func(ctx context.Context) error
}

// Config holds the parameters of New.
type Config struct {
	Path     string
	Debounce time.Duration
	Logger   *log.Logger
	// OnChange runs once at start and after every settled change. Its errors
	// are logged; they never stop the watcher.
	OnChange func(ctx context.Context) error
}

// New validates cfg and returns a watcher. Nothing is observed until Run.
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("watch path is required")
	}
	if cfg.OnChange == nil {
		return nil, fmt.Errorf("watch callback is required")
	}
	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, err
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 300 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	return &Watcher{
		path:     abs,
		debounce: cfg.Debounce,
		logger:   cfg.Logger,
		onChange: cfg.OnChange,
	}, nil
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching", "path", w.path)

	w.fire(ctx)

	// settle is nil while nothing is pending; each relevant event restarts it.
	var settle <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("file changed", "op", event.Op.String())
			settle = time.After(w.debounce)

		case <-settle:
			settle = nil
			w.fire(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "err", err)
		}
	}
}

func (w *Watcher) fire(ctx context.Context) {
	if err := w.onChange(ctx); err != nil {
		w.logger.Error("regenerate failed", "err", err)
	}
}
