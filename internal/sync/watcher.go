package sync

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/MikeBiancalana/dtpick/internal/config"
	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// ConfigChangeEvent carries a freshly loaded picker config. Err is set when
// the file changed but could not be loaded; Config then holds the defaults.
type ConfigChangeEvent struct {
	Path   string
	Config config.PickerConfig
	Err    error
}

// Watcher reloads the picker config file whenever it changes on disk
type Watcher struct {
	watcher       *fsnotify.Watcher
	path          string
	logger        *slog.Logger
	changes       chan ConfigChangeEvent
	done          chan struct{}
	debounceTimer *time.Timer
}

// NewWatcher creates a watcher for the config file at path
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		watcher: fsWatcher,
		path:    filepath.Clean(path),
		logger:  logger,
		changes: make(chan ConfigChangeEvent, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching. The parent directory is watched rather than the file
// so that editors which save by rename are still seen.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	go w.watch()
	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() {
	close(w.done)
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.watcher.Close()
}

// Changes returns the channel for config reload notifications
func (w *Watcher) Changes() <-chan ConfigChangeEvent {
	return w.changes
}

// watch is the main event loop
func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if w.debounceTimer != nil {
				w.debounceTimer.Stop()
			}
			w.debounceTimer = time.AfterFunc(debounceDelay, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue watching
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}

// reload loads the file after the debounce window and publishes the result
func (w *Watcher) reload() {
	cfg, err := config.LoadPickerConfig(w.path)
	if err != nil {
		w.logger.Warn("failed to reload config", "path", w.path, "error", err)
	} else {
		w.logger.Info("config reloaded", "path", w.path)
	}

	select {
	case w.changes <- ConfigChangeEvent{Path: w.path, Config: cfg, Err: err}:
	case <-w.done:
	}
}
