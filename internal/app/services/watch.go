package services

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatchDebounce is the debounce window for watcher events.
const ConfigWatchDebounce = 300 * time.Millisecond

// ConfigWatchService watches the YAML config file and signals when it
// changes on disk.
type ConfigWatchService struct {
	Started    bool
	Waiting    bool
	Path       string
	Events     chan struct{}
	Done       chan struct{}
	Mu         sync.Mutex
	Watcher    *fsnotify.Watcher
	LastReload time.Time
	logf       func(string, ...any)
}

// NewConfigWatchService creates a new ConfigWatchService.
func NewConfigWatchService(logf func(string, ...any)) *ConfigWatchService {
	return &ConfigWatchService{logf: logf}
}

// Start watches path and starts the background goroutine. The parent
// directory is watched rather than the file itself, since editors usually
// save by writing a new file and renaming it over the old one.
func (w *ConfigWatchService) Start(path string) (bool, error) {
	if w.Started || path == "" {
		return false, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return false, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return false, err
	}

	w.Started = true
	w.Watcher = watcher
	w.Path = filepath.Clean(abs)
	w.Events = make(chan struct{}, 1)
	w.Done = make(chan struct{})

	go w.run()
	return true, nil
}

// Stop stops the watcher and closes channels.
func (w *ConfigWatchService) Stop() {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	if !w.Started {
		return
	}
	close(w.Done)
	w.Started = false
	if w.Watcher != nil {
		_ = w.Watcher.Close()
	}
}

// NextEvent returns the event channel if waiting is not already active.
func (w *ConfigWatchService) NextEvent() <-chan struct{} {
	if w.Events == nil || w.Waiting {
		return nil
	}
	w.Waiting = true
	return w.Events
}

// ResetWaiting clears the waiting flag after an event is processed.
func (w *ConfigWatchService) ResetWaiting() {
	w.Waiting = false
}

// ShouldReload checks debounce timing for watcher events.
func (w *ConfigWatchService) ShouldReload(now time.Time) bool {
	if !w.LastReload.IsZero() && now.Sub(w.LastReload) < ConfigWatchDebounce {
		return false
	}
	w.LastReload = now
	return true
}

// Signal notifies listeners of watcher activity.
func (w *ConfigWatchService) Signal() {
	select {
	case <-w.Done:
		return
	default:
	}
	select {
	case w.Events <- struct{}{}:
	default:
	}
}

// IsConfigEvent reports whether an event concerns the watched file.
func (w *ConfigWatchService) IsConfigEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == w.Path
}

func (w *ConfigWatchService) run() {
	for {
		select {
		case <-w.Done:
			return
		case event, ok := <-w.Watcher.Events:
			if !ok {
				return
			}
			if !w.IsConfigEvent(event) {
				continue
			}
			w.Signal()
		case err, ok := <-w.Watcher.Errors:
			if !ok {
				return
			}
			w.debugf("config watcher error: %v", err)
		}
	}
}

func (w *ConfigWatchService) debugf(format string, args ...any) {
	if w.logf == nil {
		return
	}
	w.logf(format, args...)
}
