package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config contains watch-mode settings.
type Config struct {
	DebounceDelay      time.Duration // delay before a new file is processed
	StabilityThreshold time.Duration // how long the file size must hold still
	StabilityTimeout   time.Duration // maximum wait for a growing file
	IgnorePatterns     []string      // glob patterns never to classify
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DebounceDelay:      2 * time.Second,
		StabilityThreshold: time.Second,
		StabilityTimeout:   30 * time.Second,
		IgnorePatterns:     DefaultIgnorePatterns(),
	}
}

// Handler processes one settled file path.
type Handler func(path string)

// Watcher monitors the input directory and hands newly created, settled
// files to the handler. Events for temporary files are filtered out, rapid
// events are debounced, and each file must pass a size-stability check
// before the handler runs.
type Watcher struct {
	config    *Config
	handler   Handler
	filter    *FileFilter
	debouncer *Debouncer
	stability *StabilityChecker
	fsWatcher *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup

	mu      sync.Mutex
	skipped int
}

// New creates a Watcher with the given configuration and handler.
// A nil config uses DefaultConfig.
func New(config *Config, handler Handler) *Watcher {
	if config == nil {
		config = DefaultConfig()
	}
	w := &Watcher{
		config:    config,
		handler:   handler,
		filter:    NewFileFilter(config.IgnorePatterns),
		stability: NewStabilityChecker(config.StabilityThreshold, config.StabilityTimeout),
		done:      make(chan struct{}),
	}
	w.debouncer = NewDebouncer(config.DebounceDelay, w.processSettled)
	return w
}

// Start begins watching the given directory. The watcher runs until Stop
// is called.
func (w *Watcher) Start(dir string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		fsw.Close()
		return err
	}
	if err := fsw.Add(absDir); err != nil {
		fsw.Close()
		return err
	}

	w.fsWatcher = fsw
	w.done = make(chan struct{})

	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Stop shuts the watcher down and cancels any pending files. It returns
// the number of files skipped by the ignore filter.
func (w *Watcher) Stop() int {
	close(w.done)
	w.wg.Wait()

	w.debouncer.CancelAll()
	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.skipped
}

// processEvents drains fsnotify events until Stop.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				w.handleCreate(event.Name)
			}
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// handleCreate filters and debounces a single create event.
func (w *Watcher) handleCreate(path string) {
	if w.filter.ShouldIgnore(path) {
		w.mu.Lock()
		w.skipped++
		w.mu.Unlock()
		return
	}
	w.debouncer.Add(path)
}

// processSettled runs after the debounce delay: the file must additionally
// hold a stable size before the handler sees it.
func (w *Watcher) processSettled(path string) {
	if err := w.stability.WaitForStable(context.Background(), path); err != nil {
		w.mu.Lock()
		w.skipped++
		w.mu.Unlock()
		return
	}
	if w.handler != nil {
		w.handler(path)
	}
}
