package assets

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Event reports that an image file appeared, changed or went away.
type Event struct {
	Path    string
	Removed bool
}

// Watcher reports image file changes under a set of directories.
type Watcher struct {
	watcher *fsnotify.Watcher
	log     *slog.Logger
	Events  chan Event
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(log *slog.Logger, dirs ...string) (*Watcher, error) {
	if log == nil {
		log = slog.Default()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("assets: watch: %w", err)
	}

	for _, dir := range dirs {
		if err := addTree(w, dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("assets: watch %s: %w", dir, err)
		}
	}

	watcher := &Watcher{
		watcher: w,
		log:     log,
		Events:  make(chan Event, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 && isDir(event.Name) {
				// List walks subdirectories, so they are watched too. Images
				// copied in with the directory are reported through it.
				if err := addTree(w.watcher, event.Name); err != nil {
					w.log.Warn("watch new directory", "path", event.Name, "err", err)
				}
			} else if !IsImage(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			ev := Event{Path: event.Name, Removed: event.Op&(fsnotify.Remove|fsnotify.Rename) != 0}
			w.log.Debug("asset changed", "path", ev.Path, "removed", ev.Removed)
			select {
			case w.Events <- ev:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				w.log.Warn("asset watcher error dropped", "err", err)
			}
		case <-w.closeCh:
			return
		}
	}
}

// addTree watches dir and every directory below it.
func addTree(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.Add(path)
	})
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
