package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a burst of file events is collected before
// regenerating; editors often write a file in several steps.
const settle = 100 * time.Millisecond

type watcher struct {
	fsw   *fsnotify.Watcher
	files map[string]bool
}

// newWatcher watches the directories of files, which is more reliable
// than watching the files for editors that save by renaming.
func newWatcher(files []string) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &watcher{fsw: fsw, files: map[string]bool{}}
	dirs := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch directory: %w", err)
		}
	}
	return w, nil
}

func (w *watcher) Close() error {
	return w.fsw.Close()
}

// run calls regen after each burst of changes to the watched files until
// ctx is done.
func (w *watcher) run(ctx context.Context, regen func()) error {
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			theLog.Debug("model changed", "event", event.Op.String(), "file", event.Name)
			fire = time.After(settle)
		case <-fire:
			fire = nil
			regen()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			theLog.Error("file watcher error", "error", err)
		}
	}
}
