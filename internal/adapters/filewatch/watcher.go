// Package filewatch calls back when a single file changes on disk.
package filewatch

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Watch calls onChange once per burst of changes to path, after debounce has
// passed without further events. The parent directory is watched so that
// editors replacing the file by rename are still noticed. Close stops the
// watcher and waits for a running callback to return.
func Watch(path string, debounce time.Duration, onChange func()) (io.Closer, error) {
	if onChange == nil {
		return nil, fmt.Errorf("onChange cannot be nil")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	stopCh := make(chan struct{})
	doneCh := make(chan struct{})

	go func() {
		defer close(doneCh)
		var (
			timer  *time.Timer
			timerC <-chan time.Time
		)
		resetTimer := func() {
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
				return
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
			timerC = timer.C
		}

		for {
			select {
			case <-stopCh:
				if timer != nil {
					timer.Stop()
				}
				return
			case <-timerC:
				timerC = nil
				onChange()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("Definition file watcher error", "path", abs, "error", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if shouldTrigger(evt, abs) {
					slog.Debug("Definition file changed", "path", abs, "op", evt.Op.String())
					resetTimer()
				}
			}
		}
	}()

	slog.Info("Watching definition file", "path", abs, "debounce", debounce)
	return closerFunc(func() error {
		close(stopCh)
		err := watcher.Close()
		<-doneCh
		return err
	}), nil
}

func shouldTrigger(evt fsnotify.Event, target string) bool {
	if evt.Name == "" {
		return false
	}
	if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(evt.Name) == target
}
