package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// KeysWatcher monitors the configured API-key file and invokes the supplied
// callback whenever the merged allow-set changes. Stop must be called to
// release filesystem resources.
type KeysWatcher struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop halts the watcher and waits for the underlying goroutine to exit.
func (w *KeysWatcher) Stop() {
	if w == nil {
		return
	}
	w.once.Do(func() {
		w.cancel()
		<-w.done
	})
}

// WatchKeys wires fsnotify around the keys file and reloads the allow-set on
// any relevant change. The callback receives the merged inline + file keys.
func WatchKeys(ctx context.Context, auth AuthConfig, onChange func([]string), onError func(error)) (*KeysWatcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("config: watch keys requires a change callback")
	}
	if auth.KeysFile == "" {
		return nil, fmt.Errorf("config: no keys file configured for watching")
	}

	target := auth.KeysFile
	if abs, err := filepath.Abs(target); err == nil {
		target = abs
	}
	target = filepath.Clean(target)

	watchCtx, cancel := context.WithCancel(ctx)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("config: watch keys: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		cancel()
		if closeErr := watcher.Close(); closeErr != nil && onError != nil {
			onError(fmt.Errorf("config: watch keys close: %w", closeErr))
		}
		return nil, fmt.Errorf("config: watch keys add: %w", err)
	}

	done := make(chan struct{})
	watch := &KeysWatcher{cancel: cancel, done: done}

	go func() {
		defer close(done)
		defer func() {
			if err := watcher.Close(); err != nil && onError != nil {
				onError(fmt.Errorf("config: watch keys close: %w", err))
			}
		}()

		reload := func() {
			keys, err := LoadKeys(auth)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				return
			}
			onChange(keys)
		}

		const debounce = 25 * time.Millisecond
		var reloadTimer *time.Timer
		var reloadSignal <-chan time.Time
		scheduleReload := func() {
			if reloadTimer == nil {
				reloadTimer = time.NewTimer(debounce)
			} else {
				if !reloadTimer.Stop() {
					select {
					case <-reloadTimer.C:
					default:
					}
				}
				reloadTimer.Reset(debounce)
			}
			reloadSignal = reloadTimer.C
		}

		for {
			select {
			case <-watchCtx.Done():
				return
			case <-reloadSignal:
				reloadSignal = nil
				reload()
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 && onError != nil {
					onError(fmt.Errorf("config: keys file %s removed", target))
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove|fsnotify.Chmod) != 0 {
					scheduleReload()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(fmt.Errorf("config: watch error: %w", err))
				}
			}
		}
	}()

	return watch, nil
}
