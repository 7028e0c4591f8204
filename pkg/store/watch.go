package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals that the persisted state changed on disk, typically because
// another process wrote it. Consumers should reload and rebuild their view.
type Event struct {
	Key string
}

// Watch streams change events until ctx is cancelled. Events are coalesced so
// filesystem storms do not flood the consumer; the channel is closed once ctx
// is done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 8)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		// Single coalescing timer keeps this loop the only sender, so the
		// deferred close cannot race a late send.
		timer := time.NewTimer(time.Hour)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()
		pending := false

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Treat watcher errors as a change so clients resync.
				if !pending {
					pending = true
					timer.Reset(100 * time.Millisecond)
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&fsnotify.Chmod == fsnotify.Chmod {
					continue
				}
				if filepath.Base(evt.Name) != stateKey {
					continue
				}
				if !pending {
					pending = true
					timer.Reset(100 * time.Millisecond)
				}
			case <-timer.C:
				pending = false
				select {
				case events <- Event{Key: stateKey}:
				default:
					// Drop if the consumer is not draining; the next change
					// re-arms the timer.
				}
			}
		}
	}()

	return events, nil
}
