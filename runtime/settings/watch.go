package settings

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher reloads a settings file into a store when the file changes and
// publishes the reloaded snapshot to subscribers.
//
// Reloads write base values only; an overlay taken before a reload still
// restores the snapshot it captured, so a reload landing mid-overlay is
// overwritten for the overlaid keys when the overlay ends.
type Watcher struct {
	store *Store
	path  string
	log   zerolog.Logger

	subsMu sync.Mutex
	subs   []chan map[string]any
}

// NewWatcher builds a watcher for path feeding store.
func NewWatcher(store *Store, path string, log zerolog.Logger) *Watcher {
	return &Watcher{store: store, path: path, log: log}
}

// Subscribe returns a channel receiving each successfully reloaded snapshot.
// Slow subscribers have the oldest pending snapshot dropped in favor of the
// newest.
func (w *Watcher) Subscribe(buffer int) chan map[string]any {
	ch := make(chan map[string]any, buffer)
	w.subsMu.Lock()
	w.subs = append(w.subs, ch)
	w.subsMu.Unlock()
	return ch
}

// Unsubscribe removes and closes a channel returned by Subscribe.
func (w *Watcher) Unsubscribe(ch chan map[string]any) {
	if ch == nil {
		return
	}
	w.subsMu.Lock()
	defer w.subsMu.Unlock()
	for i, s := range w.subs {
		if s == ch {
			last := len(w.subs) - 1
			w.subs[i] = w.subs[last]
			w.subs[last] = nil
			w.subs = w.subs[:last]
			close(ch)
			return
		}
	}
}

// Reload parses the file and commits it to the store, publishing the new
// snapshot on success.
func (w *Watcher) Reload() error {
	if err := w.store.LoadFile(w.path); err != nil {
		w.log.Warn().Str("path", w.path).Err(err).Msg("settings reload failed")
		return err
	}
	snap := w.store.Snapshot()
	w.log.Debug().Str("path", w.path).Int("keys", len(snap)).Msg("settings reloaded")
	w.publish(snap)
	return nil
}

func (w *Watcher) publish(snap map[string]any) {
	// Hold subsMu while sending to avoid send-on-closed panics.
	w.subsMu.Lock()
	defer w.subsMu.Unlock()
	for _, ch := range w.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

// Run watches the file until ctx is done. Events are debounced so editors
// that write in several steps trigger a single reload of the settled file.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = fw.Close() }()

	// Watch the directory, not the file: editors that replace-on-save break
	// a direct file watch.
	dir := filepath.Dir(w.path)
	file := filepath.Base(w.path)
	if err := fw.Add(dir); err != nil {
		return err
	}

	var (
		timerMu sync.Mutex
		timer   *time.Timer
	)
	debounce := func() {
		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(250*time.Millisecond, func() {
			_ = w.Reload()
		})
	}
	defer func() {
		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != file {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				debounce()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("settings watch error")
		}
	}
}
