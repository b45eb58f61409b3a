// Package reload watches a dictionary file and reloads it when it changes.
// The parent directory is watched rather than the file, since editors and deploy
// tools often replace files by rename. Bursts of events are debounced into one load.
package reload

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordhunt/internal/words"
)

// DefaultDebounce is the quiet period used when Watch is given zero.
const DefaultDebounce = 250 * time.Millisecond

// Watch blocks until ctx is done, calling apply with every successfully reloaded dictionary.
// A file that fails to load is logged and skipped; the previous dictionary stays active.
func Watch(ctx context.Context, path string, debounce time.Duration, apply func(*words.Dictionary)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	log.Info().Str("path", abs).Msg("watching dictionary")

	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				restart(timer, debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")

		case <-timer.C:
			d, err := words.Load(abs)
			if err != nil {
				log.Warn().Err(err).Str("path", abs).Msg("reload failed; keeping current dictionary")
				continue
			}
			log.Info().Int("words", d.Len()).Msg("dictionary reloaded")
			apply(d)
		}
	}
}

// restart stops t, drops a tick that already fired, and arms it again, so a burst of
// events ends in exactly one load.
func restart(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
