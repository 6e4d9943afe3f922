package config

import (
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// ReloadDebounce is how long the watcher waits after the last file event
// before reloading, so an editor's save burst becomes one reload.
const ReloadDebounce = 250 * time.Millisecond

// Watcher reloads the config when its file changes on disk.
type Watcher struct {
	cfg      *Config
	fsw      *fsnotify.Watcher
	log      zerolog.Logger
	debounce time.Duration
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithReloadDebounce overrides the reload debounce.
func WithReloadDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher starts watching the config file. It watches the file's
// directory rather than the file itself, so rename-replace saves and
// recreation after deletion stay visible.
func NewWatcher(cfg *Config, log zerolog.Logger, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(cfg.Path())); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		log:      log.With().Str("component", "configwatch").Logger(),
		debounce: ReloadDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.loop()
	return w, nil
}

// Stop stops watching. A reload already scheduled may still run.
func (w *Watcher) Stop() error {
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	reload := debounce.New(w.debounce)
	target := filepath.Clean(w.cfg.Path())

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug().Str("op", ev.Op.String()).Msg("config file changed")
			reload(w.reload)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("config watch error")
		}
	}
}

func (w *Watcher) reload() {
	if err := w.cfg.Reload(); err != nil {
		w.log.Warn().Err(err).Msg("config reload failed")
		return
	}
	w.log.Debug().Str("path", w.cfg.Path()).Msg("config reloaded")
}
