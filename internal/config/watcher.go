// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultReloadDebounce coalesces the burst of events editors emit on save.
const DefaultReloadDebounce = 200 * time.Millisecond

// Reload is delivered after the watched file changed and was re-read.
// Config is nil when Err is set; the previous config stays in effect.
type Reload struct {
	Config *Config
	Err    error
}

// =============================================================================
// FSNOTIFY WATCHER
// =============================================================================

// Watcher re-reads a config file whenever it changes on disk.
// The parent directory is watched so atomic renames are seen.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      *zap.Logger

	reloads chan Reload
	ctx     context.Context
	cancel  context.CancelFunc
	once    sync.Once
}

// NewWatcher creates a watcher for path. A nil logger disables logging.
func NewWatcher(path string, debounce time.Duration, log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultReloadDebounce
	}
	if log == nil {
		log = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		path:     filepath.Clean(path),
		watcher:  fw,
		debounce: debounce,
		log:      log,
		reloads:  make(chan Reload, 1),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching. The config directory must exist.
func (w *Watcher) Watch() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.processEvents()
	return nil
}

// Reloads returns the channel of reload results. It is closed by Close.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// processEvents filters events for the watched file and debounces them.
func (w *Watcher) processEvents() {
	defer close(w.reloads)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("CONFIG_WATCH_ERROR", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFromPath(w.path)
	if err != nil {
		w.log.Warn("CONFIG_RELOAD", zap.String("path", w.path), zap.Error(err))
	} else {
		SetGlobal(cfg)
		w.log.Info("CONFIG_RELOAD", zap.String("path", w.path), zap.String("api_url", cfg.API.URL))
	}

	select {
	case w.reloads <- Reload{Config: cfg, Err: err}:
	case <-w.ctx.Done():
	}
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		w.cancel()
		err = w.watcher.Close()
	})
	return err
}
