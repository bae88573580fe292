package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/selsearch/internal/logging"
)

// reloadDelay coalesces the burst of events an editor save produces.
const reloadDelay = 150 * time.Millisecond

// ErrWatching is returned when Watch is already running.
var ErrWatching = errors.New("config watch already running")

// Watch reloads the config file whenever it changes and calls the
// OnConfigChange callbacks, until ctx is done. The directory is watched, not
// the file, so replace-on-save editors keep working. A file that fails to
// load is logged and the previous configuration stays active.
func (m *Manager) Watch(ctx context.Context) error {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	if m.watching {
		m.mu.Unlock()
		return ErrWatching
	}
	m.watching = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.watching = false
		m.mu.Unlock()
	}()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(m.configDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", m.configDir, err)
	}

	target := filepath.Clean(m.configFilePath())
	reload := make(chan struct{}, 1)
	timer := time.AfterFunc(time.Hour, func() {
		select {
		case reload <- struct{}{}:
		default:
		}
	})
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			log.Debug().Str("op", ev.Op.String()).Str("file", ev.Name).Msg("config change detected")
			timer.Reset(reloadDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("config watcher error")
		case <-reload:
			if err := m.Reload(); err != nil {
				log.Warn().Err(err).Msg("failed to reload config, keeping the previous one")
				continue
			}
			log.Info().Str("file", target).Msg("config reloaded")
		}
	}
}

// Reload re-reads the config file and notifies the OnConfigChange callbacks.
func (m *Manager) Reload() error {
	m.mu.Lock()
	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		return err
	}
	config, err := m.decode()
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.config = config
	snapshot := *config
	callbacks := append([]func(*Config)(nil), m.callbacks...)
	m.mu.Unlock()

	for _, callback := range callbacks {
		c := snapshot
		callback(&c)
	}
	return nil
}

// OnConfigChange registers a callback run after every successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}
