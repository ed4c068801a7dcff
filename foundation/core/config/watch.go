// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Reloads the configuration file on change using fsnotify and
//              notifies registered change handlers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching
// - 2026-10-19 v0.2.0: Replaced polling with fsnotify, StopWatching from handlers

package config

import (
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
)

type watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}

	// dispatching is set while change handlers run on the watch loop.
	dispatching atomic.Bool
}

// Watch starts reloading the configuration whenever its file changes. The
// parent directory is watched so that editors replacing the file are seen.
// Calling Watch on a config that is already watching is a no-op.
func (c *Config) Watch() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.watcher != nil {
		return nil
	}
	if c.filePath == "" {
		return mdwerror.New("file path required for watching").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Watch")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeIOError).
			WithOperation("config.Watch")
	}

	target, _ := filepath.Abs(c.filePath)
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		_ = fsw.Close()
		return mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeIOError).
			WithOperation("config.Watch").
			WithDetail("filePath", c.filePath)
	}

	w := &watcher{fs: fsw, done: make(chan struct{})}
	c.watcher = w
	go c.watchLoop(w, target)

	return nil
}

func (c *Config) watchLoop(w *watcher, target string) {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			name, _ := filepath.Abs(event.Name)
			if name != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.dispatching.Store(true)
			err := c.reload()
			w.dispatching.Store(false)
			if err != nil {
				mdwlog.GetDefault().WarnWithErr("config reload failed", err,
					mdwlog.String("file", target))
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			mdwlog.GetDefault().WarnWithErr("config watcher error", err)
		}
	}
}

// reload re-reads the file and notifies handlers. A file that fails to
// parse leaves the current data untouched.
func (c *Config) reload() error {
	c.mu.RLock()
	filePath, format, defaults := c.filePath, c.format, c.defaults
	c.mu.RUnlock()

	data, err := readFile(filePath, format)
	if err != nil {
		return mdwerror.Wrap(err, "failed to reload config file").
			WithOperation("config.reload").
			WithDetail("filePath", filePath)
	}

	c.mu.Lock()
	oldConfig := &Config{data: c.data, format: c.format, filePath: c.filePath, envPrefix: c.envPrefix}
	c.data = mergeDefaults(data, defaults)
	newConfig := &Config{data: deepCopyMap(c.data), format: c.format, filePath: c.filePath, envPrefix: c.envPrefix}
	handlers := append([]ChangeHandler(nil), c.handlers...)
	c.mu.Unlock()

	for _, handler := range handlers {
		if handler != nil {
			handler(oldConfig, newConfig)
		}
	}

	return nil
}

// StopWatching stops file monitoring and waits for the watch loop to end.
// Called from a change handler it returns without waiting; the loop ends
// once the handlers have returned.
func (c *Config) StopWatching() {
	c.mu.Lock()
	w := c.watcher
	c.watcher = nil
	c.mu.Unlock()

	if w == nil {
		return
	}
	_ = w.fs.Close()
	if w.dispatching.Load() {
		return
	}
	<-w.done
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watcher != nil
}
