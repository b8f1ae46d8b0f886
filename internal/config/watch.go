package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bethropolis/tidehx/internal/logger"
	"github.com/bethropolis/tidehx/internal/utils"
)

// Watcher re-reads a config file whenever it changes on disk.
type Watcher struct {
	path     string
	base     Config
	watcher  *fsnotify.Watcher
	debounce utils.Debouncer
	onChange func(*Config)
	done     chan struct{}
}

// Watch observes path and calls onChange with a freshly merged configuration
// after each burst of writes. base supplies the values the file is merged over.
// The directory is watched so that editors replacing the file are noticed.
func Watch(path string, base Config, onChange func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch config dir for '%s': %w", path, err)
	}
	w := &Watcher{
		path:     filepath.Clean(path),
		base:     base,
		watcher:  fw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounce.Debounce(ReloadDebounce, w.reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnf("Config: watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg := w.base
	if err := mergeFile(&cfg, w.path); err != nil {
		logger.Warnf("Config: reload of '%s' failed: %v", w.path, err)
		return
	}
	cfg.validate()
	logger.Infof("Config: reloaded '%s' (tab_width=%d)", w.path, cfg.Editor.TabWidth)
	w.onChange(&cfg)
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.debounce.Stop()
	err := w.watcher.Close()
	<-w.done
	return err
}
