package config

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watcher keeps a Config loaded from a file and reloads it when the file
// changes, notifying registered handlers. A config that fails to parse is
// logged and dropped, keeping the previous one active.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}

	mu       sync.RWMutex
	config   *Config
	handlers []func(*Config)
}

// NewWatcher loads the config and starts watching the file for changes.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	conf, err := Load(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    path,
		watcher: fsw,
		config:  conf,
		done:    make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

// Get returns the currently active config.
func (w *Watcher) Get() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.config
}

// OnReload registers a handler that runs after every successful reload.
func (w *Watcher) OnReload(f func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, f)
}

// Stop ends the watch.
func (w *Watcher) Stop() {
	close(w.done)
	w.watcher.Close()
}

func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return
		case event, open := <-w.watcher.Events:
			if !open {
				return
			}
			// Editors doing atomic saves replace the file, so creates
			// count as changes too.
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.reload()
			}
		case err, open := <-w.watcher.Errors:
			if !open {
				return
			}
			log.Warn("Config watcher error: ", err)
		}
	}
}

func (w *Watcher) reload() {
	conf, err := Load(w.path)
	if err != nil {
		log.Warnf("Ignoring config reload: %v", err)
		return
	}

	w.mu.Lock()
	w.config = conf
	handlers := make([]func(*Config), len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	log.Infof("Reloaded config from %v", w.path)
	for _, f := range handlers {
		f(conf)
	}
}
