package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reports spec and script files that changed under a prefabs
// directory. Names are relative to that directory, e.g. "game.yaml" or
// "scripts/robot.tengo".
type Watcher struct {
	fs      *fsnotify.Watcher
	root    string
	changed chan string
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches root and root/scripts.
func NewWatcher(root string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range []string{root, filepath.Join(root, "scripts")} {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		root:    root,
		changed: make(chan string, 16),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

// Drain returns every change queued since the last call without blocking.
// Repeated changes to one file are reported once.
func (w *Watcher) Drain() ([]string, error) {
	var (
		names []string
		seen  = map[string]bool{}
	)
	for {
		select {
		case name := <-w.changed:
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		case err := <-w.errs:
			return names, err
		default:
			return names, nil
		}
	}
}

// run reports a file once its events have gone quiet for watchDebounce, so a
// save that truncates and then writes is seen as one change.
func (w *Watcher) run() {
	pending := make(map[string]bool)
	quiet := time.NewTimer(watchDebounce)
	quiet.Stop()
	defer quiet.Stop()
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || !watched(event.Name) {
				continue
			}
			pending[w.relative(event.Name)] = true
			quiet.Reset(watchDebounce)
		case <-quiet.C:
			for name := range pending {
				select {
				case w.changed <- name:
				case <-w.done:
					return
				}
			}
			clear(pending)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) relative(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}

// watched reports whether path is a yaml spec or a tengo script.
func watched(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
