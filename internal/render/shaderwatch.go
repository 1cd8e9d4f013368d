package render

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// ShaderWatcher signals when a watched shader file changes on disk. The
// fsnotify goroutine only flags the change; the actual recompile happens
// on the frame-loop thread via Changed, keeping all render state
// single-threaded.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	changed chan struct{}
}

// WatchShader watches the file at path for writes.
func WatchShader(path string) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors often replace files instead of
	// writing in place, which drops a direct file watch.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	sw := &ShaderWatcher{
		watcher: w,
		changed: make(chan struct{}, 1),
	}

	abs, _ := filepath.Abs(path)
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				evAbs, _ := filepath.Abs(ev.Name)
				if evAbs != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case sw.changed <- struct{}{}:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("Shader watcher error")
			}
		}
	}()

	return sw, nil
}

// Changed drains and reports a pending change without blocking.
func (sw *ShaderWatcher) Changed() bool {
	select {
	case <-sw.changed:
		return true
	default:
		return false
	}
}

func (sw *ShaderWatcher) Close() error {
	return sw.watcher.Close()
}
