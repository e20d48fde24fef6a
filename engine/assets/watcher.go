package assets

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
)

// ShaderWatcher reports edits to a set of shader files.
//
// Directories are watched rather than files so that editors which replace a
// file on save keep being tracked. Changed paths arrive on Changes from a
// background goroutine; consumers drain it on the thread that owns the GL
// context.
type ShaderWatcher struct {
	w       *fsnotify.Watcher
	log     *slog.Logger
	files   map[string]struct{}
	changes chan string
	done    sync.WaitGroup
}

// WatchShaders starts watching the given shader names or paths.
func WatchShaders(log *slog.Logger, names ...string) (*ShaderWatcher, error) {
	if log == nil {
		log = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "create shader watcher")
	}
	sw := &ShaderWatcher{
		w:       fw,
		log:     log,
		files:   make(map[string]struct{}, len(names)),
		changes: make(chan string, 16),
	}
	dirs := make(map[string]struct{})
	for _, name := range names {
		path, err := filepath.Abs(ShaderPath(name))
		if err != nil {
			_ = fw.Close()
			return nil, zerr.With(zerr.Wrap(err, "resolve shader path"), "name", name)
		}
		sw.files[path] = struct{}{}
		dirs[filepath.Dir(path)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, zerr.With(zerr.Wrap(err, "watch shader directory"), "dir", dir)
		}
	}

	sw.done.Add(1)
	go sw.loop()
	return sw, nil
}

// Changes delivers the absolute path of each modified shader file.
// It is closed by Close.
func (sw *ShaderWatcher) Changes() <-chan string { return sw.changes }

// Close stops watching and waits for the event loop to exit.
func (sw *ShaderWatcher) Close() error {
	err := sw.w.Close()
	sw.done.Wait()
	return err
}

func (sw *ShaderWatcher) loop() {
	defer sw.done.Done()
	defer close(sw.changes)
	for {
		select {
		case ev, ok := <-sw.w.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			path, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if _, tracked := sw.files[path]; !tracked {
				continue
			}
			select {
			case sw.changes <- path:
			default:
				// A reload is already pending; the consumer rereads the file anyway.
				sw.log.Debug("shader change dropped", "path", path)
			}
		case err, ok := <-sw.w.Errors:
			if !ok {
				return
			}
			sw.log.Warn("shader watcher error", "error", err)
		}
	}
}
