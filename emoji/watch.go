package emoji

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/richtext/internal/logx"
)

// watchDebounce coalesces the burst of events editors emit for one save.
const watchDebounce = 100 * time.Millisecond

// Watch reloads the manifest at path whenever the manifest or one of the
// frame files it references is written, created, renamed or removed, and
// passes the result to onChange. Other files next to them are ignored.
// A failed reload is reported as (nil, err); the caller decides whether to
// keep its previous DB.
//
// Watch blocks until ctx is done and then returns nil. It returns an error
// only when the watcher cannot be set up.
func Watch(ctx context.Context, path string, onChange func(*DB, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("emoji: resolve manifest path: %w", err)
	}
	path = abs

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("emoji: create watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("emoji: watch %q: %w", dir, err)
	}
	files := watchFiles(path)
	addFrameDirs(w, dir, files)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove) {
				continue
			}
			if !files[filepath.Clean(ev.Name)] {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logx.L().Warn("emoji: watcher error", "err", err)
		case <-fire:
			fire = nil
			db, err := LoadFile(path)
			if err == nil {
				logx.L().Info("emoji: manifest reloaded", "path", path, "count", db.Len())
			}
			files = watchFiles(path)
			addFrameDirs(w, dir, files)
			onChange(db, err)
		}
	}
}

// watchFiles returns the manifest at path and every frame file it
// references, as cleaned absolute paths. A manifest that cannot be read or
// parsed contributes only itself.
func watchFiles(path string) map[string]bool {
	files := map[string]bool{path: true}

	format, err := FormatOf(path)
	if err != nil {
		return files
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return files
	}
	m, err := ParseManifest(data, format)
	if err != nil {
		return files
	}

	dir := filepath.Dir(path)
	for _, e := range m.Emoji {
		for _, frame := range e.Frames {
			files[filepath.Join(dir, filepath.FromSlash(frame))] = true
		}
	}
	return files
}

// addFrameDirs watches the directories of frames that live outside the
// manifest directory.
func addFrameDirs(w *fsnotify.Watcher, manifestDir string, files map[string]bool) {
	for f := range files {
		d := filepath.Dir(f)
		if d == manifestDir {
			continue
		}
		if err := w.Add(d); err != nil {
			logx.L().Warn("emoji: cannot watch frame directory", "dir", d, "err", err)
		}
	}
}
