package prefabs

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports changed rig and script files under the watched
// directories. Events for the same file inside the debounce window are
// dropped.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
}

func NewWatcher(logger *slog.Logger, dirs ...string) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	return &Watcher{watcher: w, logger: logger}, nil
}

// Run forwards changed file paths to out until ctx is done, then closes the
// underlying watcher. It never closes out.
func (w *Watcher) Run(ctx context.Context, out chan<- string) error {
	defer w.watcher.Close()

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			w.logger.Debug("prefabs: file changed", slog.String("path", event.Name), slog.String("op", event.Op.String()))
			select {
			case out <- event.Name:
			case <-ctx.Done():
				return ctx.Err()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("prefabs: watch error", slog.Any("err", err))
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".tengo"
}
