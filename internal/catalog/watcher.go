package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"leadpath/internal/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = time.Second

// Watcher calls onChange after the catalog file has been written, created or
// replaced. Bursts of events within the debounce window trigger one call.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(ctx context.Context)
}

func NewWatcher(path string, onChange func(ctx context.Context)) *Watcher {
	return &Watcher{path: path, debounce: defaultDebounce, onChange: onChange}
}

// Run blocks until ctx is done. The parent directory is watched so editors
// that save by rename are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	absPath, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("failed to resolve catalog path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create catalog watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch catalog directory: %w", err)
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
		case <-timer.C:
			logger.Get().Info("Catalog file changed", zap.String("path", absPath))
			w.onChange(ctx)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Get().Error("Catalog watcher error", zap.Error(err))
		}
	}
}
