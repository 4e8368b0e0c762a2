package suite

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/msto63/strkw/foundation/core/log"
)

// DefaultDebounce is used when Watch is given a non-positive debounce
const DefaultDebounce = 500 * time.Millisecond

// Watch calls onChange after path was written or recreated and then stayed
// quiet for debounce. The directory is watched, not the file, so editors
// that replace the file on save keep triggering. Watch blocks until ctx is
// done and then returns nil.
func Watch(ctx context.Context, path string, debounce time.Duration, logger *log.Logger, onChange func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.GetDefault()
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	logger = logger.WithField("component", "suite-watch").WithField("path", path)
	logger.Info("watching suite for changes")

	// pending fires once the file has been quiet for debounce
	pending := time.NewTimer(debounce)
	if !pending.Stop() {
		<-pending.C
	}

	for {
		select {
		case <-ctx.Done():
			pending.Stop()
			logger.Debug("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !sameFile(event.Name, target) {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Trace("suite file event", log.Fields{"op": event.Op.String()})
				pending.Reset(debounce)
			}

		case <-pending.C:
			logger.Debug("suite changed")
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", log.Fields{"error": err.Error()})
		}
	}
}

func sameFile(name, target string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == target
}
