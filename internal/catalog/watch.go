// internal/catalog/watch.go
package catalog

import (
	"os"
	"sync"
	"time"
)

// FileWatcher polls file modification times and calls onChange with the
// path of every file that changed or appeared since the previous poll.
type FileWatcher struct {
	Paths    []string
	Interval time.Duration

	onChange  func(string)
	stopCh    chan struct{}
	stopOnce  sync.Once
	lastMTime map[string]time.Time
}

func NewFileWatcher(paths []string, interval time.Duration, onChange func(string)) *FileWatcher {
	return &FileWatcher{
		Paths:     paths,
		Interval:  interval,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		lastMTime: make(map[string]time.Time),
	}
}

// Start records the current mtimes and then polls in a goroutine until Stop.
func (w *FileWatcher) Start() {
	w.scanAll(true)

	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.scanAll(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *FileWatcher) scanAll(prime bool) {
	for _, p := range w.Paths {
		fi, err := os.Stat(p)
		if err != nil {
			// missing files are picked up once they appear
			continue
		}
		mt := fi.ModTime()
		last, seen := w.lastMTime[p]
		if seen && !mt.After(last) {
			continue
		}
		w.lastMTime[p] = mt
		if !prime && w.onChange != nil {
			w.onChange(p)
		}
	}
}
