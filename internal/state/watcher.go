package state

import (
	"errors"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/Paintersrp/sidoc/internal/pathutil"
)

// CatalogChangedMsg reports that the catalog file was rewritten and reloaded.
type CatalogChangedMsg struct {
	Path string
}

type CatalogWatcherErrMsg struct {
	Err error
}

// CatalogWatcher follows a single catalog file. The parent directory is
// watched so editors that replace the file by rename are still seen.
type CatalogWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	done     chan struct{}
	once     sync.Once
	mu       sync.Mutex
	onChange func(string) error
	onClose  func()
}

func NewCatalogWatcher(path string) (*CatalogWatcher, error) {
	normalized := pathutil.NormalizePath(path)
	if normalized == "" {
		return nil, errors.New("catalog path cannot be empty")
	}
	if abs, err := filepath.Abs(normalized); err == nil {
		normalized = abs
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &CatalogWatcher{
		watcher: w,
		path:    normalized,
		done:    make(chan struct{}),
	}

	if err := w.Add(filepath.Dir(normalized)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return watcher, nil
}

func (w *CatalogWatcher) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// Start returns a command that blocks until the next relevant change. The
// caller re-issues it after every message it receives.
func (w *CatalogWatcher) Start() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.isRelevant(event) {
					continue
				}

				if fn := w.changeHandler(); fn != nil {
					if err := fn(w.path); err != nil {
						return CatalogWatcherErrMsg{Err: err}
					}
				}

				return CatalogChangedMsg{Path: w.path}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return CatalogWatcherErrMsg{Err: err}
				}
			}
		}
	}
}

func (w *CatalogWatcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
		w.mu.Lock()
		fn := w.onClose
		w.mu.Unlock()
		if fn != nil {
			fn()
		}
	})

	return closeErr
}

// OnChange registers the callback run before CatalogChangedMsg is delivered.
// A returned error is delivered as CatalogWatcherErrMsg instead.
func (w *CatalogWatcher) OnChange(fn func(string) error) {
	if w == nil {
		return
	}
	w.mu.Lock()
	w.onChange = fn
	w.mu.Unlock()
}

// OnClose registers a callback that is invoked exactly once when the watcher
// shuts down.
func (w *CatalogWatcher) OnClose(fn func()) {
	if w == nil {
		return
	}
	w.mu.Lock()
	w.onClose = fn
	w.mu.Unlock()
}

func (w *CatalogWatcher) changeHandler() func(string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.onChange
}

// Removals and renames away are ignored; the last good catalog stays loaded.
func (w *CatalogWatcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return false
	}
	return pathutil.SamePath(event.Name, w.path)
}
