package files

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/blogpanel/blogpanel/internal/logging"
)

var watchLog = logging.ForComponent(logging.CompWatch)

// DefaultSettleDelay is how long the file must stay quiet before a change
// is reported
const DefaultSettleDelay = 100 * time.Millisecond

// ArticleWatcher reports writes to a single article file.
// The parent directory is watched so editors that replace the file
// through a rename are still noticed. A burst of events yields one change.
type ArticleWatcher struct {
	watcher   *fsnotify.Watcher
	path      string
	settle    time.Duration
	changeCh  chan struct{}
	closeCh   chan struct{}
	closeOnce sync.Once
	done      sync.WaitGroup
}

// NewArticleWatcher starts watching path
func NewArticleWatcher(path string) (*ArticleWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	aw := &ArticleWatcher{
		watcher:  watcher,
		path:     abs,
		settle:   DefaultSettleDelay,
		changeCh: make(chan struct{}, 1),
		closeCh:  make(chan struct{}),
	}

	aw.done.Add(1)
	go aw.watchLoop()
	return aw, nil
}

func (aw *ArticleWatcher) watchLoop() {
	defer aw.done.Done()

	timer := time.NewTimer(aw.settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-aw.closeCh:
			return
		case <-timer.C:
			// Non-blocking send; one pending change is enough
			select {
			case aw.changeCh <- struct{}{}:
			default:
			}
		case event, ok := <-aw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != aw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(aw.settle)
		case err, ok := <-aw.watcher.Errors:
			if !ok {
				return
			}
			watchLog.Warn("article_watch_error", "path", aw.path, "error", err.Error())
		}
	}
}

// Path returns the absolute path being watched
func (aw *ArticleWatcher) Path() string {
	return aw.path
}

// Changes returns the channel that receives a value after each write
func (aw *ArticleWatcher) Changes() <-chan struct{} {
	return aw.changeCh
}

// Close stops the watcher. Safe to call multiple times.
func (aw *ArticleWatcher) Close() error {
	var err error
	aw.closeOnce.Do(func() {
		close(aw.closeCh)
		err = aw.watcher.Close()
		aw.done.Wait()
	})
	return err
}
