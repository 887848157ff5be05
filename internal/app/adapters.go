package app

import (
	"github.com/dshills/kilo/internal/project/filestore"
	"github.com/dshills/kilo/internal/project/watcher"
)

// watchedStore is the engine's storage. It tells the watcher about the
// editor's own writes before they happen so that saving does not report
// the file as changed on disk.
type watchedStore struct {
	store   *filestore.Store
	watcher *watcher.FileWatcher
}

func (s *watchedStore) Load(path string) ([][]byte, error) {
	return s.store.Load(path)
}

func (s *watchedStore) Save(path string, data []byte) (int, error) {
	if s.watcher != nil {
		s.watcher.MarkSelfWrite()
	}
	return s.store.Save(path, data)
}
