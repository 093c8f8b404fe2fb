// Package favorites persists the favorites collection between sessions.
package favorites

import (
	"sync"

	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
)

// Store keeps favorites in a single JSON file, in insertion order.
type Store struct {
	cache *gache.Cache[[]media.Item]
	mu    sync.Mutex
}

// New opens the store at path. The file is created on first Save.
func New(path string) *Store {
	return &Store{
		cache: gache.New[[]media.Item](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

// Default is the store under the config directory.
func Default() *Store {
	return New(where.Favorites())
}

// Load returns the saved favorites, or nothing when the file does not exist yet.
func (s *Store) Load() ([]media.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]media.Item, error) {
	items, expired, err := s.cache.Get()
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, nil
	}

	return items, nil
}

// Save replaces the saved collection.
func (s *Store) Save(items []media.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(items)
}

func (s *Store) save(items []media.Item) error {
	if items == nil {
		items = []media.Item{}
	}
	return s.cache.Set(items)
}

// Remove deletes the favorite with the given key (see media.Item.Key) and
// reports whether it was present.
func (s *Store) Remove(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return false, err
	}

	kept := lo.Reject(items, func(item media.Item, _ int) bool { return item.Key() == key })
	if len(kept) == len(items) {
		return false, nil
	}

	return true, s.save(kept)
}
