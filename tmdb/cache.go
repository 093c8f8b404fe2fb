package tmdb

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

type cacheData[K comparable, T any] struct {
	Entries map[K]T `json:"entries"`
}

// cacher is a keyed view over a single gache file.
type cacher[K comparable, T any] struct {
	internal *gache.Cache[*cacheData[K, T]]
	mu       sync.RWMutex
}

func newCacher[K comparable, T any](path string, lifetime time.Duration) *cacher[K, T] {
	return &cacher[K, T]{
		internal: gache.New[*cacheData[K, T]](&gache.Options{
			Path:       path,
			Lifetime:   lifetime,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (c *cacher[K, T]) Get(key K) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	if value, ok := data.Entries[key]; ok {
		return mo.Some(value)
	}

	return mo.None[T]()
}

func (c *cacher[K, T]) Set(key K, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil || data.Entries == nil {
		data = &cacheData[K, T]{Entries: make(map[K]T)}
	}

	data.Entries[key] = value
	return c.internal.Set(data)
}

func (c *cacher[K, T]) Delete(key K) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return err
	}

	delete(data.Entries, key)
	return c.internal.Set(data)
}

// caches groups the on-disk caches of a client. Keys are request paths
// including the query string, minus credentials.
type caches struct {
	pages   *cacher[string, []media.Item]
	genres  *cacher[string, []media.Genre]
	details *cacher[string, media.Details]
	fails   *cacher[string, bool]
}

func newCaches(dir string) *caches {
	return &caches{
		pages:   newCacher[string, []media.Item](filepath.Join(dir, "tmdb_pages.json"), 24*time.Hour),
		genres:  newCacher[string, []media.Genre](filepath.Join(dir, "tmdb_genres.json"), 30*24*time.Hour),
		details: newCacher[string, media.Details](filepath.Join(dir, "tmdb_details.json"), 2*24*time.Hour),
		fails:   newCacher[string, bool](filepath.Join(dir, "tmdb_fails.json"), time.Minute),
	}
}
