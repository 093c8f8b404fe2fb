// Package history keeps the titles whose details were opened most recently.
package history

import (
	"sort"
	"sync"
	"time"

	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
)

// Limit is how many titles are kept, the least recently viewed are dropped first.
const Limit = 50

var (
	cacher = gache.New[map[string]*Viewed](
		&gache.Options{
			Path:       where.History(),
			FileSystem: &filesystem.GacheFs{},
		},
	)

	mu sync.Mutex
	// now is replaced in tests.
	now = time.Now
)

// Get returns every record keyed by media.Item.Key.
func Get() (map[string]*Viewed, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}

	saved := make(map[string]*Viewed, len(cached))
	if expired {
		return saved, nil
	}

	// files written before records were keyed by kind hold bare ids
	for _, record := range cached {
		if record != nil {
			saved[record.Key()] = record
		}
	}
	return saved, nil
}

// Recent returns the records, most recently viewed first.
func Recent() ([]*Viewed, error) {
	mu.Lock()
	defer mu.Unlock()

	saved, err := Get()
	if err != nil {
		return nil, err
	}

	return sorted(saved), nil
}

// Save records that item was viewed now.
func Save(item media.Item) error {
	mu.Lock()
	defer mu.Unlock()

	saved, err := Get()
	if err != nil {
		return err
	}

	record := newViewed(item, now())
	key := item.Key()
	if existing, ok := saved[key]; ok {
		record.Views = existing.Views + 1
	}
	saved[key] = record

	if len(saved) > Limit {
		for _, stale := range sorted(saved)[Limit:] {
			delete(saved, stale.Key())
		}
	}

	return cacher.Set(saved)
}

// Remove forgets the title with the given key and reports whether it was recorded.
func Remove(key string) (bool, error) {
	mu.Lock()
	defer mu.Unlock()

	saved, err := Get()
	if err != nil {
		return false, err
	}

	if _, ok := saved[key]; !ok {
		return false, nil
	}

	delete(saved, key)
	return true, cacher.Set(saved)
}

// Clear forgets every title.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()
	return cacher.Set(make(map[string]*Viewed))
}

func sorted(saved map[string]*Viewed) []*Viewed {
	records := lo.Values(saved)
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].ViewedAt.Equal(records[j].ViewedAt) {
			return records[i].Key() < records[j].Key()
		}
		return records[i].ViewedAt.After(records[j].ViewedAt)
	})
	return records
}
