// Package query remembers submitted searches and suggests them back while typing.
package query

import (
	"strings"
	"sync"

	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/key"
	"github.com/cinebox-cli/cinebox/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var (
	cacher = gache.New[map[string]*record](&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	})

	mu          sync.Mutex
	suggestions = make(map[string][]string)
)

// Remember adds weight to the rank of q, recording it on first use.
func Remember(q string, weight int) error {
	q = normalize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	records, expired, err := cacher.Get()
	if err != nil || expired || records == nil {
		records = make(map[string]*record)
	}

	if r, ok := records[q]; ok {
		r.Rank += weight
	} else {
		records[q] = &record{Rank: weight, Query: q}
	}

	// ranks changed, memoized answers are stale
	suggestions = make(map[string][]string)
	return cacher.Set(records)
}

// Suggest returns the best ranked past query fuzzily matching q.
func Suggest(q string) mo.Option[string] {
	many := SuggestMany(q)
	if len(many) == 0 {
		return mo.None[string]()
	}
	return mo.Some(many[0])
}

// SuggestMany returns past queries matching q, highest rank first. The exact
// query itself is left out. Nothing is returned when suggestions are disabled.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return nil
	}

	q = normalize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if memo, ok := suggestions[q]; ok {
		return memo
	}

	records, expired, err := cacher.Get()
	if err != nil || expired || records == nil {
		return nil
	}

	matches := lo.Filter(lo.Values(records), func(r *record, _ int) bool {
		return r.Query != q && fuzzy.Match(q, r.Query)
	})

	slices.SortFunc(matches, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Query, b.Query)
	})

	result := lo.Map(matches, func(r *record, _ int) string { return r.Query })
	suggestions[q] = result
	return result
}

// Clear forgets every remembered query.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()

	suggestions = make(map[string][]string)
	return cacher.Set(make(map[string]*record))
}

func normalize(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}
