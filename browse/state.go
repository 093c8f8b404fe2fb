// Package browse is the single source of truth for what the user is looking at:
// the active screen, the current result list, favorites, the sidebar and the
// item opened in the details view.
//
// Fetches are split in three steps so they can run off the UI goroutine:
// Begin* hands out a Request, Fetch performs it, Commit applies the answer.
// Only the most recently begun request may commit; older answers are dropped.
package browse

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/cinebox-cli/cinebox/log"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Catalog is where results come from.
type Catalog interface {
	Search(ctx context.Context, query string, kind media.Kind) ([]media.Item, error)
	Trending(ctx context.Context, kind media.Kind) ([]media.Item, error)
	ListByGenre(ctx context.Context, genreID int, kind media.Kind) ([]media.Item, error)
}

// FavoritesStore persists the favorites collection.
type FavoritesStore interface {
	Load() ([]media.Item, error)
	Save(items []media.Item) error
}

// ErrStale is returned by Commit when a newer request has been begun.
var ErrStale = errors.New("superseded by a newer request")

// Request is one fetch of the result list.
type Request struct {
	Generation uint64
	Query      string
	Kind       media.Kind
	// GenreID is set for genre listings, zero otherwise.
	GenreID int

	ctx     context.Context
	catalog Catalog
}

// Context is canceled as soon as a newer request begins.
func (r Request) Context() context.Context {
	return r.ctx
}

// Options configures a State.
type Options struct {
	Catalog Catalog
	// Store is optional; favorites live in memory only without it.
	Store FavoritesStore
	// Kind is the initial filter.
	Kind media.Kind
}

// State is safe for concurrent use.
type State struct {
	catalog Catalog
	store   FavoritesStore

	mu         sync.RWMutex
	screen     Screen
	history    util.Stack[Screen]
	results    []media.Item
	favorites  []media.Item
	sidebar    bool
	selected   mo.Option[media.Item]
	kind       media.Kind
	query      string
	genreID    int
	generation uint64
	cancel     context.CancelFunc
	lastErr    error
}

// New creates the state on the Home screen and loads saved favorites.
func New(options Options) *State {
	s := &State{
		catalog: options.Catalog,
		store:   options.Store,
		kind:    options.Kind,
		screen:  Home,
		cancel:  func() {},
	}

	if s.store != nil {
		saved, err := s.store.Load()
		if err != nil {
			log.Warnf("load favorites: %s", err)
		}
		s.favorites = lo.UniqBy(saved, media.Item.Key)
	}

	return s
}

// SetCatalog swaps the result source, e.g. after the language changed.
// Requests already begun keep using the catalog they started with.
func (s *State) SetCatalog(catalog Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog
}

// Screen returns the active screen.
func (s *State) Screen() Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screen
}

// SetScreen switches the active screen, remembering the previous one for Back.
func (s *State) SetScreen(target Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setScreen(target)
}

func (s *State) setScreen(target Screen) {
	if !target.Valid() || target == s.screen {
		return
	}
	s.history.Push(s.screen)
	s.screen = target
}

// Navigate is the sidebar action: switch screen and close the sidebar.
func (s *State) Navigate(target Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setScreen(target)
	s.sidebar = false
}

// Back returns to the previously active screen and reports whether there was one.
func (s *State) Back() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.history.Len() == 0 {
		return false
	}
	s.screen = s.history.Pop()
	return true
}

func (s *State) ToggleSidebar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebar = !s.sidebar
}

func (s *State) CloseSidebar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebar = false
}

func (s *State) SidebarOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebar
}

// Select opens item in the details view.
func (s *State) Select(item media.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = mo.Some(item)
}

// Deselect closes the details view.
func (s *State) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = mo.None[media.Item]()
}

func (s *State) Selected() mo.Option[media.Item] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Results returns a copy of the current result list.
func (s *State) Results() []media.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]media.Item(nil), s.results...)
}

// Filter is the kind used by the last search.
func (s *State) Filter() media.Kind {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kind
}

// Query is the text of the last search.
func (s *State) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// GenreID is the genre the results were listed by, zero for searches.
func (s *State) GenreID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.genreID
}

// LastError is the error swallowed by the last committed fetch, if any.
func (s *State) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Pending reports whether req is still the latest request and has not been committed.
func (s *State) Pending(req Request) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return req.Generation == s.generation && req.ctx.Err() == nil
}

// BeginSearch starts a search request, canceling the previous one.
func (s *State) BeginSearch(ctx context.Context, query string, kind media.Kind) Request {
	return s.begin(ctx, Request{Query: strings.TrimSpace(query), Kind: kind})
}

// BeginGenre starts a genre listing request for the current filter.
func (s *State) BeginGenre(ctx context.Context, genreID int) Request {
	s.mu.RLock()
	kind := s.kind
	s.mu.RUnlock()

	return s.begin(ctx, Request{Kind: kind, GenreID: genreID})
}

func (s *State) begin(ctx context.Context, req Request) Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancel()
	s.generation++

	req.Generation = s.generation
	req.catalog = s.catalog
	req.ctx, s.cancel = context.WithCancel(ctx)
	return req
}

// Fetch performs req against the catalog it was begun with. An empty query lists trending titles.
func (s *State) Fetch(req Request) ([]media.Item, error) {
	switch {
	case req.GenreID != 0:
		return req.catalog.ListByGenre(req.ctx, req.GenreID, req.Kind)
	case req.Query == "":
		return req.catalog.Trending(req.ctx, req.Kind)
	default:
		return req.catalog.Search(req.ctx, req.Query, req.Kind)
	}
}

// Commit replaces the result list with items when req is the latest request.
// A fetch error yields an empty list and is kept for LastError. Genre
// listings navigate to Home, whether or not they succeeded. A superseded
// request changes nothing, the newer one decides the screen.
func (s *State) Commit(req Request, items []media.Item, fetchErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Generation != s.generation {
		log.With(log.Fields{"generation": req.Generation, "latest": s.generation}).Debug("discarding stale results")
		return ErrStale
	}

	if req.GenreID != 0 {
		s.setScreen(Home)
	}

	// done with this request, release its context
	s.cancel()
	s.cancel = func() {}

	s.query = req.Query
	s.kind = req.Kind
	s.genreID = req.GenreID
	s.lastErr = fetchErr

	if fetchErr != nil {
		log.With(log.Fields{"query": req.Query, "kind": req.Kind, "genre": req.GenreID}).Error(fetchErr)
		s.results = nil
		return nil
	}

	s.results = append([]media.Item(nil), items...)
	return nil
}

// Search runs a search to completion and commits it.
func (s *State) Search(ctx context.Context, query string, kind media.Kind) error {
	req := s.BeginSearch(ctx, query, kind)
	items, err := s.Fetch(req)
	return s.Commit(req, items, err)
}

// SelectGenre lists a genre, replaces the results and returns to Home.
func (s *State) SelectGenre(ctx context.Context, genreID int) error {
	req := s.BeginGenre(ctx, genreID)
	items, err := s.Fetch(req)
	return s.Commit(req, items, err)
}

// IsFavorite reports whether an item with the same key is a favorite.
func (s *State) IsFavorite(item media.Item) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.ContainsBy(s.favorites, sameTitle(item))
}

func sameTitle(item media.Item) func(media.Item) bool {
	key := item.Key()
	return func(other media.Item) bool { return other.Key() == key }
}

// Favorites returns a copy of the favorites in insertion order.
func (s *State) Favorites() []media.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]media.Item(nil), s.favorites...)
}

// ToggleFavorite removes item if a favorite with its key exists, appends it
// otherwise, and reports whether it is a favorite afterwards.
func (s *State) ToggleFavorite(item media.Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	same := sameTitle(item)
	present := lo.ContainsBy(s.favorites, same)
	if present {
		s.favorites = lo.Reject(s.favorites, func(fav media.Item, _ int) bool { return same(fav) })
	} else {
		s.favorites = append(s.favorites, item)
	}

	if s.store != nil {
		if err := s.store.Save(s.favorites); err != nil {
			log.Errorf("save favorites: %s", err)
		}
	}

	return !present
}
