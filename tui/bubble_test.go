package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cinebox-cli/cinebox/browse"
	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/settings"
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeCatalog struct {
	mu       sync.Mutex
	language string
	searched []string
	trending []media.Kind
	genres   []int
	items    []media.Item
	err      error
}

func (f *fakeCatalog) Search(_ context.Context, q string, _ media.Kind) ([]media.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searched = append(f.searched, q)
	return f.items, f.err
}

func (f *fakeCatalog) Trending(_ context.Context, kind media.Kind) ([]media.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trending = append(f.trending, kind)
	return f.items, f.err
}

func (f *fakeCatalog) ListByGenre(_ context.Context, genreID int, _ media.Kind) ([]media.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.genres = append(f.genres, genreID)
	return f.items, f.err
}

func (f *fakeCatalog) Genres(context.Context, media.Kind) ([]media.Genre, error) {
	return []media.Genre{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comedy"}}, nil
}

func (f *fakeCatalog) Details(_ context.Context, item media.Item) (media.Details, error) {
	return media.Details{Item: item, Tagline: "tagline", Runtime: 120, TrailerKey: "abc"}, nil
}

// collect runs cmd and the batches it returns, gathering the messages
// the bubble itself produces.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var msgs []tea.Msg
		for _, c := range msg {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	case resultsMsg, genresMsg, detailsMsg, debounceMsg:
		return []tea.Msg{msg}
	default:
		return nil
	}
}

// settle feeds messages back until nothing new is produced.
func settle(b *statefulBubble, cmd tea.Cmd) {
	pending := collect(cmd)
	for len(pending) > 0 {
		msg := pending[0]
		pending = pending[1:]
		_, next := b.Update(msg)
		pending = append(pending, collect(next)...)
	}
}

func press(b *statefulBubble, keys ...tea.KeyMsg) {
	for _, k := range keys {
		_, cmd := b.Update(k)
		settle(b, cmd)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func newTestBubble(catalogs map[string]*fakeCatalog) (*statefulBubble, *settings.Holder) {
	filesystem.SetMemMapFs()

	holder := settings.NewHolder(settings.Defaults, nil)
	options := &Options{
		CatalogFor: func(language string) Catalog {
			if c, ok := catalogs[language]; ok {
				return c
			}
			c := &fakeCatalog{language: language}
			catalogs[language] = c
			return c
		},
		Settings: holder,
		Kind:     media.Movie,
	}

	b := newBubble(context.Background(), options)
	b.resize(100, 40)
	return b, holder
}

func TestBubble(t *testing.T) {
	Convey("Given a bubble over a fake catalog", t, func() {
		catalog := &fakeCatalog{items: []media.Item{
			{ID: 1, Title: "Alien", Kind: media.Movie, ReleaseDate: "1979-05-25", VoteAverage: 8.1},
			{ID: 2, Title: "Aliens", Kind: media.Movie, ReleaseDate: "1986-07-18", VoteAverage: 7.9},
		}}
		catalogs := map[string]*fakeCatalog{"en-US": catalog}
		b, holder := newTestBubble(catalogs)

		Convey("Init loads trending titles of the initial filter", func() {
			settle(b, b.Init())

			So(catalog.trending, ShouldResemble, []media.Kind{media.Movie})
			So(b.resultsC.Items(), ShouldHaveLength, 2)
			So(b.loading, ShouldBeFalse)
			So(b.View(), ShouldContainSubstring, "Alien")
		})

		Convey("Submitting the input searches and focuses the list", func() {
			settle(b, b.Init())
			b.inputC.SetValue("alien")
			press(b, enter)

			So(catalog.searched, ShouldContain, "alien")
			So(b.current(), ShouldEqual, homeListState)
		})

		Convey("Changing the filter clears the query and lists trending titles", func() {
			settle(b, b.Init())
			press(b, tea.KeyMsg{Type: tea.KeyCtrlT})

			So(b.browse.Filter(), ShouldEqual, media.TV)
			So(catalog.trending, ShouldResemble, []media.Kind{media.Movie, media.TV})
			So(b.inputC.Value(), ShouldBeEmpty)
		})

		Convey("Favorites toggle from the result list", func() {
			settle(b, b.Init())
			b.setFocus(listFocus)
			press(b, runes("f"))

			So(b.browse.Favorites(), ShouldHaveLength, 1)
			So(b.favoritesC.Items(), ShouldHaveLength, 1)

			press(b, runes("f"))
			So(b.browse.Favorites(), ShouldBeEmpty)
		})

		Convey("The details modal opens, loads and closes", func() {
			settle(b, b.Init())
			b.setFocus(listFocus)
			press(b, enter)

			So(b.current(), ShouldEqual, detailsState)
			So(b.details.IsPresent(), ShouldBeTrue)
			So(b.detailsC.View(), ShouldContainSubstring, "tagline")

			press(b, esc)
			So(b.browse.Selected().IsPresent(), ShouldBeFalse)
		})

		Convey("The sidebar navigates to genres and a genre lists titles on Home", func() {
			settle(b, b.Init())
			b.setFocus(listFocus)
			press(b, tab)
			So(b.current(), ShouldEqual, sidebarState)

			// Home, Favorites, Genres
			press(b, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, enter)
			So(b.browse.Screen(), ShouldEqual, browse.Genres)
			So(b.browse.SidebarOpen(), ShouldBeFalse)
			So(b.genresC.Items(), ShouldHaveLength, 2)

			press(b, enter)
			So(catalog.genres, ShouldResemble, []int{28})
			So(b.browse.Screen(), ShouldEqual, browse.Home)
			So(b.current(), ShouldEqual, homeListState)
		})

		Convey("Changing the language swaps the catalog and searches again", func() {
			settle(b, b.Init())
			settle(b, b.changeSettings(func(s *settings.Settings) { s.Language = settings.Portuguese }))

			So(holder.Current().Language, ShouldEqual, settings.Portuguese)
			So(catalogs, ShouldContainKey, "pt-BR")
			So(catalogs["pt-BR"].trending, ShouldHaveLength, 1)
			So(b.inputC.Placeholder, ShouldEqual, b.labels.SearchPlaceholder)
		})

		Convey("A search superseded before it runs never reaches the catalog", func() {
			settle(b, b.Init())
			first := b.search("ali", media.Movie)
			second := b.search("alien", media.Movie)

			settle(b, first)
			settle(b, second)

			So(catalog.searched, ShouldResemble, []string{"alien"})
			So(b.browse.Query(), ShouldEqual, "alien")
			So(b.loading, ShouldBeFalse)
		})

		Convey("Details of a series are not shown for a movie with the same id", func() {
			settle(b, b.Init())
			b.browse.Select(media.Item{ID: 1, Title: "Alien", Kind: media.Movie})
			b.detailsLoad = true

			b.handleDetails(detailsMsg{key: media.Item{ID: 1, Kind: media.TV}.Key()})
			So(b.detailsLoad, ShouldBeTrue)
			So(b.details.IsPresent(), ShouldBeFalse)
		})

		Convey("A failing catalog leaves an empty list", func() {
			catalog.err = errors.New("boom")
			settle(b, b.Init())

			So(b.resultsC.Items(), ShouldBeEmpty)
			So(b.browse.LastError(), ShouldNotBeNil)
			So(b.View(), ShouldContainSubstring, b.labels.NoResults)
		})
	})
}
