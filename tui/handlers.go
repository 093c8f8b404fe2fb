package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cinebox-cli/cinebox/browse"
	"github.com/cinebox-cli/cinebox/history"
	"github.com/cinebox-cli/cinebox/internal/ui"
	"github.com/cinebox-cli/cinebox/locale"
	"github.com/cinebox-cli/cinebox/log"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/open"
	"github.com/cinebox-cli/cinebox/query"
	"github.com/cinebox-cli/cinebox/settings"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type resultsMsg struct {
	req   browse.Request
	items []media.Item
	err   error
}

type debounceMsg struct {
	seq int
}

type genresMsg struct {
	kind   media.Kind
	genres []media.Genre
	err    error
}

type detailsMsg struct {
	key     string
	details media.Details
	err     error
}

// search begins a search and returns the command performing it.
func (b *statefulBubble) search(q string, kind media.Kind) tea.Cmd {
	return b.fetch(b.browse.BeginSearch(b.ctx, q, kind))
}

func (b *statefulBubble) selectGenre(genreID int) tea.Cmd {
	return b.fetch(b.browse.BeginGenre(b.ctx, genreID))
}

func (b *statefulBubble) fetch(req browse.Request) tea.Cmd {
	b.loading = true
	return tea.Batch(b.spinnerC.Tick, func() tea.Msg {
		// superseded before it ran, e.g. by faster typing
		if !b.browse.Pending(req) {
			return nil
		}

		items, err := b.browse.Fetch(req)
		return resultsMsg{req: req, items: items, err: err}
	})
}

func (b *statefulBubble) debounce() tea.Cmd {
	b.inputSeq++
	seq := b.inputSeq

	if b.options.Debounce <= 0 {
		return func() tea.Msg { return debounceMsg{seq: seq} }
	}

	return tea.Tick(b.options.Debounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func (b *statefulBubble) handleDebounce(msg debounceMsg) tea.Cmd {
	if msg.seq != b.inputSeq {
		return nil
	}
	return b.search(b.inputC.Value(), b.browse.Filter())
}

func (b *statefulBubble) handleResults(msg resultsMsg) tea.Cmd {
	if err := b.browse.Commit(msg.req, msg.items, msg.err); errors.Is(err, browse.ErrStale) {
		return nil
	}

	b.loading = false
	if msg.req.GenreID != 0 {
		b.setFocus(listFocus)
	}

	b.refreshResults()
	b.resultsC.ResetSelected()

	if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
		return ui.NotifyError(msg.err.Error())
	}

	return nil
}

func (b *statefulBubble) loadGenres(kind media.Kind) tea.Cmd {
	if loaded, ok := b.genresKind.Get(); ok && loaded == kind && b.genresErr == nil {
		return nil
	}

	b.genresKind = mo.Some(kind)
	b.genresErr = nil
	b.genresC.SetItems(nil)
	b.loading = true

	catalog := b.catalog
	return tea.Batch(b.spinnerC.Tick, func() tea.Msg {
		genres, err := catalog.Genres(b.ctx, kind)
		return genresMsg{kind: kind, genres: genres, err: err}
	})
}

func (b *statefulBubble) handleGenres(msg genresMsg) tea.Cmd {
	if kind, ok := b.genresKind.Get(); !ok || kind != msg.kind {
		return nil
	}

	b.loading = false
	b.genresErr = msg.err
	if msg.err != nil {
		log.Error(msg.err)
		return ui.NotifyError(msg.err.Error())
	}

	items := lo.Map(msg.genres, func(genre media.Genre, _ int) list.Item {
		return &listItem{internal: genre}
	})

	b.genresC.Title = fmt.Sprintf("%s · %s", b.labels.Genres, b.filterLabel(msg.kind))
	return b.genresC.SetItems(items)
}

// openDetails selects item and starts loading its extended record.
func (b *statefulBubble) openDetails(item media.Item) tea.Cmd {
	b.browse.Select(item)
	b.details = mo.None[media.Details]()
	b.detailsErr = nil
	b.detailsLoad = true
	b.detailsC.GotoTop()
	b.refreshDetails()

	catalog := b.catalog
	return tea.Batch(b.spinnerC.Tick, b.markViewed(item), func() tea.Msg {
		details, err := catalog.Details(b.ctx, item)
		return detailsMsg{key: item.Key(), details: details, err: err}
	})
}

func (b *statefulBubble) markViewed(item media.Item) tea.Cmd {
	return func() tea.Msg {
		if err := history.Save(item); err != nil {
			log.Warnf("save history: %s", err)
		}
		return nil
	}
}

func (b *statefulBubble) handleDetails(msg detailsMsg) tea.Cmd {
	selected, ok := b.browse.Selected().Get()
	if !ok || selected.Key() != msg.key {
		return nil
	}

	b.detailsLoad = false
	b.detailsErr = msg.err
	if msg.err == nil {
		b.details = mo.Some(msg.details)
	} else {
		log.Warnf("details of %s: %s", msg.key, msg.err)
	}

	b.refreshDetails()
	return nil
}

func (b *statefulBubble) closeDetails() {
	b.browse.Deselect()
	b.details = mo.None[media.Details]()
	b.detailsErr = nil
	b.detailsLoad = false
}

func (b *statefulBubble) toggleFavorite(item media.Item) tea.Cmd {
	added := b.browse.ToggleFavorite(item)
	b.refreshFavorites()
	b.refreshResults()
	b.refreshDetails()

	if added {
		return ui.Notify(b.labels.Added)
	}
	return ui.Notify(b.labels.Removed)
}

func (b *statefulBubble) openURL(url string) tea.Cmd {
	if url == "" {
		return nil
	}

	return func() tea.Msg {
		if err := open.Start(url); err != nil {
			log.Error(err)
			return ui.NotifyError(err.Error())()
		}
		return nil
	}
}

func (b *statefulBubble) remember(q string) tea.Cmd {
	return func() tea.Msg {
		if err := query.Remember(q, 1); err != nil {
			log.Warnf("remember query: %s", err)
		}
		return nil
	}
}

func (b *statefulBubble) changeFilter(kind media.Kind) tea.Cmd {
	b.inputC.SetValue("")
	b.searchSuggestion = mo.None[string]()
	// drop a pending debounce for the old text
	b.inputSeq++
	return b.search("", kind)
}

func (b *statefulBubble) cycleFilter(step int) tea.Cmd {
	_, index, _ := lo.FindIndexOf(media.Kinds, func(k media.Kind) bool { return k == b.browse.Filter() })
	next := (index + step + len(media.Kinds)) % len(media.Kinds)
	return b.changeFilter(media.Kinds[next])
}

// changeSettings routes a settings change through the holder and applies
// whatever actually changed.
func (b *statefulBubble) changeSettings(fn func(*settings.Settings)) tea.Cmd {
	before := b.settings.Current()
	err := b.settings.Update(fn)
	after := b.settings.Current()

	var cmds []tea.Cmd
	if err != nil {
		log.Error(err)
		cmds = append(cmds, ui.NotifyError(err.Error()))
	}

	if after == before {
		return tea.Batch(cmds...)
	}

	b.applySettings(after)

	if after.Language != before.Language {
		b.catalog = b.options.CatalogFor(string(after.Language))
		b.browse.SetCatalog(b.catalog)
		b.genresKind = mo.None[media.Kind]()

		// keep the visible list in the new language, genre listings would jump to Home
		if b.browse.GenreID() == 0 {
			cmds = append(cmds, b.search(b.browse.Query(), b.browse.Filter()))
		}
	}

	return tea.Batch(cmds...)
}

// onScreenEnter prepares a screen that has just become active.
func (b *statefulBubble) onScreenEnter(screen browse.Screen) tea.Cmd {
	switch screen {
	case browse.Genres:
		return b.loadGenres(b.browse.Filter())
	case browse.Favorites:
		b.refreshFavorites()
	case browse.Settings:
		b.refreshSettings()
	}
	return nil
}

func (b *statefulBubble) navigate(screen browse.Screen) tea.Cmd {
	b.browse.Navigate(screen)
	return b.onScreenEnter(screen)
}

func (b *statefulBubble) back() tea.Cmd {
	if !b.browse.Back() {
		return nil
	}
	return b.onScreenEnter(b.browse.Screen())
}

func (b *statefulBubble) refreshResults() {
	items := lo.Map(b.browse.Results(), func(item media.Item, _ int) list.Item {
		return &listItem{internal: item, marked: b.browse.IsFavorite(item)}
	})
	b.resultsC.SetItems(items)
}

func (b *statefulBubble) refreshFavorites() {
	items := lo.Map(b.browse.Favorites(), func(item media.Item, _ int) list.Item {
		return &listItem{internal: item}
	})
	b.favoritesC.SetItems(items)
}

func (b *statefulBubble) refreshSettings() {
	current := b.settings.Current()
	theme := lo.Ternary(current.Theme == settings.Light, b.labels.Light, b.labels.Dark)

	b.settingsC.SetItems([]list.Item{
		&listItem{internal: themeRow, title: b.labels.Theme, description: theme},
		&listItem{internal: languageRow, title: b.labels.Language, description: locale.Name(string(current.Language))},
	})
}

func (b *statefulBubble) refreshSidebar() {
	active := b.browse.Screen()
	items := lo.Map(browse.Screens, func(screen browse.Screen, _ int) list.Item {
		return &listItem{
			internal: screen,
			title:    screenIcon(screen) + " " + b.screenLabel(screen),
		}
	})
	b.sidebarC.SetItems(items)

	if _, index, ok := lo.FindIndexOf(browse.Screens, func(s browse.Screen) bool { return s == active }); ok {
		b.sidebarC.Select(index)
	}
}

// selectedItem is the media item under the cursor of a list.
func selectedItem(l list.Model) mo.Option[media.Item] {
	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		return mo.None[media.Item]()
	}
	value, ok := item.internal.(media.Item)
	return mo.TupleToOption(value, ok)
}
