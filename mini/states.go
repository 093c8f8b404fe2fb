package mini

import (
	"fmt"
	"strings"

	"github.com/cinebox-cli/cinebox/color"
	"github.com/cinebox-cli/cinebox/history"
	"github.com/cinebox-cli/cinebox/icon"
	"github.com/cinebox-cli/cinebox/log"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/query"
	"github.com/cinebox-cli/cinebox/style"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type state int

const (
	kindSelectState state = iota + 1
	searchState
	resultSelectState
	detailsState
	recentSelectState
	quitState
)

var kindLabels = map[media.Kind]string{
	media.Movie: "Movies",
	media.TV:    "Series",
	media.Anime: "Anime",
	media.Multi: "Everything",
}

func (m *mini) handleKindSelectState() error {
	labels := lo.Map(media.Kinds, func(kind media.Kind, _ int) string { return kindLabels[kind] })

	b, index, err := m.menu("What to browse", labels, quit)
	if err != nil {
		return err
	}

	if b == quit {
		m.newState(quitState)
		return nil
	}

	m.kind = media.Kinds[index]
	m.newState(searchState)
	return nil
}

func (m *mini) handleSearchState() error {
	m.title(fmt.Sprintf("Search %s", kindLabels[m.kind]))

	in, err := m.prompt.Input("Query (empty for trending)")
	if err != nil {
		return err
	}

	erase := progress("Searching...")
	err = m.browse.Search(m.ctx, in, m.kind)
	erase()
	if err != nil {
		return err
	}

	if fetchErr := m.browse.LastError(); fetchErr != nil {
		m.fail(fetchErr.Error())
	}

	if len(m.browse.Results()) == 0 {
		m.fail("No results")
		return nil
	}

	if strings.TrimSpace(in) != "" {
		if err := query.Remember(in, 1); err != nil {
			log.Warnf("remember query: %s", err)
		}
	}

	m.newState(resultSelectState)
	return nil
}

func (m *mini) handleResultSelectState() error {
	results := m.browse.Results()
	labels := lo.Map(results, func(item media.Item, _ int) string { return m.itemLabel(item) })

	b, index, err := m.menu("Results", labels, search, back, quit)
	if err != nil {
		return err
	}

	switch b {
	case search:
		m.newState(searchState)
	case back:
		m.previousState()
	case quit:
		m.newState(quitState)
	default:
		m.selectItem(results[index])
	}

	return nil
}

func (m *mini) handleRecentSelectState() error {
	recent, err := history.Recent()
	if err != nil {
		return err
	}

	if len(recent) == 0 {
		m.fail("Nothing viewed yet")
		m.setState(searchState)
		return nil
	}

	labels := lo.Map(recent, func(v *history.Viewed, _ int) string { return m.itemLabel(v.Item) })

	b, index, err := m.menu("Recently viewed", labels, search, quit)
	if err != nil {
		return err
	}

	switch b {
	case search:
		m.newState(searchState)
	case quit:
		m.newState(quitState)
	default:
		m.selectItem(recent[index].Item)
	}

	return nil
}

func (m *mini) selectItem(item media.Item) {
	m.selected = item
	m.details = mo.None[media.Details]()
	m.newState(detailsState)
}

func (m *mini) handleDetailsState() error {
	details, ok := m.details.Get()
	if !ok {
		erase := progress("Loading details...")
		fetched, err := m.catalog.Details(m.ctx, m.selected)
		erase()

		if err != nil {
			m.fail(err.Error())
			fetched = media.Details{Item: m.selected}
		}

		details = fetched
		m.details = mo.Some(details)

		if err := history.Save(m.selected); err != nil {
			log.Warnf("save history: %s", err)
		}
	}

	m.printDetails(details)

	binds := []*bind{lo.Ternary(m.browse.IsFavorite(m.selected), removeFav, addFav), openPage}
	if details.TrailerURL() != "" {
		binds = append(binds, trailer)
	}
	binds = append(binds, back, search, quit)

	b, _, err := m.menu("Action", nil, binds...)
	if err != nil {
		return err
	}

	switch b {
	case addFav, removeFav:
		if m.browse.ToggleFavorite(m.selected) {
			m.success("Added to favorites")
		} else {
			m.success("Removed from favorites")
		}
	case openPage:
		if err := m.openURL(m.selected.PageURL()); err != nil {
			m.fail(err.Error())
		}
	case trailer:
		if err := m.openURL(details.TrailerURL()); err != nil {
			m.fail(err.Error())
		}
	case back:
		m.previousState()
	case search:
		m.newState(searchState)
	case quit:
		m.newState(quitState)
	}

	return nil
}

func (m *mini) itemLabel(item media.Item) string {
	label := item.Title
	if year := item.Year(); year != "" {
		label += " (" + year + ")"
	}
	if m.browse.IsFavorite(item) {
		label += " " + icon.Get(icon.Star)
	}
	return label
}

func (m *mini) printDetails(details media.Details) {
	var b strings.Builder

	b.WriteString(style.Bold(m.itemLabel(details.Item)))
	b.WriteString("\n")
	if details.Tagline != "" {
		b.WriteString(style.Italic(details.Tagline) + "\n")
	}

	facts := []string{details.Kind.String(), icon.Get(icon.Star) + " " + details.Rating()}
	if details.Runtime > 0 {
		facts = append(facts, fmt.Sprintf("%d min", details.Runtime))
	}
	if details.Seasons > 0 {
		facts = append(facts, fmt.Sprintf("%d seasons", details.Seasons))
	}
	if details.Status != "" {
		facts = append(facts, details.Status)
	}
	b.WriteString(style.Faint(strings.Join(facts, " • ")) + "\n")

	if len(details.Genres) > 0 {
		b.WriteString(style.Fg(color.Yellow)(strings.Join(details.Genres, ", ")) + "\n")
	}

	if details.Overview != "" {
		b.WriteString("\n" + wordwrap.String(details.Overview, truncateAt) + "\n")
	}

	if len(details.Cast) > 0 {
		names := lo.Map(details.Cast, func(member media.CastMember, _ int) string { return member.Name })
		b.WriteString("\n" + style.Faint("Cast: ") + wordwrap.String(strings.Join(names, ", "), truncateAt) + "\n")
	}

	fmt.Fprintln(m.out, b.String())
}
