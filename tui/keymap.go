package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

type statefulKeymap struct {
	state state

	quit, forceQuit,
	toggleSidebar,
	focusSearch, acceptSuggestion, submit,
	cycleFilter, nextFilter, prevFilter,
	confirm, favorite, openPage, openTrailer,
	back,
	up, down, left, right,
	top, bottom,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		toggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+b", "tab"),
			key.WithHelp("tab", "menu"),
		),
		focusSearch: key.NewBinding(
			key.WithKeys("/", "s"),
			key.WithHelp("/", "search"),
		),
		acceptSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		cycleFilter: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "next filter"),
		),
		nextFilter: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next filter"),
		),
		prevFilter: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous filter"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		openPage: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open page"),
		),
		openTrailer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trailer"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous page"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next page"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case homeInputState:
		return h(k.submit, k.acceptSuggestion, k.cycleFilter, withDescription(k.back, "results")),
			h(k.submit, k.acceptSuggestion, k.cycleFilter, withDescription(k.back, "results"), k.forceQuit)
	case homeListState:
		open := withDescription(k.confirm, "details")
		return h(open, k.favorite, k.focusSearch, k.toggleSidebar, k.showHelp),
			h(open, k.favorite, k.focusSearch, k.prevFilter, k.nextFilter, k.toggleSidebar, k.top, k.bottom, k.quit)
	case genresState:
		pick := withDescription(k.confirm, "list genre")
		return h(pick, k.toggleSidebar, k.back, k.showHelp), h(pick, k.toggleSidebar, k.back, k.top, k.bottom, k.quit)
	case favoritesState:
		open := withDescription(k.confirm, "details")
		unfavorite := withDescription(k.favorite, "remove")
		return h(open, unfavorite, k.toggleSidebar, k.back), h(open, unfavorite, k.toggleSidebar, k.back, k.quit)
	case settingsState:
		return to2(h(withDescription(k.confirm, "change"), k.toggleSidebar, k.back, k.quit))
	case sidebarState:
		return to2(h(withDescription(k.confirm, "go"), withDescription(k.back, "close"), k.up, k.down))
	case detailsState:
		return to2(h(k.favorite, k.openPage, k.openTrailer, withDescription(k.back, "close")))
	default:
		return to2(h(k.forceQuit))
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:      k.up,
		CursorDown:    k.down,
		NextPage:      k.right,
		PrevPage:      k.left,
		GoToStart:     k.top,
		GoToEnd:       k.bottom,
		ShowFullHelp:  k.showHelp,
		CloseFullHelp: k.showHelp,
		Quit:          k.quit,
		ForceQuit:     k.forceQuit,
	}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
