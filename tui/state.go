package tui

// state is what currently receives key presses. It is derived from the
// browse state on every update, overlays first.
type state int

const (
	homeInputState state = iota
	homeListState
	genresState
	favoritesState
	settingsState
	sidebarState
	detailsState
)

// focus is local to the Home screen: typing in the search bar or moving in the results.
type focus int

const (
	inputFocus focus = iota
	listFocus
)
