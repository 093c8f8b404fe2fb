package browse

import "fmt"

// Screen is a navigable destination.
type Screen int

const (
	Home Screen = iota
	Genres
	Favorites
	Settings
)

// Screens lists the destinations in sidebar order.
var Screens = []Screen{Home, Favorites, Genres, Settings}

func (s Screen) String() string {
	switch s {
	case Home:
		return "home"
	case Genres:
		return "genres"
	case Favorites:
		return "favorites"
	case Settings:
		return "settings"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Valid reports whether s is one of the known destinations.
func (s Screen) Valid() bool {
	return s >= Home && s <= Settings
}
