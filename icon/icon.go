// Package icon renders UI symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/cinebox-cli/cinebox/key"
	"github.com/spf13/viper"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants lists the supported icon styles.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Home Icon = iota
	Favorites
	Genres
	Settings
	Star
	StarEmpty
	Search
	Movie
	Series
	Anime
	SidebarOpen
	SidebarClosed
	Success
	Fail
	Progress
)

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

func (d iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

var icons = map[Icon]iconDef{
	Home:          {emoji: "🏠", nerd: "", plain: "~"},
	Favorites:     {emoji: "⭐", nerd: "", plain: "*"},
	Genres:        {emoji: "🎭", nerd: "", plain: "#"},
	Settings:      {emoji: "⚙", nerd: "", plain: "="},
	Star:          {emoji: "★", nerd: "", plain: "*"},
	StarEmpty:     {emoji: "☆", nerd: "", plain: "."},
	Search:        {emoji: "🔍", nerd: "", plain: "?"},
	Movie:         {emoji: "🎬", nerd: "", plain: "M"},
	Series:        {emoji: "📺", nerd: "", plain: "S"},
	Anime:         {emoji: "🍥", nerd: "", plain: "A"},
	SidebarOpen:   {emoji: "⇽", nerd: "", plain: "<"},
	SidebarClosed: {emoji: "⇾", nerd: "", plain: ">"},
	Success:       {emoji: "✅", nerd: "", plain: "+"},
	Fail:          {emoji: "❌", nerd: "", plain: "x"},
	Progress:      {emoji: "⏳", nerd: "", plain: "..."},
}

// Get returns the symbol for i in the configured variant.
func Get(i Icon) string {
	return icons[i].get()
}
