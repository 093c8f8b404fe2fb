package tui

import (
	"fmt"
	"strings"

	"github.com/cinebox-cli/cinebox/browse"
	"github.com/cinebox-cli/cinebox/icon"
	"github.com/cinebox-cli/cinebox/key"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/util"
	"github.com/spf13/viper"
)

// settingRow is one line of the Settings screen.
type settingRow int

const (
	themeRow settingRow = iota
	languageRow
)

// listItem adapts the domain values shown in lists to list.DefaultItem.
type listItem struct {
	internal any
	// marked is the favorite star for media items and the current entry for screens.
	marked bool
	// title and description override the computed ones when set.
	title       string
	description string
}

func (t *listItem) Title() string {
	if t.title != "" {
		return t.title
	}

	switch e := t.internal.(type) {
	case media.Item:
		title := e.Title
		if t.marked {
			title = fmt.Sprintf("%s %s", title, icon.Get(icon.Star))
		}
		return title
	case media.Genre:
		return e.Name
	default:
		return t.FilterValue()
	}
}

func (t *listItem) Description() string {
	if t.description != "" {
		return t.description
	}

	item, ok := t.internal.(media.Item)
	if !ok {
		return ""
	}

	parts := []string{kindIcon(item.Kind)}
	if year := item.Year(); year != "" {
		parts = append(parts, year)
	}
	if item.VoteAverage > 0 {
		parts = append(parts, icon.Get(icon.Star)+" "+item.Rating())
	}
	if viper.GetBool(key.TUIShowOverview) && item.Overview != "" {
		parts = append(parts, util.Ellipsis(item.Overview, 80))
	}

	return strings.Join(parts, " • ")
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case media.Item:
		return e.Title
	case media.Genre:
		return e.Name
	case browse.Screen:
		return e.String()
	case string:
		return e
	default:
		return ""
	}
}

func kindIcon(kind media.Kind) string {
	switch kind {
	case media.TV:
		return icon.Get(icon.Series)
	case media.Anime:
		return icon.Get(icon.Anime)
	default:
		return icon.Get(icon.Movie)
	}
}

func screenIcon(screen browse.Screen) string {
	switch screen {
	case browse.Favorites:
		return icon.Get(icon.Favorites)
	case browse.Genres:
		return icon.Get(icon.Genres)
	case browse.Settings:
		return icon.Get(icon.Settings)
	default:
		return icon.Get(icon.Home)
	}
}
