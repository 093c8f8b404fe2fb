// Package tui is the interactive terminal interface.
package tui

import (
	"context"
	"time"

	"github.com/cinebox-cli/cinebox/browse"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/settings"
	tea "github.com/charmbracelet/bubbletea"
)

// Catalog is everything the screens fetch.
type Catalog interface {
	browse.Catalog
	Genres(ctx context.Context, kind media.Kind) ([]media.Genre, error)
	Details(ctx context.Context, item media.Item) (media.Details, error)
}

type Options struct {
	// CatalogFor returns the catalog speaking a language. It is called at
	// start and whenever the language setting changes.
	CatalogFor func(language string) Catalog
	Settings   *settings.Holder
	// Store persists favorites; nil keeps them for the session only.
	Store browse.FavoritesStore
	Kind  media.Kind
	// Debounce is the pause after the last keystroke before searching.
	Debounce     time.Duration
	ImageBaseURL string
}

// Run blocks until the user quits.
func Run(ctx context.Context, options *Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bubble := newBubble(ctx, options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
