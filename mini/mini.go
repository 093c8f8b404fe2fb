// Package mini is a prompt driven alternative to the full screen interface,
// for terminals where the latter does not fit.
package mini

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/cinebox-cli/cinebox/browse"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/open"
	"github.com/cinebox-cli/cinebox/util"
	"github.com/samber/mo"
)

var truncateAt = 80

// Catalog is what the prompts fetch from.
type Catalog interface {
	browse.Catalog
	Details(ctx context.Context, item media.Item) (media.Details, error)
}

type Options struct {
	Catalog Catalog
	// Store persists favorites; nil keeps them for the session only.
	Store browse.FavoritesStore
	Kind  media.Kind
	// AskKind asks what to browse first instead of using Kind.
	AskKind bool
	// Recent starts from the recently viewed titles.
	Recent bool
	Out    io.Writer

	prompt prompter
}

type mini struct {
	ctx     context.Context
	out     io.Writer
	prompt  prompter
	catalog Catalog
	browse  *browse.State
	openURL func(string) error

	state         state
	statesHistory util.Stack[state]

	kind     media.Kind
	selected media.Item
	details  mo.Option[media.Details]
}

func newMini(ctx context.Context, options *Options) *mini {
	m := &mini{
		ctx:     ctx,
		out:     options.Out,
		prompt:  options.prompt,
		catalog: options.Catalog,
		openURL: open.Start,
		kind:    options.Kind,
		browse: browse.New(browse.Options{
			Catalog: options.Catalog,
			Store:   options.Store,
			Kind:    options.Kind,
		}),
	}

	if m.out == nil {
		m.out = os.Stdout
	}
	if m.prompt == nil {
		m.prompt = surveyPrompter{}
	}

	return m
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	// the details screen is left for good once a new search starts
	if s == searchState && m.state == detailsState {
		m.statesHistory.Clear()
	} else if m.state != 0 {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

// Run loops over the prompts until the user quits. An interrupt quits too.
func Run(ctx context.Context, options *Options) error {
	m := newMini(ctx, options)

	switch {
	case options.Recent:
		m.newState(recentSelectState)
	case options.AskKind:
		m.newState(kindSelectState)
	default:
		m.newState(searchState)
	}

	if w, _, err := util.TerminalSize(); err == nil && w > 20 {
		truncateAt = w
	}

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case kindSelectState:
		return m.handleKindSelectState()
	case searchState:
		return m.handleSearchState()
	case resultSelectState:
		return m.handleResultSelectState()
	case detailsState:
		return m.handleDetailsState()
	case recentSelectState:
		return m.handleRecentSelectState()
	}

	return nil
}
