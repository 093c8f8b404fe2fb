package tui

import (
	"strings"

	"github.com/cinebox-cli/cinebox/browse"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/query"
	"github.com/cinebox-cli/cinebox/settings"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	notifyCmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, notifyCmd
	case spinner.TickMsg:
		if !b.loading && !b.detailsLoad {
			return b, notifyCmd
		}
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, tea.Batch(notifyCmd, cmd)
	case debounceMsg:
		return b, tea.Batch(notifyCmd, b.handleDebounce(msg))
	case resultsMsg:
		return b, tea.Batch(notifyCmd, b.handleResults(msg))
	case genresMsg:
		return b, tea.Batch(notifyCmd, b.handleGenres(msg))
	case detailsMsg:
		return b, tea.Batch(notifyCmd, b.handleDetails(msg))
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	current := b.current()
	b.keymap.setState(current)

	var cmd tea.Cmd
	switch current {
	case homeInputState:
		cmd = b.updateHomeInput(msg)
	case homeListState:
		cmd = b.updateHomeList(msg)
	case genresState:
		cmd = b.updateGenres(msg)
	case favoritesState:
		cmd = b.updateFavorites(msg)
	case settingsState:
		cmd = b.updateSettings(msg)
	case sidebarState:
		cmd = b.updateSidebar(msg)
	case detailsState:
		cmd = b.updateDetails(msg)
	}

	b.keymap.setState(b.current())
	return b, tea.Batch(notifyCmd, cmd)
}

// updateScreenKeys handles the keys shared by every screen that is not typing.
func (b *statefulBubble) updateScreenKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case bubblesKey.Matches(msg, b.keymap.quit):
		return tea.Quit, true
	case bubblesKey.Matches(msg, b.keymap.toggleSidebar):
		b.browse.ToggleSidebar()
		b.refreshSidebar()
		return nil, true
	case bubblesKey.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
		return nil, true
	}
	return nil, false
}

func (b *statefulBubble) updateHomeInput(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.acceptSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.inputC.CursorEnd()
			b.searchSuggestion = mo.None[string]()
			return b.debounce()
		case bubblesKey.Matches(msg, b.keymap.toggleSidebar):
			b.browse.ToggleSidebar()
			b.refreshSidebar()
			return nil
		case bubblesKey.Matches(msg, b.keymap.submit):
			value := b.inputC.Value()
			// a pending debounce for the same text is now redundant
			b.inputSeq++
			b.setFocus(listFocus)
			if strings.TrimSpace(value) == "" {
				return b.search("", b.browse.Filter())
			}
			return tea.Batch(b.remember(value), b.search(value, b.browse.Filter()))
		case bubblesKey.Matches(msg, b.keymap.cycleFilter):
			return b.cycleFilter(1)
		case bubblesKey.Matches(msg, b.keymap.back), msg.Type == tea.KeyDown:
			b.setFocus(listFocus)
			return nil
		}
	}

	before := b.inputC.Value()

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)

	value := b.inputC.Value()
	if value == before {
		return cmd
	}

	if suggestion, ok := query.Suggest(value).Get(); ok {
		b.searchSuggestion = mo.Some(suggestion)
	} else {
		b.searchSuggestion = mo.None[string]()
	}

	return tea.Batch(cmd, b.debounce())
}

func (b *statefulBubble) updateHomeList(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if cmd, handled := b.updateScreenKeys(msg); handled {
			return cmd
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.focusSearch), bubblesKey.Matches(msg, b.keymap.back):
			b.setFocus(inputFocus)
			return nil
		case msg.Type == tea.KeyUp && b.resultsC.Index() == 0:
			b.setFocus(inputFocus)
			return nil
		case bubblesKey.Matches(msg, b.keymap.cycleFilter), bubblesKey.Matches(msg, b.keymap.nextFilter):
			return b.cycleFilter(1)
		case bubblesKey.Matches(msg, b.keymap.prevFilter):
			return b.cycleFilter(-1)
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := selectedItem(b.resultsC).Get(); ok {
				return b.openDetails(item)
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.favorite):
			if item, ok := selectedItem(b.resultsC).Get(); ok {
				return b.toggleFavorite(item)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	b.resultsC, cmd = b.resultsC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateGenres(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if cmd, handled := b.updateScreenKeys(msg); handled {
			return cmd
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			return b.back()
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.genresC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}
			if genre, ok := item.internal.(media.Genre); ok {
				return b.selectGenre(genre.ID)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	b.genresC, cmd = b.genresC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateFavorites(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if cmd, handled := b.updateScreenKeys(msg); handled {
			return cmd
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			return b.back()
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := selectedItem(b.favoritesC).Get(); ok {
				return b.openDetails(item)
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.favorite):
			if item, ok := selectedItem(b.favoritesC).Get(); ok {
				return b.toggleFavorite(item)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	b.favoritesC, cmd = b.favoritesC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateSettings(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if cmd, handled := b.updateScreenKeys(msg); handled {
			return cmd
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			return b.back()
		case bubblesKey.Matches(msg, b.keymap.confirm), msg.Type == tea.KeySpace:
			item, ok := b.settingsC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}

			index := b.settingsC.Index()
			var cmd tea.Cmd
			switch item.internal {
			case themeRow:
				cmd = b.changeSettings(func(s *settings.Settings) { s.Theme = s.Theme.Toggle() })
			case languageRow:
				cmd = b.changeSettings(func(s *settings.Settings) { s.Language = s.Language.Next() })
			}
			b.settingsC.Select(index)
			return cmd
		}
	}

	var cmd tea.Cmd
	b.settingsC, cmd = b.settingsC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateSidebar(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back), bubblesKey.Matches(msg, b.keymap.toggleSidebar):
			b.browse.CloseSidebar()
			return nil
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.sidebarC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}
			if screen, ok := item.internal.(browse.Screen); ok {
				return b.navigate(screen)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	b.sidebarC, cmd = b.sidebarC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateDetails(msg tea.Msg) tea.Cmd {
	selected, ok := b.browse.Selected().Get()
	if !ok {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.closeDetails()
			return nil
		case bubblesKey.Matches(msg, b.keymap.favorite):
			return b.toggleFavorite(selected)
		case bubblesKey.Matches(msg, b.keymap.openPage):
			return b.openURL(selected.PageURL())
		case bubblesKey.Matches(msg, b.keymap.openTrailer):
			if details, ok := b.details.Get(); ok && details.TrailerURL() != "" {
				return b.openURL(details.TrailerURL())
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		}
	}

	var cmd tea.Cmd
	b.detailsC, cmd = b.detailsC.Update(msg)
	return cmd
}
