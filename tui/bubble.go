package tui

import (
	"context"
	"time"

	"github.com/cinebox-cli/cinebox/browse"
	"github.com/cinebox-cli/cinebox/internal/ui"
	"github.com/cinebox-cli/cinebox/key"
	"github.com/cinebox-cli/cinebox/locale"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/settings"
	"github.com/cinebox-cli/cinebox/style"
	"github.com/cinebox-cli/cinebox/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type statefulBubble struct {
	ctx      context.Context
	options  *Options
	browse   *browse.State
	catalog  Catalog
	settings *settings.Holder

	keymap *statefulKeymap
	focus  focus

	// components
	spinnerC   spinner.Model
	inputC     textinput.Model
	resultsC   list.Model
	genresC    list.Model
	favoritesC list.Model
	settingsC  list.Model
	sidebarC   list.Model
	detailsC   viewport.Model
	helpC      help.Model

	// inputSeq identifies the latest keystroke so older debounce ticks are ignored.
	inputSeq         int
	searchSuggestion mo.Option[string]

	loading     bool
	genresKind  mo.Option[media.Kind]
	genresErr   error
	details     mo.Option[media.Details]
	detailsErr  error
	detailsLoad bool

	labels  locale.Labels
	palette style.Palette
	styles  styles

	width, height int
	notifier      *ui.Notifier
}

// styles are derived from the palette and rebuilt when the theme changes.
type styles struct {
	title, faint, accent, err, star lipgloss.Style
	tabActive, tabInactive         lipgloss.Style
	sidebar, modal, suggestion     lipgloss.Style
	padding, listPadding           lipgloss.Style
}

func newStyles(p style.Palette) styles {
	return styles{
		title:       lipgloss.NewStyle().Foreground(p.Background).Background(p.Accent).Bold(true).Padding(0, 1),
		faint:       lipgloss.NewStyle().Foreground(p.Faint),
		accent:      lipgloss.NewStyle().Foreground(p.Accent),
		err:         lipgloss.NewStyle().Foreground(p.Error),
		star:        lipgloss.NewStyle().Foreground(p.Star),
		tabActive:   lipgloss.NewStyle().Foreground(p.Background).Background(p.Accent).Padding(0, 1),
		tabInactive: lipgloss.NewStyle().Foreground(p.Subtext).Background(p.Surface).Padding(0, 1),
		sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(p.Accent).
			Padding(1, 1),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Foreground(p.Text).
			Padding(1, 2),
		suggestion:  lipgloss.NewStyle().Foreground(p.Faint).Italic(true),
		padding:     lipgloss.NewStyle().Padding(1, 2),
		listPadding: lipgloss.NewStyle().Padding(0, 2, 0, 0),
	}
}

const sidebarWidth = 24

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	current := options.Settings.Current()
	catalog := options.CatalogFor(string(current.Language))

	bubble := &statefulBubble{
		ctx:      ctx,
		options:  options,
		catalog:  catalog,
		settings: options.Settings,
		keymap:   newStatefulKeymap(),
		browse: browse.New(browse.Options{
			Catalog: catalog,
			Store:   options.Store,
			Kind:    options.Kind,
		}),
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot

	bubble.inputC = textinput.New()
	bubble.inputC.CharLimit = 80
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)
	bubble.inputC.Focus()

	bubble.resultsC = bubble.makeList(true)
	bubble.resultsC.SetShowTitle(false)
	bubble.genresC = bubble.makeList(false)
	bubble.favoritesC = bubble.makeList(true)
	bubble.settingsC = bubble.makeList(true)
	bubble.sidebarC = bubble.makeList(false)
	bubble.sidebarC.SetShowTitle(false)
	bubble.sidebarC.SetShowPagination(false)

	bubble.detailsC = viewport.New(0, 0)
	bubble.notifier = ui.NewNotifier(3*time.Second, lipgloss.NewStyle(), lipgloss.NewStyle())

	bubble.applySettings(current)
	bubble.refreshFavorites()

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return bubble
}

func (b *statefulBubble) makeList(description bool) list.Model {
	listC := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	listC.KeyMap = b.keymap.forList()
	listC.SetShowStatusBar(false)
	listC.SetFilteringEnabled(false)
	listC.SetShowPagination(true)
	listC.DisableQuitKeybindings()
	// help is rendered once in the footer for every screen
	listC.SetShowHelp(false)

	delegate := b.newDelegate(description)
	listC.SetDelegate(delegate)
	return listC
}

func (b *statefulBubble) newDelegate(description bool) list.DefaultDelegate {
	p := b.palette
	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.ShowDescription = description
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Accent).
		Foreground(p.Accent).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Foreground(p.Secondary)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(p.Text)
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.Foreground(p.Faint)
	return delegate
}

// applySettings rebuilds everything derived from theme and language.
func (b *statefulBubble) applySettings(current settings.Settings) {
	b.palette = style.For(string(current.Theme))
	b.styles = newStyles(b.palette)
	b.labels = locale.For(string(current.Language))

	b.spinnerC.Style = b.styles.accent
	b.inputC.Placeholder = b.labels.SearchPlaceholder
	b.inputC.PromptStyle = b.styles.accent
	b.inputC.TextStyle = lipgloss.NewStyle().Foreground(b.palette.Text)
	b.notifier.SetStyles(b.styles.accent, b.styles.err)

	for _, pair := range []lo.Tuple2[*list.Model, bool]{
		{A: &b.resultsC, B: true},
		{A: &b.genresC, B: false},
		{A: &b.favoritesC, B: true},
		{A: &b.settingsC, B: true},
		{A: &b.sidebarC, B: false},
	} {
		pair.A.SetDelegate(b.newDelegate(pair.B))
		pair.A.Styles.Title = b.styles.title
		pair.A.Styles.NoItems = b.styles.faint.Padding(0, 2)
	}

	b.genresC.Title = b.labels.Genres
	b.favoritesC.Title = b.labels.Favorites
	b.settingsC.Title = b.labels.Settings

	b.refreshSettings()
	b.refreshSidebar()
	b.refreshResults()
}

func (b *statefulBubble) resize(width, height int) {
	b.width = width
	b.height = height

	x, y := b.styles.padding.GetFrameSize()
	listWidth := width - x
	// header, tabs, input, suggestion and footer lines around the results
	homeHeight := height - y - 6
	screenHeight := height - y - 3

	b.resultsC.SetSize(listWidth, homeHeight)
	b.genresC.SetSize(listWidth, screenHeight)
	b.favoritesC.SetSize(listWidth, screenHeight)
	b.settingsC.SetSize(listWidth, screenHeight)
	b.sidebarC.SetSize(sidebarWidth-4, screenHeight)
	b.inputC.Width = listWidth - lipgloss.Width(b.inputC.Prompt) - 1

	modalWidth := util.Min(width-8, 80)
	b.detailsC.Width = util.Max(modalWidth-6, 10)
	b.detailsC.Height = util.Max(height-10, 5)
	b.helpC.Width = listWidth

	b.refreshDetails()
}

// current derives which part of the interface receives input.
func (b *statefulBubble) current() state {
	switch {
	case b.browse.Selected().IsPresent():
		return detailsState
	case b.browse.SidebarOpen():
		return sidebarState
	}

	switch b.browse.Screen() {
	case browse.Genres:
		return genresState
	case browse.Favorites:
		return favoritesState
	case browse.Settings:
		return settingsState
	default:
		if b.focus == inputFocus {
			return homeInputState
		}
		return homeListState
	}
}

func (b *statefulBubble) setFocus(f focus) {
	b.focus = f
	if f == inputFocus {
		b.inputC.Focus()
	} else {
		b.inputC.Blur()
		b.searchSuggestion = mo.None[string]()
	}
}

func (b *statefulBubble) filterLabel(kind media.Kind) string {
	switch kind {
	case media.Movie:
		return b.labels.Movies
	case media.TV:
		return b.labels.Series
	case media.Anime:
		return b.labels.Anime
	default:
		return b.labels.All
	}
}

func (b *statefulBubble) screenLabel(screen browse.Screen) string {
	switch screen {
	case browse.Genres:
		return b.labels.Genres
	case browse.Favorites:
		return b.labels.Favorites
	case browse.Settings:
		return b.labels.Settings
	default:
		return b.labels.Home
	}
}
