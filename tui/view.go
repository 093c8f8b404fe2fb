package tui

import (
	"fmt"
	"strings"

	"github.com/cinebox-cli/cinebox/browse"
	"github.com/cinebox-cli/cinebox/constant"
	"github.com/cinebox-cli/cinebox/icon"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
)

func (b *statefulBubble) View() string {
	if b.browse.Selected().IsPresent() {
		return b.viewDetails()
	}

	var body string
	switch b.browse.Screen() {
	case browse.Genres:
		body = b.viewGenres()
	case browse.Favorites:
		body = b.viewFavorites()
	case browse.Settings:
		body = b.viewSettings()
	default:
		body = b.viewHome()
	}

	if b.browse.SidebarOpen() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, b.viewSidebar(), body)
	}

	return b.styles.padding.Render(lipgloss.JoinVertical(lipgloss.Left,
		b.viewHeader(),
		"",
		body,
		b.viewFooter(),
	))
}

func (b *statefulBubble) viewHeader() string {
	toggle := icon.Get(icon.SidebarClosed)
	if b.browse.SidebarOpen() {
		toggle = icon.Get(icon.SidebarOpen)
	}

	screen := b.browse.Screen()
	title := b.styles.title.Render(screenIcon(screen) + " " + b.screenLabel(screen))
	version := b.styles.faint.Render(fmt.Sprintf("%s v%s", constant.Cinebox, constant.Version))

	return lipgloss.JoinHorizontal(lipgloss.Center, b.styles.accent.Render(toggle), " ", title, " ", version)
}

func (b *statefulBubble) viewTabs() string {
	active := b.browse.Filter()
	tabs := lo.Map(media.Kinds, func(kind media.Kind, _ int) string {
		label := kindIcon(kind) + " " + b.filterLabel(kind)
		if kind == media.Multi {
			label = b.filterLabel(kind)
		}
		if kind == active {
			return b.styles.tabActive.Render(label)
		}
		return b.styles.tabInactive.Render(label)
	})

	return strings.Join(tabs, " ")
}

func (b *statefulBubble) viewHome() string {
	lines := []string{
		b.viewTabs(),
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok && b.focus == inputFocus {
		lines = append(lines, b.styles.suggestion.Render(fmt.Sprintf("%s %s (tab)", icon.Get(icon.Search), suggestion)))
	} else {
		lines = append(lines, "")
	}

	switch {
	case b.loading && len(b.resultsC.Items()) == 0:
		lines = append(lines, b.spinnerC.View()+" "+b.labels.Loading)
	case len(b.resultsC.Items()) == 0:
		lines = append(lines, b.styles.faint.Render(b.labels.NoResults))
	default:
		header := b.styles.faint.Render(fmt.Sprintf("%d", len(b.resultsC.Items())))
		if b.loading {
			header = b.spinnerC.View() + " " + header
		}
		lines = append(lines, header, b.styles.listPadding.Render(b.resultsC.View()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (b *statefulBubble) viewGenres() string {
	if b.loading && len(b.genresC.Items()) == 0 {
		return b.spinnerC.View() + " " + b.labels.Loading
	}
	if b.genresErr != nil {
		return b.styles.err.Render(wrap.String(b.genresErr.Error(), b.width-4))
	}
	if len(b.genresC.Items()) == 0 {
		return b.styles.faint.Render(b.labels.NoGenres)
	}
	return b.styles.listPadding.Render(b.genresC.View())
}

func (b *statefulBubble) viewFavorites() string {
	if len(b.favoritesC.Items()) == 0 {
		return b.styles.faint.Render(icon.Get(icon.StarEmpty) + " " + b.labels.NoFavorites)
	}
	return b.styles.listPadding.Render(b.favoritesC.View())
}

func (b *statefulBubble) viewSettings() string {
	return b.styles.listPadding.Render(b.settingsC.View())
}

func (b *statefulBubble) viewSidebar() string {
	return b.styles.sidebar.Width(sidebarWidth).Render(b.sidebarC.View())
}

func (b *statefulBubble) viewFooter() string {
	var lines []string

	if notification := b.notifier.View(); notification != "" {
		lines = append(lines, notification)
	} else if err := b.browse.LastError(); err != nil && b.browse.Screen() == browse.Home {
		lines = append(lines, b.styles.faint.Render(icon.Get(icon.Fail)+" "+err.Error()))
	} else {
		lines = append(lines, "")
	}

	lines = append(lines, b.helpC.View(b.keymap))
	return strings.Join(lines, "\n")
}

func (b *statefulBubble) viewDetails() string {
	box := b.styles.modal.Width(b.detailsC.Width + 4).Render(lipgloss.JoinVertical(lipgloss.Left,
		b.detailsC.View(),
		"",
		b.helpC.View(b.keymap),
	))

	return lipgloss.Place(b.width, b.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(b.palette.Backdrop),
	)
}

// refreshDetails renders the selected item into the details viewport.
func (b *statefulBubble) refreshDetails() {
	item, ok := b.browse.Selected().Get()
	if !ok {
		return
	}

	details, loaded := b.details.Get()
	if loaded {
		item = details.Item
	}

	width := b.detailsC.Width
	var sb strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(b.palette.Accent).Render(item.Title)
	if year := item.Year(); year != "" {
		title += b.styles.faint.Render(" (" + year + ")")
	}
	if b.browse.IsFavorite(item) {
		title += " " + b.styles.star.Render(icon.Get(icon.Star))
	}
	sb.WriteString(title)
	sb.WriteString("\n")

	if loaded && details.Tagline != "" {
		sb.WriteString(lipgloss.NewStyle().Italic(true).Foreground(b.palette.Subtext).Render(wordwrap.String(details.Tagline, width)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	facts := []string{kindIcon(item.Kind) + " " + b.filterLabel(item.Kind)}
	facts = append(facts, fmt.Sprintf("%s %s", b.styles.star.Render(icon.Get(icon.Star)), item.Rating()))
	if loaded {
		if details.Runtime > 0 {
			facts = append(facts, fmt.Sprintf("%s %d %s", b.labels.Runtime, details.Runtime, b.labels.Minutes))
		}
		if details.Seasons > 0 {
			facts = append(facts, fmt.Sprintf("%s %d", b.labels.Seasons, details.Seasons))
		}
		if details.Status != "" {
			facts = append(facts, details.Status)
		}
	}
	if item.ReleaseDate != "" {
		facts = append(facts, b.labels.Released+" "+item.ReleaseDate)
	}
	sb.WriteString(wordwrap.String(strings.Join(facts, " • "), width))
	sb.WriteString("\n")

	if loaded && len(details.Genres) > 0 {
		sb.WriteString(b.styles.accent.Render(wordwrap.String(strings.Join(details.Genres, ", "), width)))
		sb.WriteString("\n")
	}

	if item.Overview != "" {
		sb.WriteString("\n")
		sb.WriteString(wrap.String(wordwrap.String(item.Overview, width), width))
		sb.WriteString("\n")
	}

	switch {
	case b.detailsLoad:
		sb.WriteString("\n" + b.labels.Loading + "…\n")
	case b.detailsErr != nil:
		sb.WriteString("\n" + b.styles.err.Render(wrap.String(b.detailsErr.Error(), width)) + "\n")
	case loaded:
		if len(details.Cast) > 0 {
			names := lo.Map(details.Cast, func(member media.CastMember, _ int) string {
				if member.Character == "" {
					return member.Name
				}
				return fmt.Sprintf("%s (%s)", member.Name, member.Character)
			})
			sb.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render(b.labels.Cast) + "\n")
			sb.WriteString(wordwrap.String(strings.Join(names, ", "), width))
			sb.WriteString("\n")
		}

		trailer := b.styles.faint.Render(icon.Get(icon.Fail))
		if details.TrailerKey != "" {
			trailer = b.styles.accent.Render(icon.Get(icon.Success) + " t")
		}
		sb.WriteString("\n" + b.labels.Trailer + ": " + trailer + "\n")
	}

	b.detailsC.SetContent(sb.String())
}
