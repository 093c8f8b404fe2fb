package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init loads the trending titles of the initial filter.
func (b *statefulBubble) Init() tea.Cmd {
	b.keymap.setState(b.current())
	return tea.Batch(textinput.Blink, b.search("", b.browse.Filter()))
}
