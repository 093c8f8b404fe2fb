// Package ui holds small Bubble Tea components shared by the screens.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Notifier shows one short-lived message at a time.
type Notifier struct {
	text  string
	isErr bool
	// seq makes a pending clear from an older message a no-op.
	seq      int
	lifetime time.Duration
	style    lipgloss.Style
	errStyle lipgloss.Style
}

type notifyMsg struct {
	text  string
	isErr bool
}

type clearMsg struct {
	seq int
}

// NewNotifier renders messages with style and errors with errStyle.
func NewNotifier(lifetime time.Duration, style, errStyle lipgloss.Style) *Notifier {
	return &Notifier{lifetime: lifetime, style: style, errStyle: errStyle}
}

// Notify returns a command showing text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return notifyMsg{text: text}
	}
}

// NotifyError returns a command showing text as an error.
func NotifyError(text string) tea.Cmd {
	return func() tea.Msg {
		return notifyMsg{text: text, isErr: true}
	}
}

// SetStyles swaps the styles, used when the theme changes.
func (n *Notifier) SetStyles(style, errStyle lipgloss.Style) {
	n.style, n.errStyle = style, errStyle
}

// Update handles the notifier's own messages and ignores the rest.
func (n *Notifier) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case notifyMsg:
		n.seq++
		n.text, n.isErr = msg.text, msg.isErr
		seq := n.seq
		return tea.Tick(n.lifetime, func(time.Time) tea.Msg {
			return clearMsg{seq: seq}
		})
	case clearMsg:
		if msg.seq == n.seq {
			n.text = ""
		}
	}
	return nil
}

// Text is the message currently shown, empty when there is none.
func (n *Notifier) Text() string {
	return n.text
}

// View renders the current message, or nothing.
func (n *Notifier) View() string {
	if n.text == "" {
		return ""
	}
	if n.isErr {
		return n.errStyle.Render(n.text)
	}
	return n.style.Render(n.text)
}
