package style

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme renders with.
type Palette struct {
	Name       string
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Subtext    lipgloss.Color
	Faint      lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Star       lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	// Backdrop dims the content behind an open overlay.
	Backdrop lipgloss.Color
}

// Dark mirrors the original app's #333 background with a mauve accent.
var Dark = Palette{
	Name:       "dark",
	Background: lipgloss.Color("#333333"),
	Surface:    lipgloss.Color("#444444"),
	Text:       lipgloss.Color("#ffffff"),
	Subtext:    lipgloss.Color("#cccccc"),
	Faint:      lipgloss.Color("#888888"),
	Accent:     lipgloss.Color("#cba6f7"),
	Secondary:  lipgloss.Color("#b4befe"),
	Star:       lipgloss.Color("#f9e2af"),
	Success:    lipgloss.Color("#a6e3a1"),
	Error:      lipgloss.Color("#f38ba8"),
	Backdrop:   lipgloss.Color("#1e1e1e"),
}

// Light is the white theme with the original's #007BFF active filter color.
var Light = Palette{
	Name:       "light",
	Background: lipgloss.Color("#ffffff"),
	Surface:    lipgloss.Color("#f0f0f0"),
	Text:       lipgloss.Color("#000000"),
	Subtext:    lipgloss.Color("#333333"),
	Faint:      lipgloss.Color("#888888"),
	Accent:     lipgloss.Color("#007bff"),
	Secondary:  lipgloss.Color("#5a4fcf"),
	Star:       lipgloss.Color("#d08700"),
	Success:    lipgloss.Color("#2e7d32"),
	Error:      lipgloss.Color("#c62828"),
	Backdrop:   lipgloss.Color("#cccccc"),
}

// For returns the palette registered under name, falling back to Dark.
func For(name string) Palette {
	if name == Light.Name {
		return Light
	}
	return Dark
}

// Semantic colors for CLI output, which is not themed.
var (
	AccentColor = Dark.Accent
	FaintColor  = Dark.Faint
	HiRed       = Dark.Error
	Text        = lipgloss.Color("#cdd6f4")
)
