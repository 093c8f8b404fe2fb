// Package settings owns the user facing preferences: color theme and language.
//
// A single Holder is created at startup and passed to whoever needs it.
// Readers get copies through Current; the only way to change a value is Update.
package settings

import (
	"fmt"
	"sync"

	"github.com/cinebox-cli/cinebox/config"
	"github.com/cinebox-cli/cinebox/key"
	"github.com/cinebox-cli/cinebox/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

type Language string

const (
	English    Language = "en-US"
	Portuguese Language = "pt-BR"
	Spanish    Language = "es-ES"
)

// Languages lists the supported languages in cycling order.
var Languages = []Language{English, Portuguese, Spanish}

// Next cycles to the following supported language.
func (l Language) Next() Language {
	_, i, ok := lo.FindIndexOf(Languages, func(other Language) bool { return other == l })
	if !ok {
		return English
	}
	return Languages[(i+1)%len(Languages)]
}

// Settings is passed around by value.
type Settings struct {
	Theme    Theme
	Language Language
}

// Defaults mirrors the config registry defaults.
var Defaults = Settings{Theme: Dark, Language: English}

// Validate rejects themes and languages cinebox does not know.
func (s Settings) Validate() error {
	if s.Theme != Dark && s.Theme != Light {
		return fmt.Errorf("unknown theme %q", s.Theme)
	}
	if !lo.Contains(Languages, s.Language) {
		return fmt.Errorf("unsupported language %q", s.Language)
	}
	return nil
}

// Holder guards the current settings.
type Holder struct {
	mu      sync.RWMutex
	current Settings
	persist func(Settings) error
}

// NewHolder starts from initial. persist, when not nil, runs after every
// successful change.
func NewHolder(initial Settings, persist func(Settings) error) *Holder {
	return &Holder{current: initial, persist: persist}
}

// Load builds the holder from the configuration. Invalid values fall back to defaults.
func Load() *Holder {
	initial := Settings{
		Theme:    Theme(viper.GetString(key.SettingsTheme)),
		Language: Language(viper.GetString(key.SettingsLanguage)),
	}

	if initial.Theme != Dark && initial.Theme != Light {
		log.Warnf("invalid theme %q, using %q", initial.Theme, Defaults.Theme)
		initial.Theme = Defaults.Theme
	}
	if !lo.Contains(Languages, initial.Language) {
		log.Warnf("invalid language %q, using %q", initial.Language, Defaults.Language)
		initial.Language = Defaults.Language
	}

	return NewHolder(initial, persistToConfig)
}

// persistToConfig mirrors the settings into viper and writes the config file
// when settings.persist is enabled.
func persistToConfig(s Settings) error {
	viper.Set(key.SettingsTheme, string(s.Theme))
	viper.Set(key.SettingsLanguage, string(s.Language))

	if !viper.GetBool(key.SettingsPersist) {
		return nil
	}

	return config.Write()
}

// Current returns a copy of the settings.
func (h *Holder) Current() Settings {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Update applies fn to a copy and swaps it in if valid. When persisting
// fails the new value stays in effect for the session and the error is returned.
func (h *Holder) Update(fn func(*Settings)) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := h.current
	fn(&next)

	if err := next.Validate(); err != nil {
		return err
	}
	if next == h.current {
		return nil
	}

	h.current = next
	log.With(log.Fields{"theme": next.Theme, "language": next.Language}).Info("settings changed")

	if h.persist == nil {
		return nil
	}
	if err := h.persist(next); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}
