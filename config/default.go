package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/cinebox-cli/cinebox/color"
	"github.com/cinebox-cli/cinebox/constant"
	"github.com/cinebox-cli/cinebox/key"
	"github.com/cinebox-cli/cinebox/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a single registered configuration entry.
type Field struct {
	Key         string
	Value       any
	Description string
	// Options, when set, lists the only accepted string values.
	Options []string
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable that overrides this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Cinebox + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Parse converts raw CLI input into a value of the field's type and checks it against Options.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("no value given for %s", f.Key)
	}

	switch f.Value.(type) {
	case string:
		if len(f.Options) > 0 && !lo.Contains(f.Options, raw[0]) {
			return nil, fmt.Errorf("invalid value %q for %s, expected one of: %s", raw[0], f.Key, strings.Join(f.Options, ", "))
		}
		return raw[0], nil
	case int:
		v, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw[0])
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw[0])
		}
		return v, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported field type for %s", f.Key)
	}
}

// MarshalJSON includes both the current and the default value.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Options     []string `json:"options,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Options:     f.Options,
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds every registered field keyed by its config key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string, options ...string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc, Options: options}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.TMDBAPIKey, "", "TMDB API read access token (v4 bearer token).\nFalls back to the system keyring, see \"cinebox auth\"")
	register(key.TMDBBaseURL, "https://api.themoviedb.org/3", "Base URL of the TMDB API")
	register(key.TMDBImageBaseURL, "https://image.tmdb.org/t/p", "Base URL used to build poster links")
	register(key.TMDBIncludeAdult, false, "Include adult titles in search results")
	register(key.TMDBResultLimit, 20, "Maximum number of results kept from a single request")
	register(key.TMDBTimeout, 15, "Request timeout in seconds")
	register(key.SettingsTheme, "dark", "Color theme", "dark", "light")
	register(key.SettingsLanguage, "en-US", "Interface and metadata language", "en-US", "pt-BR", "es-ES")
	register(key.SettingsPersist, true, "Save changes made on the Settings screen to the config file")
	register(key.FavoritesPersist, true, "Keep favorites between sessions")
	register(key.SearchDefaultKind, "movie", "Filter selected when the app starts", "movie", "tv", "anime", "multi")
	register(key.SearchDebounceMs, 350, "Delay in milliseconds before a typed query is sent")
	register(key.SearchShowQuerySuggestions, true, "Suggest previous queries while typing")
	register(key.CacheEnable, true, "Cache API responses on disk")
	register(key.TUIItemSpacing, 1, "Spacing between list items")
	register(key.TUISearchPromptString, "> ", "Search prompt string")
	register(key.TUIShowOverview, true, "Show the overview line under list items")
	register(key.IconsVariant, "emoji", "Icons variant", "emoji", "nerd", "plain")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Log level, from least to most verbose:\npanic, fatal, error, warn, info, debug, trace", "panic", "fatal", "error", "warn", "info", "debug", "trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check for new releases when showing help or version")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"join":     strings.Join,
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}{{ if .Options }}
{{ blue "Options:" }} {{ join .Options ", " }}{{ end }}`))
