// Package key defines the configuration identifiers shared by viper, the CLI flags and the settings store.
package key

// TMDB metadata API.
const (
	TMDBAPIKey       = "tmdb.api_key"
	TMDBBaseURL      = "tmdb.base_url"
	TMDBImageBaseURL = "tmdb.image_base_url"
	TMDBIncludeAdult = "tmdb.include_adult"
	TMDBResultLimit  = "tmdb.result_limit"
	TMDBTimeout      = "tmdb.timeout"
)

// User facing settings, edited from the Settings screen.
const (
	SettingsTheme    = "settings.theme"
	SettingsLanguage = "settings.language"
	SettingsPersist  = "settings.persist"
)

// Favorites.
const (
	FavoritesPersist = "favorites.persist"
)

// Search bar behaviour.
const (
	SearchDefaultKind          = "search.default_kind"
	SearchDebounceMs           = "search.debounce_ms"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Response caching.
const (
	CacheEnable = "cache.enable"
)

// Terminal user interface.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowOverview       = "tui.show_overview"
)

const (
	IconsVariant = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI execution environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
