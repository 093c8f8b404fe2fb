// Package locale holds the translated interface labels.
package locale

// Labels is the set of strings shown by the interface.
type Labels struct {
	SearchPlaceholder string
	Movies            string
	Series            string
	Anime             string
	All               string

	Home      string
	Favorites string
	Genres    string
	Settings  string

	Theme    string
	Dark     string
	Light    string
	Language string

	Loading     string
	NoResults   string
	NoFavorites string
	NoGenres    string

	Rating   string
	Released string
	Runtime  string
	Seasons  string
	Cast     string
	Trailer  string
	Status   string
	Minutes  string

	Added   string
	Removed string
}

var english = Labels{
	SearchPlaceholder: "Search movies, series or anime",
	Movies:            "Movies",
	Series:            "Series",
	Anime:             "Anime",
	All:               "All",
	Home:              "Home",
	Favorites:         "Favorites",
	Genres:            "Genres",
	Settings:          "Settings",
	Theme:             "Theme",
	Dark:              "Dark",
	Light:             "Light",
	Language:          "Language",
	Loading:           "Loading",
	NoResults:         "No results",
	NoFavorites:       "No favorites yet",
	NoGenres:          "No genres",
	Rating:            "Rating",
	Released:          "Released",
	Runtime:           "Runtime",
	Seasons:           "Seasons",
	Cast:              "Cast",
	Trailer:           "Trailer",
	Status:            "Status",
	Minutes:           "min",
	Added:             "Added to favorites",
	Removed:           "Removed from favorites",
}

var portuguese = Labels{
	SearchPlaceholder: "Pesquisar filmes, séries ou animes",
	Movies:            "Filmes",
	Series:            "Séries",
	Anime:             "Animes",
	All:               "Todos",
	Home:              "Início",
	Favorites:         "Favoritos",
	Genres:            "Gêneros",
	Settings:          "Configurações",
	Theme:             "Tema",
	Dark:              "Escuro",
	Light:             "Claro",
	Language:          "Idioma",
	Loading:           "Carregando",
	NoResults:         "Nenhum resultado",
	NoFavorites:       "Nenhum favorito ainda",
	NoGenres:          "Nenhum gênero",
	Rating:            "Nota",
	Released:          "Lançamento",
	Runtime:           "Duração",
	Seasons:           "Temporadas",
	Cast:              "Elenco",
	Trailer:           "Trailer",
	Status:            "Situação",
	Minutes:           "min",
	Added:             "Adicionado aos favoritos",
	Removed:           "Removido dos favoritos",
}

var spanish = Labels{
	SearchPlaceholder: "Buscar películas, series o anime",
	Movies:            "Películas",
	Series:            "Series",
	Anime:             "Anime",
	All:               "Todo",
	Home:              "Inicio",
	Favorites:         "Favoritos",
	Genres:            "Géneros",
	Settings:          "Ajustes",
	Theme:             "Tema",
	Dark:              "Oscuro",
	Light:             "Claro",
	Language:          "Idioma",
	Loading:           "Cargando",
	NoResults:         "Sin resultados",
	NoFavorites:       "Aún no hay favoritos",
	NoGenres:          "Sin géneros",
	Rating:            "Puntuación",
	Released:          "Estreno",
	Runtime:           "Duración",
	Seasons:           "Temporadas",
	Cast:              "Reparto",
	Trailer:           "Tráiler",
	Status:            "Estado",
	Minutes:           "min",
	Added:             "Añadido a favoritos",
	Removed:           "Eliminado de favoritos",
}

var tables = map[string]Labels{
	"en-US": english,
	"pt-BR": portuguese,
	"es-ES": spanish,
}

// For returns the labels of a language code, English when it is unknown.
func For(language string) Labels {
	if labels, ok := tables[language]; ok {
		return labels
	}
	return english
}

// Name is the language's own name, used by the settings screen.
func Name(language string) string {
	switch language {
	case "pt-BR":
		return "Português (Brasil)"
	case "es-ES":
		return "Español"
	default:
		return "English (US)"
	}
}
