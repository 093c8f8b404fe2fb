package media

import (
	"fmt"
	"strconv"
	"strings"
)

// Item is a single movie, series or anime summary.
type Item struct {
	ID          int     `json:"id" jsonschema:"description=TMDB identifier"`
	Title       string  `json:"title"`
	Kind        Kind    `json:"kind" jsonschema:"type=string,enum=movie,enum=tv,enum=anime"`
	PosterPath  string  `json:"poster_path,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty" jsonschema:"description=YYYY-MM-DD"`
	GenreIDs    []int   `json:"genre_ids,omitempty"`
	VoteAverage float64 `json:"vote_average"`
}

// Key identifies the title across kinds. TMDB numbers movies and series
// separately, so the id alone is ambiguous. Anime shares the tv key.
func (i Item) Key() string {
	return i.Kind.Endpoint() + "/" + strconv.Itoa(i.ID)
}

// ParseKey normalizes a key written as kind/id, such as "movie/603" or "anime/1429".
func ParseKey(s string) (string, error) {
	kindName, rawID, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return "", fmt.Errorf("invalid key %q, expected kind/id such as movie/603", s)
	}

	kind, err := ParseKind(kindName)
	if err != nil || kind == Multi {
		return "", fmt.Errorf("invalid kind in key %q", s)
	}

	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return "", fmt.Errorf("invalid id in key %q", s)
	}

	return Item{ID: id, Kind: kind}.Key(), nil
}

// Year extracts the year of ReleaseDate, or an empty string.
func (i Item) Year() string {
	year, _, _ := strings.Cut(i.ReleaseDate, "-")
	if len(year) != 4 {
		return ""
	}
	return year
}

// PosterURL joins the poster path with an image base such as https://image.tmdb.org/t/p.
func (i Item) PosterURL(base string) string {
	if i.PosterPath == "" {
		return ""
	}
	return strings.TrimSuffix(base, "/") + "/w500" + i.PosterPath
}

// PageURL is the item's public page on themoviedb.org.
func (i Item) PageURL() string {
	return "https://www.themoviedb.org/" + i.Kind.Endpoint() + "/" + strconv.Itoa(i.ID)
}

// Rating formats VoteAverage with one decimal, or "-" when unrated.
func (i Item) Rating() string {
	if i.VoteAverage <= 0 {
		return "-"
	}
	return strconv.FormatFloat(i.VoteAverage, 'f', 1, 64)
}

// Genre is a TMDB genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is a credited actor.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character,omitempty"`
}

// Details extends an Item with the fields shown in the details view.
type Details struct {
	Item
	Tagline    string       `json:"tagline,omitempty"`
	Status     string       `json:"status,omitempty"`
	Runtime    int          `json:"runtime,omitempty"`
	Seasons    int          `json:"seasons,omitempty"`
	Episodes   int          `json:"episodes,omitempty"`
	Genres     []string     `json:"genres,omitempty"`
	Cast       []CastMember `json:"cast,omitempty"`
	TrailerKey string       `json:"trailer_key,omitempty"`
	Homepage   string       `json:"homepage,omitempty"`
}

// TrailerURL is the YouTube link for the trailer, if one was found.
func (d Details) TrailerURL() string {
	if d.TrailerKey == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + d.TrailerKey
}
