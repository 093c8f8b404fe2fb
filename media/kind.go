// Package media holds the normalized records produced by the metadata client.
package media

import (
	"fmt"
	"strings"
)

// Kind is the media type filter used by searches and listings.
type Kind int

const (
	Movie Kind = iota
	TV
	Anime
	Multi
)

// Kinds lists every kind in filter order.
var Kinds = []Kind{Movie, TV, Anime, Multi}

func (k Kind) String() string {
	switch k {
	case Movie:
		return "movie"
	case TV:
		return "tv"
	case Anime:
		return "anime"
	case Multi:
		return "multi"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind accepts the names returned by String plus a few aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies", "film":
		return Movie, nil
	case "tv", "series", "show":
		return TV, nil
	case "anime":
		return Anime, nil
	case "multi", "all", "":
		return Multi, nil
	default:
		return Movie, fmt.Errorf("unknown media kind: %q", s)
	}
}

// Endpoint is the TMDB path segment backing this kind. Anime lives under tv.
func (k Kind) Endpoint() string {
	switch k {
	case TV, Anime:
		return "tv"
	case Multi:
		return "multi"
	default:
		return "movie"
	}
}

// MarshalText lets Kind travel as a string in JSON output and caches.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
