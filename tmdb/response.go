package tmdb

import (
	"sort"

	"github.com/cinebox-cli/cinebox/media"
	"github.com/samber/lo"
)

// animationGenre is TMDB's Animation genre, shared by the movie and tv lists.
const animationGenre = 16

type result struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Name             string  `json:"name"`
	MediaType        string  `json:"media_type"`
	PosterPath       string  `json:"poster_path"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	FirstAirDate     string  `json:"first_air_date"`
	GenreIDs         []int   `json:"genre_ids"`
	VoteAverage      float64 `json:"vote_average"`
	OriginalLanguage string  `json:"original_language"`
}

func (r result) isAnime() bool {
	return r.OriginalLanguage == "ja" && lo.Contains(r.GenreIDs, animationGenre)
}

// item normalizes a result. Movies carry title/release_date, series carry
// name/first_air_date; multi results say which one through media_type.
func (r result) item(kind media.Kind) media.Item {
	if kind == media.Multi {
		if r.MediaType == "tv" {
			kind = media.TV
		} else {
			kind = media.Movie
		}
	}

	return media.Item{
		ID:          r.ID,
		Title:       lo.Ternary(r.Title != "", r.Title, r.Name),
		Kind:        kind,
		PosterPath:  r.PosterPath,
		Overview:    r.Overview,
		ReleaseDate: lo.Ternary(r.ReleaseDate != "", r.ReleaseDate, r.FirstAirDate),
		GenreIDs:    r.GenreIDs,
		VoteAverage: r.VoteAverage,
	}
}

type page struct {
	Page         int      `json:"page"`
	Results      []result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

type genreList struct {
	Genres []media.Genre `json:"genres"`
}

type errorBody struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

type video struct {
	Key      string `json:"key"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type details struct {
	result
	Genres           []media.Genre `json:"genres"`
	Tagline          string        `json:"tagline"`
	Status           string        `json:"status"`
	Homepage         string        `json:"homepage"`
	Runtime          int           `json:"runtime"`
	EpisodeRunTime   []int         `json:"episode_run_time"`
	NumberOfSeasons  int           `json:"number_of_seasons"`
	NumberOfEpisodes int           `json:"number_of_episodes"`
	Credits          struct {
		Cast []struct {
			Name      string `json:"name"`
			Character string `json:"character"`
			Order     int    `json:"order"`
		} `json:"cast"`
	} `json:"credits"`
	Videos struct {
		Results []video `json:"results"`
	} `json:"videos"`
}

const castLimit = 5

func (d details) normalize(kind media.Kind) media.Details {
	out := media.Details{
		Item:     d.result.item(kind),
		Tagline:  d.Tagline,
		Status:   d.Status,
		Homepage: d.Homepage,
		Runtime:  d.Runtime,
		Seasons:  d.NumberOfSeasons,
		Episodes: d.NumberOfEpisodes,
		Genres:   lo.Map(d.Genres, func(g media.Genre, _ int) string { return g.Name }),
	}

	if out.Runtime == 0 && len(d.EpisodeRunTime) > 0 {
		out.Runtime = d.EpisodeRunTime[0]
	}

	if len(out.Item.GenreIDs) == 0 {
		out.Item.GenreIDs = lo.Map(d.Genres, func(g media.Genre, _ int) int { return g.ID })
	}

	cast := d.Credits.Cast
	sort.SliceStable(cast, func(i, j int) bool { return cast[i].Order < cast[j].Order })
	for _, member := range cast[:min(len(cast), castLimit)] {
		out.Cast = append(out.Cast, media.CastMember{Name: member.Name, Character: member.Character})
	}

	out.TrailerKey = trailerKey(d.Videos.Results)
	return out
}

// trailerKey prefers an official YouTube trailer, then any trailer, then a teaser.
func trailerKey(videos []video) string {
	youtube := lo.Filter(videos, func(v video, _ int) bool { return v.Site == "YouTube" && v.Key != "" })

	preferences := []func(video) bool{
		func(v video) bool { return v.Type == "Trailer" && v.Official },
		func(v video) bool { return v.Type == "Trailer" },
		func(v video) bool { return v.Type == "Teaser" },
	}

	for _, matches := range preferences {
		if v, ok := lo.Find(youtube, matches); ok {
			return v.Key
		}
	}

	return ""
}
