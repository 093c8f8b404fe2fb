package media

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestKind(t *testing.T) {
	Convey("ParseKind", t, func() {
		for _, k := range Kinds {
			parsed, err := ParseKind(k.String())
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, k)
		}

		k, err := ParseKind("Series")
		So(err, ShouldBeNil)
		So(k, ShouldEqual, TV)

		_, err = ParseKind("podcast")
		So(err, ShouldNotBeNil)
	})

	Convey("Anime and series share the tv endpoint", t, func() {
		So(Anime.Endpoint(), ShouldEqual, "tv")
		So(TV.Endpoint(), ShouldEqual, "tv")
		So(Movie.Endpoint(), ShouldEqual, "movie")
	})

	Convey("Kind encodes as a string", t, func() {
		data, err := json.Marshal(Item{ID: 1, Kind: Anime})
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, `"kind":"anime"`)

		var item Item
		So(json.Unmarshal(data, &item), ShouldBeNil)
		So(item.Kind, ShouldEqual, Anime)
	})
}

func TestItem(t *testing.T) {
	Convey("Given an item", t, func() {
		item := Item{ID: 129, Kind: Movie, ReleaseDate: "2001-07-20", PosterPath: "/poster.jpg", VoteAverage: 8.54}

		So(item.Year(), ShouldEqual, "2001")
		So(item.PosterURL("https://image.tmdb.org/t/p/"), ShouldEqual, "https://image.tmdb.org/t/p/w500/poster.jpg")
		So(item.PageURL(), ShouldEqual, "https://www.themoviedb.org/movie/129")
		So(item.Rating(), ShouldEqual, "8.5")

		Convey("Missing fields degrade gracefully", func() {
			empty := Item{}
			So(empty.Year(), ShouldEqual, "")
			So(empty.PosterURL("x"), ShouldEqual, "")
			So(empty.Rating(), ShouldEqual, "-")
		})
	})

	Convey("Details builds a trailer link", t, func() {
		So(Details{TrailerKey: "abc"}.TrailerURL(), ShouldEqual, "https://www.youtube.com/watch?v=abc")
		So(Details{}.TrailerURL(), ShouldEqual, "")
	})
}

func TestKey(t *testing.T) {
	Convey("Movies and series with the same id have different keys", t, func() {
		movie := Item{ID: 1399, Kind: Movie}
		series := Item{ID: 1399, Kind: TV}

		So(movie.Key(), ShouldEqual, "movie/1399")
		So(series.Key(), ShouldEqual, "tv/1399")
		So(Item{ID: 1399, Kind: Anime}.Key(), ShouldEqual, series.Key())
	})

	Convey("ParseKey", t, func() {
		for input, want := range map[string]string{
			"movie/603":    "movie/603",
			" series/1399": "tv/1399",
			"anime/1429":   "tv/1429",
		} {
			key, err := ParseKey(input)
			So(err, ShouldBeNil)
			So(key, ShouldEqual, want)
		}

		for _, input := range []string{"603", "multi/603", "movie/abc", "book/1", "movie/0"} {
			_, err := ParseKey(input)
			So(err, ShouldNotBeNil)
		}
	})
}
