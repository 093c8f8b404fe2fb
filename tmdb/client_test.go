package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/media"
	. "github.com/smartystreets/goconvey/convey"
)

const moviePage = `{"page":1,"total_pages":1,"results":[
	{"id":1,"title":"A","release_date":"2020-01-02","genre_ids":[28],"vote_average":7.1,"poster_path":"/a.jpg"},
	{"id":2,"title":"B","release_date":"2021-03-04","genre_ids":[12]}
]}`

const multiPage = `{"results":[
	{"id":10,"media_type":"movie","title":"Film"},
	{"id":11,"media_type":"tv","name":"Show","first_air_date":"2019-05-06"},
	{"id":12,"media_type":"person","name":"Someone"}
]}`

const tvPage = `{"results":[
	{"id":20,"name":"Frieren","genre_ids":[16,10765],"original_language":"ja"},
	{"id":21,"name":"Arcane","genre_ids":[16,10765],"original_language":"en"},
	{"id":22,"name":"Shogun","genre_ids":[18],"original_language":"ja"}
]}`

const detailsBody = `{"id":129,"title":"Spirited Away","release_date":"2001-07-20","runtime":125,
	"tagline":"The tunnel led Chihiro to a mysterious town.","status":"Released",
	"genres":[{"id":16,"name":"Animation"},{"id":14,"name":"Fantasy"}],
	"credits":{"cast":[
		{"name":"F","order":5},{"name":"B","order":1},{"name":"A","order":0},
		{"name":"C","order":2},{"name":"D","order":3},{"name":"E","order":4}
	]},
	"videos":{"results":[
		{"key":"teaser","site":"YouTube","type":"Teaser"},
		{"key":"vimeo","site":"Vimeo","type":"Trailer","official":true},
		{"key":"trailer","site":"YouTube","type":"Trailer"}
	]}}`

type recorder struct {
	server *httptest.Server
	hits   atomic.Int32
	last   atomic.Pointer[http.Request]
}

func newRecorder(handler func(w http.ResponseWriter, r *http.Request)) *recorder {
	rec := &recorder{}
	rec.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.hits.Add(1)
		rec.last.Store(r)
		handler(w, r)
	}))
	return rec
}

func respond(body string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func testClient(rec *recorder, apiKey string) *Client {
	return New(Options{BaseURL: rec.server.URL, APIKey: apiKey, HTTPClient: rec.server.Client()})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	Convey("Given a movie search endpoint", t, func() {
		rec := newRecorder(respond(moviePage))
		defer rec.server.Close()
		client := testClient(rec, "v3key")

		Convey("Results are normalized in order", func() {
			items, err := client.Search(ctx, "a", media.Movie)
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 2)
			So(items[0], ShouldResemble, media.Item{
				ID: 1, Title: "A", Kind: media.Movie, PosterPath: "/a.jpg",
				ReleaseDate: "2020-01-02", GenreIDs: []int{28}, VoteAverage: 7.1,
			})
			So(items[1].Title, ShouldEqual, "B")

			r := rec.last.Load()
			So(r.URL.Path, ShouldEqual, "/search/movie")
			So(r.URL.Query().Get("query"), ShouldEqual, "a")
			So(r.URL.Query().Get("language"), ShouldEqual, "en-US")
			So(r.URL.Query().Get("api_key"), ShouldEqual, "v3key")
		})

		Convey("An empty query asks for trending titles", func() {
			_, err := client.Search(ctx, "   ", media.Movie)
			So(err, ShouldBeNil)
			So(rec.last.Load().URL.Path, ShouldEqual, "/trending/movie/week")
		})

		Convey("The result limit caps the list", func() {
			client.limit = 1
			items, err := client.Search(ctx, "a", media.Movie)
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 1)
		})

		Convey("A v4 token goes into the Authorization header", func() {
			client := testClient(rec, "eyJtoken")
			_, err := client.Search(ctx, "a", media.Movie)
			So(err, ShouldBeNil)
			r := rec.last.Load()
			So(r.Header.Get("Authorization"), ShouldEqual, "Bearer eyJtoken")
			So(r.URL.Query().Has("api_key"), ShouldBeFalse)
		})
	})

	Convey("Multi search drops people and resolves kinds", t, func() {
		rec := newRecorder(respond(multiPage))
		defer rec.server.Close()

		items, err := testClient(rec, "k").Search(ctx, "x", media.Multi)
		So(err, ShouldBeNil)
		So(items, ShouldHaveLength, 2)
		So(items[0].Kind, ShouldEqual, media.Movie)
		So(items[1].Kind, ShouldEqual, media.TV)
		So(items[1].Title, ShouldEqual, "Show")
		So(items[1].ReleaseDate, ShouldEqual, "2019-05-06")
		So(rec.last.Load().URL.Path, ShouldEqual, "/search/multi")
	})

	Convey("Anime search keeps Japanese animation only", t, func() {
		rec := newRecorder(respond(tvPage))
		defer rec.server.Close()

		items, err := testClient(rec, "k").Search(ctx, "x", media.Anime)
		So(err, ShouldBeNil)
		So(items, ShouldHaveLength, 1)
		So(items[0].Title, ShouldEqual, "Frieren")
		So(items[0].Kind, ShouldEqual, media.Anime)
		So(rec.last.Load().URL.Path, ShouldEqual, "/search/tv")
	})
}

func TestListings(t *testing.T) {
	ctx := context.Background()

	Convey("Given a discover endpoint", t, func() {
		rec := newRecorder(respond(tvPage))
		defer rec.server.Close()
		client := testClient(rec, "k")

		Convey("ListByGenre filters server side", func() {
			_, err := client.ListByGenre(ctx, 28, media.Multi)
			So(err, ShouldBeNil)
			r := rec.last.Load()
			So(r.URL.Path, ShouldEqual, "/discover/movie")
			So(r.URL.Query().Get("with_genres"), ShouldEqual, "28")
			So(r.URL.Query().Get("sort_by"), ShouldEqual, "popularity.desc")
		})

		Convey("Anime genre listings add animation and language filters", func() {
			_, err := client.ListByGenre(ctx, 10765, media.Anime)
			So(err, ShouldBeNil)
			r := rec.last.Load()
			So(r.URL.Path, ShouldEqual, "/discover/tv")
			So(r.URL.Query().Get("with_genres"), ShouldEqual, "16,10765")
			So(r.URL.Query().Get("with_original_language"), ShouldEqual, "ja")
		})

		Convey("Anime trending is a discover listing", func() {
			items, err := client.Trending(ctx, media.Anime)
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 1)
			So(rec.last.Load().URL.Path, ShouldEqual, "/discover/tv")
		})

		Convey("Multi trending covers all kinds", func() {
			_, _ = client.Trending(ctx, media.Multi)
			So(rec.last.Load().URL.Path, ShouldEqual, "/trending/all/week")
		})
	})

	Convey("Genres come from the genre list endpoint", t, func() {
		rec := newRecorder(respond(`{"genres":[{"id":16,"name":"Animation"},{"id":18,"name":"Drama"}]}`))
		defer rec.server.Close()
		client := testClient(rec, "k")

		genres, err := client.Genres(ctx, media.Movie)
		So(err, ShouldBeNil)
		So(genres, ShouldResemble, []media.Genre{{ID: 16, Name: "Animation"}, {ID: 18, Name: "Drama"}})
		So(rec.last.Load().URL.Path, ShouldEqual, "/genre/movie/list")

		Convey("Anime hides the implied animation genre", func() {
			genres, err := client.Genres(ctx, media.Anime)
			So(err, ShouldBeNil)
			So(genres, ShouldResemble, []media.Genre{{ID: 18, Name: "Drama"}})
			So(rec.last.Load().URL.Path, ShouldEqual, "/genre/tv/list")
		})
	})
}

func TestDetails(t *testing.T) {
	Convey("Given a details endpoint", t, func() {
		rec := newRecorder(respond(detailsBody))
		defer rec.server.Close()

		d, err := testClient(rec, "k").Details(context.Background(), media.Item{ID: 129, Kind: media.Movie})
		So(err, ShouldBeNil)

		r := rec.last.Load()
		So(r.URL.Path, ShouldEqual, "/movie/129")
		So(r.URL.Query().Get("append_to_response"), ShouldEqual, "credits,videos")

		So(d.Title, ShouldEqual, "Spirited Away")
		So(d.Runtime, ShouldEqual, 125)
		So(d.Genres, ShouldResemble, []string{"Animation", "Fantasy"})
		So(d.GenreIDs, ShouldResemble, []int{16, 14})
		So(d.Cast, ShouldHaveLength, 5)
		So(d.Cast[0].Name, ShouldEqual, "A")
		So(d.Cast[4].Name, ShouldEqual, "E")
		So(d.TrailerKey, ShouldEqual, "trailer")
	})
}

func TestErrors(t *testing.T) {
	ctx := context.Background()

	Convey("Without an API key no request is made", t, func() {
		rec := newRecorder(respond(moviePage))
		defer rec.server.Close()

		client := testClient(rec, "")
		So(client.Authorized(), ShouldBeFalse)

		_, err := client.Search(ctx, "a", media.Movie)
		So(errors.Is(err, ErrMissingAPIKey), ShouldBeTrue)
		So(rec.hits.Load(), ShouldEqual, 0)
	})

	Convey("Non 200 answers become a StatusError", t, func() {
		rec := newRecorder(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key"}`))
		})
		defer rec.server.Close()

		_, err := testClient(rec, "bad").Search(ctx, "a", media.Movie)
		var statusErr *StatusError
		So(errors.As(err, &statusErr), ShouldBeTrue)
		So(statusErr.Code, ShouldEqual, http.StatusUnauthorized)
		So(statusErr.Message, ShouldEqual, "Invalid API key")
		So(err.Error(), ShouldContainSubstring, "Invalid API key")
	})

	Convey("Malformed bodies are reported", t, func() {
		rec := newRecorder(respond(`{"results":`))
		defer rec.server.Close()

		_, err := testClient(rec, "k").Search(ctx, "a", media.Movie)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "decode")
	})

	Convey("A canceled context aborts the request", t, func() {
		rec := newRecorder(respond(moviePage))
		defer rec.server.Close()

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := testClient(rec, "k").Search(canceled, "a", media.Movie)
		So(errors.Is(err, context.Canceled), ShouldBeTrue)
	})
}

func TestCache(t *testing.T) {
	ctx := context.Background()

	Convey("Given a client with disk caches", t, func() {
		filesystem.SetMemMapFs()

		Convey("Repeated searches are served from the cache", func() {
			rec := newRecorder(respond(moviePage))
			defer rec.server.Close()
			client := New(Options{BaseURL: rec.server.URL, APIKey: "k", HTTPClient: rec.server.Client(), CacheDir: "/cache"})

			first, err := client.Search(ctx, "a", media.Movie)
			So(err, ShouldBeNil)
			second, err := client.Search(ctx, "a", media.Movie)
			So(err, ShouldBeNil)
			So(second, ShouldResemble, first)
			So(rec.hits.Load(), ShouldEqual, 1)

			Convey("The language is part of the cache key", func() {
				_, err := client.WithLanguage("pt-BR").Search(ctx, "a", media.Movie)
				So(err, ShouldBeNil)
				So(rec.hits.Load(), ShouldEqual, 2)
			})
		})

		Convey("Server failures short-circuit repeated requests", func() {
			rec := newRecorder(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			})
			defer rec.server.Close()
			client := New(Options{BaseURL: rec.server.URL, APIKey: "k", HTTPClient: rec.server.Client(), CacheDir: "/cache-fail"})

			_, err := client.Search(ctx, "b", media.Movie)
			So(err, ShouldNotBeNil)
			_, err = client.Search(ctx, "b", media.Movie)
			So(err, ShouldNotBeNil)
			So(rec.hits.Load(), ShouldEqual, 1)
		})
	})
}
