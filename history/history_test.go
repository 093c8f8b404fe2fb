package history

import (
	"testing"
	"time"

	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/media"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given an empty history", t, func() {
		So(Clear(), ShouldBeNil)

		clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		now = func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		}
		Reset(func() { now = time.Now })

		alien := media.Item{ID: 348, Title: "Alien", Kind: media.Movie, ReleaseDate: "1979-05-25"}
		lain := media.Item{ID: 1245, Title: "Serial Experiments Lain", Kind: media.Anime}

		Convey("When two titles are viewed", func() {
			So(Save(alien), ShouldBeNil)
			So(Save(lain), ShouldBeNil)

			Convey("Then the latest comes first", func() {
				recent, err := Recent()
				So(err, ShouldBeNil)
				So(recent, ShouldHaveLength, 2)
				So(recent[0].ID, ShouldEqual, lain.ID)
				So(recent[1].String(), ShouldEqual, "Alien (1979)")
			})

			Convey("And viewing one again moves it up and counts the view", func() {
				So(Save(alien), ShouldBeNil)

				recent, err := Recent()
				So(err, ShouldBeNil)
				So(recent[0].ID, ShouldEqual, alien.ID)
				So(recent[0].Views, ShouldEqual, 2)
			})

			Convey("And a title can be removed", func() {
				removed, err := Remove(alien.Key())
				So(err, ShouldBeNil)
				So(removed, ShouldBeTrue)

				removed, err = Remove(alien.Key())
				So(err, ShouldBeNil)
				So(removed, ShouldBeFalse)

				recent, _ := Recent()
				So(recent, ShouldHaveLength, 1)
			})
		})

		Convey("When a movie and a series share an id", func() {
			movie := media.Item{ID: 1399, Title: "Movie", Kind: media.Movie}
			series := media.Item{ID: 1399, Title: "Series", Kind: media.TV}
			So(Save(movie), ShouldBeNil)
			So(Save(series), ShouldBeNil)

			Convey("Then both are recorded with their own counts", func() {
				recent, err := Recent()
				So(err, ShouldBeNil)
				So(recent, ShouldHaveLength, 2)
				So(recent[0].Title, ShouldEqual, "Series")
				So(recent[0].Views, ShouldEqual, 1)
				So(recent[1].Title, ShouldEqual, "Movie")
				So(recent[1].Views, ShouldEqual, 1)
			})

			Convey("Then removing the series keeps the movie", func() {
				removed, err := Remove(series.Key())
				So(err, ShouldBeNil)
				So(removed, ShouldBeTrue)

				recent, _ := Recent()
				So(recent, ShouldHaveLength, 1)
				So(recent[0].Kind, ShouldEqual, media.Movie)
			})
		})

		Convey("When the file holds records keyed by bare id", func() {
			So(cacher.Set(map[string]*Viewed{"348": newViewed(alien, now())}), ShouldBeNil)
			So(Save(alien), ShouldBeNil)

			Convey("Then they are merged with the new records", func() {
				recent, err := Recent()
				So(err, ShouldBeNil)
				So(recent, ShouldHaveLength, 1)
				So(recent[0].Views, ShouldEqual, 2)
			})
		})

		Convey("When more than the limit is viewed", func() {
			for i := 1; i <= Limit+5; i++ {
				So(Save(media.Item{ID: i, Title: "t"}), ShouldBeNil)
			}

			Convey("Then only the most recent are kept", func() {
				recent, err := Recent()
				So(err, ShouldBeNil)
				So(recent, ShouldHaveLength, Limit)
				So(recent[0].ID, ShouldEqual, Limit+5)
				So(recent[Limit-1].ID, ShouldEqual, 6)
			})
		})
	})
}
