package favorites

import (
	"sync"
	"testing"

	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/media"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		filesystem.SetMemMapFs()
		store := New("/config/favorites.json")

		Convey("Load returns nothing", func() {
			items, err := store.Load()
			So(err, ShouldBeNil)
			So(items, ShouldBeEmpty)
		})

		Convey("Saved items are loaded back in order", func() {
			saved := []media.Item{
				{ID: 2, Title: "B", Kind: media.TV},
				{ID: 1, Title: "A", Kind: media.Movie},
			}
			So(store.Save(saved), ShouldBeNil)

			loaded, err := New("/config/favorites.json").Load()
			So(err, ShouldBeNil)
			So(loaded, ShouldResemble, saved)

			Convey("Remove drops only the matching key", func() {
				removed, err := store.Remove("tv/2")
				So(err, ShouldBeNil)
				So(removed, ShouldBeTrue)

				items, _ := store.Load()
				So(items, ShouldHaveLength, 1)
				So(items[0].ID, ShouldEqual, 1)

				removed, err = store.Remove("movie/42")
				So(err, ShouldBeNil)
				So(removed, ShouldBeFalse)
			})

			Convey("The same id under another kind is left alone", func() {
				removed, err := store.Remove("movie/2")
				So(err, ShouldBeNil)
				So(removed, ShouldBeFalse)

				items, _ := store.Load()
				So(items, ShouldResemble, saved)
			})
		})
	})

	Convey("Concurrent removals each see the previous one", t, func() {
		filesystem.SetMemMapFs()
		store := New("/config/favorites.json")

		var saved []media.Item
		for id := 1; id <= 20; id++ {
			saved = append(saved, media.Item{ID: id, Title: "t", Kind: media.Movie})
		}
		So(store.Save(saved), ShouldBeNil)

		var wg sync.WaitGroup
		for _, item := range saved {
			wg.Add(1)
			go func(key string) {
				defer wg.Done()
				_, _ = store.Remove(key)
			}(item.Key())
		}
		wg.Wait()

		items, err := store.Load()
		So(err, ShouldBeNil)
		So(items, ShouldBeEmpty)
	})
}
