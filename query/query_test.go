package query

import (
	"testing"

	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuery(t *testing.T) {
	Convey("Given a query history", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, true)
		So(Clear(), ShouldBeNil)

		So(Remember("Spirited Away", 1), ShouldBeNil)
		So(Remember("spider-man", 5), ShouldBeNil)
		So(Remember("  SPIDER-MAN ", 1), ShouldBeNil)

		Convey("Suggestions are ordered by rank", func() {
			So(SuggestMany("sp"), ShouldResemble, []string{"spider-man", "spirited away"})
			So(Suggest("sp").OrEmpty(), ShouldEqual, "spider-man")
		})

		Convey("The exact query is not suggested back", func() {
			So(SuggestMany("spider-man"), ShouldBeEmpty)
		})

		Convey("New ranks are reflected immediately", func() {
			So(SuggestMany("sp")[0], ShouldEqual, "spider-man")
			So(Remember("spirited away", 10), ShouldBeNil)
			So(SuggestMany("sp")[0], ShouldEqual, "spirited away")
		})

		Convey("Blank input is ignored", func() {
			So(Remember("   ", 1), ShouldBeNil)
			So(SuggestMany(""), ShouldBeEmpty)
		})

		Convey("Nothing is suggested when disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			So(Suggest("sp").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("normalize folds case and spacing", t, func() {
		So(normalize("  Your   NAME "), ShouldEqual, "your name")
	})
}
