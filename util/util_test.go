package util

import (
	"testing"

	"github.com/cinebox-cli/cinebox/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "result", "results"), ShouldEqual, "1 result")
		So(Quantify(0, "result", "results"), ShouldEqual, "0 results")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("home"), ShouldEqual, "Home")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestEllipsis(t *testing.T) {
	Convey("Ellipsis", t, func() {
		So(Ellipsis("Spirited Away", 20), ShouldEqual, "Spirited Away")
		So(Ellipsis("Spirited Away", 5), ShouldEqual, "Spir…")
		So(Ellipsis("千と千尋の神隠し", 3), ShouldEqual, "千と…")
		So(Ellipsis("abc", 0), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/cinebox/sub", 0o755), ShouldBeNil)
		So(fs.WriteFile("/tmp/cinebox/sub/a.json", []byte("{}"), 0o644), ShouldBeNil)

		So(Delete("/tmp/cinebox"), ShouldBeNil)
		exists, _ := fs.Exists("/tmp/cinebox")
		So(exists, ShouldBeFalse)
		So(Delete("/tmp/cinebox"), ShouldNotBeNil)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)
		So(s.Pop(), ShouldEqual, 0)
		s.Push(3)
		s.Clear()
		So(s.Len(), ShouldEqual, 0)
	})
}
