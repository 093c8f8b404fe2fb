package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteAtomic(t *testing.T) {
	Convey("Given an in-memory backend", t, func() {
		SetMemMapFs()

		Convey("WriteAtomic leaves only the final file behind", func() {
			So(API().MkdirAll("/data", 0o755), ShouldBeNil)
			So(WriteAtomic("/data/file.json", []byte(`{"a":1}`)), ShouldBeNil)

			content, err := API().ReadFile("/data/file.json")
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, `{"a":1}`)

			exists, err := API().Exists("/data/file.json.tmp")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}
