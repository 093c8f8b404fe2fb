package where

import (
	"path/filepath"
	"testing"

	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs() lives under Config()", func() {
			So(filepath.Dir(Logs()), ShouldEqual, Config())
		})

		Convey("Favorites(), History() and ConfigFile() are files in Config()", func() {
			So(filepath.Dir(Favorites()), ShouldEqual, Config())
			So(filepath.Dir(History()), ShouldEqual, Config())
			So(filepath.Base(ConfigFile()), ShouldEqual, "cinebox.toml")
		})

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/cinebox")
			So(Config(), ShouldEqual, "/custom/cinebox")
			So(lo.Must(filesystem.API().IsDir("/custom/cinebox")), ShouldBeTrue)
		})
	})
}
