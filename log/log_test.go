package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/key"
	"github.com/cinebox-cli/cinebox/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Helpers are silent no-ops", func() {
			So(Enabled(), ShouldBeFalse)
			So(func() { Info("nothing"); With(Fields{"a": 1}).Info("nothing") }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)

		Convey("Messages land in today's log file", func() {
			Infof("hello %s", "world")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			content, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(content), ShouldContainSubstring, "hello world")
		})
	})
}
