package open

import (
	"path/filepath"
	"testing"

	"github.com/cinebox-cli/cinebox/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("command picks the handler for the platform", t, func() {
		const link = "https://www.themoviedb.org/movie/129"

		cmd, err := command(constant.Linux, link)
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"xdg-open", link})

		cmd, err = command(constant.Darwin, link)
		So(err, ShouldBeNil)
		So(filepath.Base(cmd.Args[0]), ShouldEqual, "open")

		_, err = command("plan9", link)
		So(err, ShouldNotBeNil)
	})
}
