package ui

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNotifier(t *testing.T) {
	Convey("Given a notifier", t, func() {
		n := NewNotifier(time.Millisecond, lipgloss.NewStyle(), lipgloss.NewStyle())
		So(n.View(), ShouldBeEmpty)

		Convey("A notification is shown until its clear message arrives", func() {
			clear := n.Update(Notify("Added to favorites")())
			So(clear, ShouldNotBeNil)
			So(n.Text(), ShouldEqual, "Added to favorites")
			So(n.View(), ShouldContainSubstring, "Added to favorites")

			n.Update(clear())
			So(n.Text(), ShouldBeEmpty)
		})

		Convey("An older clear does not hide a newer notification", func() {
			oldClear := n.Update(Notify("first")())
			n.Update(NotifyError("second")())

			n.Update(oldClear())
			So(n.Text(), ShouldEqual, "second")
		})

		Convey("Unrelated messages are ignored", func() {
			So(n.Update("noise"), ShouldBeNil)
			So(n.Text(), ShouldBeEmpty)
		})
	})
}
