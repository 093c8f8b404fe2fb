package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestKeyring(t *testing.T) {
	Convey("Given an empty keyring", t, func() {
		So(DeleteAPIKey(), ShouldBeNil)

		Convey("GetAPIKey reports a missing token", func() {
			_, err := GetAPIKey()
			So(err, ShouldEqual, ErrNoToken)
		})

		Convey("An empty token is rejected", func() {
			So(SetAPIKey(""), ShouldNotBeNil)
		})

		Convey("A stored token can be read back and removed", func() {
			So(SetAPIKey("secret"), ShouldBeNil)

			token, err := GetAPIKey()
			So(err, ShouldBeNil)
			So(token, ShouldEqual, "secret")

			So(DeleteAPIKey(), ShouldBeNil)
			_, err = GetAPIKey()
			So(err, ShouldEqual, ErrNoToken)
		})
	})
}
