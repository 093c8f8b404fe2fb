package config

import (
	"testing"

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
	Convey("Config Setup", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Every registered field has a default value", func() {
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
		})

		Convey("The theme defaults to dark", func() {
			So(viper.GetString(key.SettingsTheme), ShouldEqual, "dark")
		})

		Convey("EnvKeyReplacer converts dots to underscores", func() {
			So(EnvKeyReplacer.Replace("tmdb.api_key"), ShouldEqual, "tmdb_api_key")
		})

		Convey("Write creates the config file on first use", func() {
			viper.Set(key.SettingsTheme, "light")
			So(Write(), ShouldBeNil)

			exists, err := filesystem.API().Exists(where.ConfigFile())
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
			viper.Set(key.SettingsTheme, "dark")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the theme field", t, func() {
		field := Default[key.SettingsTheme]

		Convey("Env is prefixed with the app name", func() {
			So(field.Env(), ShouldEqual, "CINEBOX_SETTINGS_THEME")
		})

		Convey("Parse accepts a listed option", func() {
			v, err := field.Parse([]string{"light"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "light")
		})

		Convey("Parse rejects values outside the options", func() {
			_, err := field.Parse([]string{"sepia"})
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given an int field", t, func() {
		field := Default[key.TMDBResultLimit]

		Convey("Parse converts numbers", func() {
			v, err := field.Parse([]string{"42"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 42)
		})

		Convey("Parse rejects garbage", func() {
			_, err := field.Parse([]string{"many"})
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Pretty lists the options of enumerated fields", t, func() {
		field := Default[key.SettingsLanguage]
		So(field.Pretty(), ShouldContainSubstring, "pt-BR")
	})
}
