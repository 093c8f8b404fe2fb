package settings

import (
	"errors"
	"testing"

	"github.com/cinebox-cli/cinebox/config"
	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestEnums(t *testing.T) {
	Convey("Theme toggles between dark and light", t, func() {
		So(Dark.Toggle(), ShouldEqual, Light)
		So(Light.Toggle(), ShouldEqual, Dark)
	})

	Convey("Language cycles through every supported language", t, func() {
		So(English.Next(), ShouldEqual, Portuguese)
		So(Portuguese.Next(), ShouldEqual, Spanish)
		So(Spanish.Next(), ShouldEqual, English)
		So(Language("fr-FR").Next(), ShouldEqual, English)
	})
}

func TestHolder(t *testing.T) {
	Convey("Given a holder", t, func() {
		var persisted []Settings
		holder := NewHolder(Defaults, func(s Settings) error {
			persisted = append(persisted, s)
			return nil
		})

		Convey("Current returns a copy", func() {
			current := holder.Current()
			current.Theme = Light
			So(holder.Current().Theme, ShouldEqual, Dark)
		})

		Convey("Update swaps and persists the value", func() {
			err := holder.Update(func(s *Settings) { s.Theme = s.Theme.Toggle() })
			So(err, ShouldBeNil)
			So(holder.Current(), ShouldResemble, Settings{Theme: Light, Language: English})
			So(persisted, ShouldHaveLength, 1)
		})

		Convey("Invalid updates are rejected untouched", func() {
			err := holder.Update(func(s *Settings) { s.Language = "xx" })
			So(err, ShouldNotBeNil)
			So(holder.Current(), ShouldResemble, Defaults)
			So(persisted, ShouldBeEmpty)
		})

		Convey("No-op updates do not persist", func() {
			So(holder.Update(func(s *Settings) {}), ShouldBeNil)
			So(persisted, ShouldBeEmpty)
		})
	})

	Convey("A failing persist keeps the change for the session", t, func() {
		holder := NewHolder(Defaults, func(Settings) error { return errors.New("disk full") })
		err := holder.Update(func(s *Settings) { s.Language = Spanish })
		So(err, ShouldNotBeNil)
		So(holder.Current().Language, ShouldEqual, Spanish)
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a config in memory", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv("CINEBOX_CONFIG_PATH", "/config")
		So(config.Setup(), ShouldBeNil)

		Convey("Invalid values fall back to defaults", func() {
			viper.Set(key.SettingsTheme, "sepia")
			viper.Set(key.SettingsLanguage, "pt-BR")
			So(Load().Current(), ShouldResemble, Settings{Theme: Dark, Language: Portuguese})
		})

		Convey("Updates are mirrored into viper and written when persisting", func() {
			viper.Set(key.SettingsPersist, true)
			holder := Load()
			So(holder.Update(func(s *Settings) { s.Theme = Light }), ShouldBeNil)
			So(viper.GetString(key.SettingsTheme), ShouldEqual, "light")

			exists, _ := filesystem.API().Exists("/config/cinebox.toml")
			So(exists, ShouldBeTrue)
		})
	})
}
