package locale

import (
	"reflect"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFor(t *testing.T) {
	Convey("Every table fills every label", t, func() {
		for language, labels := range tables {
			value := reflect.ValueOf(labels)
			for i := 0; i < value.NumField(); i++ {
				So(value.Field(i).String(), ShouldNotBeEmpty)
			}
			So(Name(language), ShouldNotBeEmpty)
		}
	})

	Convey("Filters follow the language", t, func() {
		So(For("pt-BR").Movies, ShouldEqual, "Filmes")
		So(For("es-ES").SearchPlaceholder, ShouldEqual, "Buscar películas, series o anime")
	})

	Convey("Unknown languages fall back to English", t, func() {
		So(For("fr-FR"), ShouldResemble, english)
	})
}
