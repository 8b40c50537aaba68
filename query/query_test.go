package query

import (
	"path/filepath"
	"testing"

	"github.com/gtv-cli/gtv/filesystem"
	"github.com/gtv-cli/gtv/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestHistory(t *testing.T) {
	Convey("Given a query history", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.SearchShowQuerySuggestions, true)
		h := New(filepath.Join("/cache", t.Name(), "queries.json"))

		So(h.Remember("Minecraft", 1), ShouldBeNil)
		So(h.Remember("mindustry", 1), ShouldBeNil)
		So(h.Remember("  MINDUSTRY ", 5), ShouldBeNil)

		Convey("Suggestions are ranked by use", func() {
			So(h.SuggestMany("min"), ShouldResemble, []string{"mindustry", "minecraft"})
			So(h.Suggest("mc").OrEmpty(), ShouldEqual, "minecraft")
		})

		Convey("Remembering invalidates earlier suggestions", func() {
			So(h.SuggestMany("min"), ShouldHaveLength, 2)
			So(h.Remember("minigolf", 1), ShouldBeNil)
			So(h.SuggestMany("min"), ShouldHaveLength, 3)
		})

		Convey("Non-matching input suggests nothing", func() {
			So(h.SuggestMany("zelda"), ShouldBeEmpty)
			So(h.Suggest("zelda").IsAbsent(), ShouldBeTrue)
		})

		Convey("Blank queries are not recorded", func() {
			So(h.Remember("   ", 1), ShouldBeNil)
			So(h.SuggestMany(""), ShouldHaveLength, 2)
		})

		Convey("Suggestions can be switched off", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			So(h.SuggestMany("min"), ShouldBeEmpty)
		})
	})
}

func TestSanitize(t *testing.T) {
	Convey("Queries are trimmed and lowercased", t, func() {
		So(sanitize("  Pen & Paper  "), ShouldEqual, "pen & paper")
	})
}
