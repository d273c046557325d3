package recent

import (
	"testing"

	"github.com/playpen-cli/playpen/filesystem"
	"github.com/playpen-cli/playpen/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.RecentShowSuggestions, true)
	viper.Set(key.RecentLimit, 20)
}

func TestRemember(t *testing.T) {
	Convey("Given a remembered URL", t, func() {
		err := Remember("https://example.com/clip.mp4", 1)
		So(err, ShouldBeNil)

		Convey("It comes back as a suggestion", func() {
			suggestion := Suggest("example")
			So(suggestion.IsPresent(), ShouldBeTrue)
			So(suggestion.MustGet(), ShouldEqual, "https://example.com/clip.mp4")
		})

		Convey("Blank input is ignored", func() {
			So(Remember("   ", 1), ShouldBeNil)
		})
	})
}

func TestSuggestMany(t *testing.T) {
	Convey("Given several remembered URLs", t, func() {
		So(Remember("https://example.com/a.mp4", 1), ShouldBeNil)
		So(Remember("https://example.com/b.mp4", 5), ShouldBeNil)

		Convey("Suggestions are ordered by rank", func() {
			suggestions := SuggestMany("example")
			So(len(suggestions), ShouldBeGreaterThanOrEqualTo, 2)
			So(suggestions[0], ShouldEqual, "https://example.com/b.mp4")
		})

		Convey("Suggestions can be disabled", func() {
			viper.Set(key.RecentShowSuggestions, false)
			So(SuggestMany("example"), ShouldBeEmpty)
			viper.Set(key.RecentShowSuggestions, true)
		})
	})
}
