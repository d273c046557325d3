package preset

import (
	"testing"

	"github.com/playpen-cli/playpen/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestAll(t *testing.T) {
	Convey("Preset registry", t, func() {
		viper.Set(key.PresetExtra, []string{})

		Convey("Ships four built-in sources", func() {
			So(len(All()), ShouldEqual, 4)
		})

		Convey("Includes well-formed user extras", func() {
			viper.Set(key.PresetExtra, []string{"local=http://localhost:8080/clip.mp4"})

			presets := All()
			So(len(presets), ShouldEqual, 5)
			So(presets[4].Name, ShouldEqual, "local")
			So(presets[4].URL, ShouldEqual, "http://localhost:8080/clip.mp4")
		})

		Convey("Skips malformed extras", func() {
			viper.Set(key.PresetExtra, []string{"nourl", "=dangling", "empty="})

			So(len(All()), ShouldEqual, 4)
		})
	})
}

func TestGet(t *testing.T) {
	Convey("Get", t, func() {
		viper.Set(key.PresetExtra, []string{})

		Convey("Finds a registered preset", func() {
			p, ok := Get("bunny")
			So(ok, ShouldBeTrue)
			So(p.URL, ShouldContainSubstring, "BigBuckBunny")
		})

		Convey("Misses an unregistered preset", func() {
			_, ok := Get("nope")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestErrUnknown(t *testing.T) {
	Convey("ErrUnknown suggests the closest name", t, func() {
		viper.Set(key.PresetExtra, []string{})

		err := ErrUnknown("buny")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "bunny")
	})
}
