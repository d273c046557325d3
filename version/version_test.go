package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given two semantic version strings", t, func() {
		Convey("Equal versions compare to 0", func() {
			c, err := Compare("1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 0)
		})

		Convey("A newer version compares to 1", func() {
			c, err := Compare("1.3.0", "1.2.9")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 1)
		})

		Convey("An older version compares to -1", func() {
			c, err := Compare("0.9.9", "1.0.0")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, -1)
		})

		Convey("A leading v prefix is tolerated", func() {
			c, err := Compare("v1.0.1", "1.0.0")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 1)
		})

		Convey("Garbage input yields an error", func() {
			_, err := Compare("not-a-version", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
