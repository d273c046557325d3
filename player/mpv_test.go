package player

import (
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		Convey("Accepts http and https URLs", func() {
			for _, u := range []string{
				"http://example.com/video.mp4",
				"https://example.com/stream.m3u8",
			} {
				got, err := sanitizeMediaTarget(u)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, u)
			}
		})

		Convey("Rejects empty input", func() {
			_, err := sanitizeMediaTarget("  ")
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects flag-shaped input", func() {
			_, err := sanitizeMediaTarget("--script=evil.lua")
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects control characters", func() {
			_, err := sanitizeMediaTarget("http://a\nb")
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects unsupported schemes", func() {
			_, err := sanitizeMediaTarget("ftp://example.com/file")
			So(err, ShouldNotBeNil)
		})

		Convey("Cleans local file paths", func() {
			got, err := sanitizeMediaTarget("./media/../clip.mp4")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "clip.mp4")
		})
	})
}

func TestClampFraction(t *testing.T) {
	Convey("clampFraction", t, func() {
		So(clampFraction(0.5), ShouldEqual, 0.5)
		So(clampFraction(-0.2), ShouldEqual, 0.0)
		So(clampFraction(1.7), ShouldEqual, 1.0)
	})
}

func TestSetProgressInterval(t *testing.T) {
	Convey("SetProgressInterval", t, func() {
		m := NewMPV()

		Convey("Stores a positive interval", func() {
			m.SetProgressInterval(250 * time.Millisecond)
			So(m.interval, ShouldEqual, 250*time.Millisecond)
		})

		Convey("Ignores non-positive intervals", func() {
			m.SetProgressInterval(250 * time.Millisecond)
			m.SetProgressInterval(0)
			m.SetProgressInterval(-time.Second)
			So(m.interval, ShouldEqual, 250*time.Millisecond)
		})
	})
}

func TestProgressTickerShutdown(t *testing.T) {
	Convey("Given a running progress ticker", t, func() {
		m := NewMPV()
		m.SetProgressInterval(time.Millisecond)
		m.callbacks = Callbacks{OnProgress: func(Snapshot) {}}
		m.startProgressTicker()

		Convey("Engine exit and an explicit stop may land concurrently", func() {
			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				close(m.exitedChan())
			}()
			go func() {
				defer wg.Done()
				m.stopProgressTicker()
			}()
			wg.Wait()

			So(m.stopProgressTicker, ShouldNotPanic)
		})

		Convey("Stopping twice is harmless", func() {
			m.stopProgressTicker()
			So(m.stopProgressTicker, ShouldNotPanic)
		})
	})
}

func TestSetVolumeRange(t *testing.T) {
	Convey("SetVolume validates the fraction range before touching IPC", t, func() {
		m := NewMPV()

		So(m.SetVolume(-0.1), ShouldNotBeNil)
		So(m.SetVolume(1.1), ShouldNotBeNil)
	})
}
