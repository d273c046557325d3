package eventlog

import (
	"fmt"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAppend(t *testing.T) {
	Convey("Given an empty log", t, func() {
		l := New()

		Convey("Appending a single event records it", func() {
			l.Append("onPlay", nil)

			So(l.Len(), ShouldEqual, 1)
			entry := l.Entries()[0]
			So(entry.Event, ShouldEqual, "onPlay")
			So(entry.Data, ShouldEqual, "{}")
			So(entry.Timestamp, ShouldNotBeEmpty)
		})

		Convey("Payloads are serialized to a JSON string", func() {
			l.Append("onSeek", Payload{"seconds": 30})

			So(l.Entries()[0].Data, ShouldEqual, `{"seconds":30}`)
		})

		Convey("Entries are ordered newest first", func() {
			l.Append("onReady", nil)
			l.Append("onStart", nil)
			l.Append("onPlay", nil)

			entries := l.Entries()
			So(entries[0].Event, ShouldEqual, "onPlay")
			So(entries[1].Event, ShouldEqual, "onStart")
			So(entries[2].Event, ShouldEqual, "onReady")
		})

		Convey("The log never exceeds its capacity", func() {
			for i := 0; i < Capacity*3; i++ {
				l.Append("onProgress", nil)
			}

			So(l.Len(), ShouldEqual, Capacity)
		})

		Convey("55 distinct appends retain the 50 most recent in call order", func() {
			for i := 0; i < 55; i++ {
				l.Append(fmt.Sprintf("event-%d", i), nil)
			}

			entries := l.Entries()
			So(len(entries), ShouldEqual, 50)
			// Newest first: event-54 down to event-5.
			So(entries[0].Event, ShouldEqual, "event-54")
			So(entries[49].Event, ShouldEqual, "event-5")
		})
	})
}

func TestClear(t *testing.T) {
	Convey("Given a populated log", t, func() {
		l := New()
		l.Append("onPlay", nil)
		l.Append("onPause", nil)

		Convey("Clear empties the sequence", func() {
			l.Clear()

			So(l.Len(), ShouldEqual, 0)
			So(l.Entries(), ShouldBeEmpty)

			Convey("And subsequent reads stay empty", func() {
				So(l.Entries(), ShouldBeEmpty)
				So(l.Len(), ShouldEqual, 0)
			})
		})
	})
}

func TestFilter(t *testing.T) {
	Convey("Given a log with mixed events", t, func() {
		l := New()
		l.Append("onProgress", nil)
		l.Append("onPlay", nil)
		l.Append("onPause", nil)

		Convey("An empty query matches everything", func() {
			So(len(l.Filter("")), ShouldEqual, 3)
		})

		Convey("A fuzzy query narrows the result", func() {
			matched := l.Filter("pause")
			So(len(matched), ShouldEqual, 1)
			So(matched[0].Event, ShouldEqual, "onPause")
		})

		Convey("A non-matching query yields nothing", func() {
			So(l.Filter("zzz"), ShouldBeEmpty)
		})
	})
}

func TestTimestamp(t *testing.T) {
	Convey("Entry timestamps use the locale time-of-day format", t, func() {
		restore := now
		defer func() { now = restore }()
		now = func() time.Time {
			return time.Date(2026, 8, 31, 13, 37, 42, 0, time.UTC)
		}

		l := New()
		l.Append("onDuration", Payload{"duration": 12.5})

		So(l.Entries()[0].Timestamp, ShouldEqual, "13:37:42")
	})
}
