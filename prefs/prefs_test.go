package prefs

import (
	"errors"
	"testing"

	"github.com/playpen-cli/playpen/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

// brokenStorage fails every operation, simulating an unavailable or full medium.
type brokenStorage struct{}

func (brokenStorage) Read(string) ([]byte, bool, error) {
	return nil, false, errors.New("storage unavailable")
}

func (brokenStorage) Write(string, []byte) error {
	return errors.New("quota exceeded")
}

func TestStoreDefaults(t *testing.T) {
	Convey("Given empty storage", t, func() {
		storage := NewMemoryStorage()

		Convey("A fresh store yields its default", func() {
			volume := New(storage, KeyVolume, 0.5)
			So(volume.Get(), ShouldEqual, 0.5)

			playing := New(storage, KeyPlaying, false)
			So(playing.Get(), ShouldBeFalse)
		})
	})

	Convey("Given a corrupt durable value", t, func() {
		storage := NewMemoryStorage()
		So(storage.Write(KeyVolume, []byte("not json")), ShouldBeNil)

		Convey("The store falls back to its default without error", func() {
			volume := New(storage, KeyVolume, 0.5)
			So(volume.Get(), ShouldEqual, 0.5)
		})
	})

	Convey("Given unavailable storage", t, func() {
		Convey("The store falls back to its default without error", func() {
			muted := New(brokenStorage{}, KeyMuted, true)
			So(muted.Get(), ShouldBeTrue)
		})
	})
}

func TestStoreSet(t *testing.T) {
	Convey("Given a store over working storage", t, func() {
		storage := NewMemoryStorage()
		volume := New(storage, KeyVolume, 0.5)

		Convey("Set followed by Get returns the new value", func() {
			volume.Set(0.8)
			So(volume.Get(), ShouldEqual, 0.8)
		})

		Convey("A fresh store over the same storage re-hydrates the written value", func() {
			volume.Set(0.8)

			rehydrated := New(storage, KeyVolume, 0.5)
			So(rehydrated.Get(), ShouldEqual, 0.8)
		})
	})

	Convey("Given a store over failing storage", t, func() {
		volume := New(brokenStorage{}, KeyVolume, 0.5)

		Convey("Set still updates the in-memory value", func() {
			volume.Set(0.8)
			So(volume.Get(), ShouldEqual, 0.8)
		})
	})
}

func TestDiskStorage(t *testing.T) {
	Convey("Given a disk storage over the in-memory filesystem", t, func() {
		storage := NewDiskStorage()

		Convey("An unknown key reads as absent", func() {
			_, ok, err := storage.Read(KeyHiddenVideo)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey("Written values survive a fresh storage instance", func() {
			So(storage.Write(KeyMuted, []byte("true")), ShouldBeNil)

			reopened := NewDiskStorage()
			raw, ok, err := reopened.Read(KeyMuted)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(string(raw), ShouldEqual, "true")
		})
	})
}
