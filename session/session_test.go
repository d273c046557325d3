package session

import (
	"sync"
	"testing"
	"time"

	"github.com/playpen-cli/playpen/eventlog"
	"github.com/playpen-cli/playpen/player"
	"github.com/playpen-cli/playpen/prefs"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeEngine records every capability invocation for assertions.
type fakeEngine struct {
	mu sync.Mutex

	loaded      string
	playing     bool
	volume      float64
	muted       bool
	hidden      bool
	currentTime float64
	sought      []float64
	exited      chan struct{}
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{exited: make(chan struct{})}
}

func (f *fakeEngine) Load(url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = url
	return nil
}

func (f *fakeEngine) SetPlaying(playing bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playing = playing
	return nil
}

func (f *fakeEngine) SetVolume(fraction float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volume = fraction
	return nil
}

func (f *fakeEngine) SetMuted(muted bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.muted = muted
	return nil
}

func (f *fakeEngine) SetVideoHidden(hidden bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hidden = hidden
	return nil
}

func (f *fakeEngine) SetProgressInterval(time.Duration) {}

func (f *fakeEngine) CurrentTime() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentTime, nil
}

func (f *fakeEngine) TotalDuration() (float64, error) { return 120, nil }

func (f *fakeEngine) Seek(seconds float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sought = append(f.sought, seconds)
	return nil
}

func (f *fakeEngine) Subscribe(player.Callbacks) error { return nil }
func (f *fakeEngine) IsRunning() bool                  { return true }
func (f *fakeEngine) Socket() string                   { return "" }
func (f *fakeEngine) Close() error                     { return nil }
func (f *fakeEngine) Wait() <-chan struct{}            { return f.exited }

func (f *fakeEngine) isPlaying() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.playing
}

func newTestSession() (*Session, *fakeEngine) {
	engine := newFakeEngine()
	return New(engine, prefs.NewMemoryStorage(), eventlog.New()), engine
}

func TestLoad(t *testing.T) {
	Convey("Given a fresh session", t, func() {
		s, engine := newTestSession()

		Convey("Load points the engine at the source and applies preferences", func() {
			So(s.Load("https://example.com/clip.mp4"), ShouldBeNil)

			So(engine.loaded, ShouldEqual, "https://example.com/clip.mp4")
			So(engine.volume, ShouldEqual, DefaultVolume)
			So(engine.muted, ShouldEqual, DefaultMuted)
			So(s.SourceURL(), ShouldEqual, "https://example.com/clip.mp4")
		})
	})
}

func TestControls(t *testing.T) {
	Convey("Given a session", t, func() {
		s, engine := newTestSession()

		Convey("SetPlaying drives both the store and the engine", func() {
			s.SetPlaying(true)
			So(s.Playing(), ShouldBeTrue)
			So(engine.isPlaying(), ShouldBeTrue)
		})

		Convey("SetVolume drives both the store and the engine", func() {
			s.SetVolume(0.3)
			So(s.Volume(), ShouldEqual, 0.3)
			So(engine.volume, ShouldEqual, 0.3)
		})

		Convey("SeekTo hits the seek primitive and logs the requested position", func() {
			s.SeekTo(30)

			So(engine.sought, ShouldResemble, []float64{30})
			entries := s.Events().Entries()
			So(entries[0].Event, ShouldEqual, "seekTo")
			So(entries[0].Data, ShouldContainSubstring, "30")
		})
	})
}

func TestAdapters(t *testing.T) {
	Convey("Given the session's callback adapters", t, func() {
		s, engine := newTestSession()
		cb := s.Callbacks()

		Convey("Each callback appends its event", func() {
			cb.OnReady()
			cb.OnPlay()
			cb.OnPause()

			entries := s.Events().Entries()
			So(entries[0].Event, ShouldEqual, "onPause")
			So(entries[1].Event, ShouldEqual, "onPlay")
			So(entries[2].Event, ShouldEqual, "onReady")
		})

		Convey("onStart queries the position synchronously", func() {
			engine.currentTime = 42.5
			cb.OnStart()

			entry := s.Events().Entries()[0]
			So(entry.Event, ShouldEqual, "onStart")
			So(entry.Data, ShouldContainSubstring, "42.5")
		})

		Convey("onEnded forces the playing flag false and logs", func() {
			s.SetPlaying(true)
			cb.OnEnded()

			So(s.Playing(), ShouldBeFalse)
			So(s.Events().Entries()[0].Event, ShouldEqual, "onEnded")
		})

		Convey("onError stringifies the failure for display", func() {
			cb.OnError("could not resolve host")

			entry := s.Events().Entries()[0]
			So(entry.Event, ShouldEqual, "onError")
			So(entry.Data, ShouldContainSubstring, "could not resolve host")
		})

		Convey("onProgress overwrites the snapshot wholesale", func() {
			cb.OnProgress(player.Snapshot{
				Duration:      120,
				Played:        0.25,
				PlayedSeconds: 30,
				Loaded:        0.5,
				LoadedSeconds: 60,
			})

			So(s.Snapshot().PlayedSeconds, ShouldEqual, 30)
			So(s.Events().Entries()[0].Event, ShouldEqual, "onProgress")

			cb.OnProgress(player.Snapshot{Duration: 120, PlayedSeconds: 31})
			So(s.Snapshot().PlayedSeconds, ShouldEqual, 31)
			So(s.Snapshot().Loaded, ShouldEqual, 0)
		})

		Convey("onDuration and onSeek carry their seconds payloads", func() {
			cb.OnDuration(120)
			cb.OnSeek(15)

			entries := s.Events().Entries()
			So(entries[0].Event, ShouldEqual, "onSeek")
			So(entries[1].Event, ShouldEqual, "onDuration")
		})
	})
}

func TestDeferredToggle(t *testing.T) {
	Convey("Given a playing session", t, func() {
		s, engine := newTestSession()
		s.SetPlaying(true)

		Convey("The toggle suspends immediately and restores after the delay", func() {
			handle := s.DeferredToggle()
			defer handle.Cancel()

			So(s.Playing(), ShouldBeFalse)
			So(engine.isPlaying(), ShouldBeFalse)

			time.Sleep(ToggleDelay + 200*time.Millisecond)

			So(s.Playing(), ShouldBeTrue)
			So(engine.isPlaying(), ShouldBeTrue)
		})

		Convey("Cancel prevents the restore", func() {
			handle := s.DeferredToggle()
			So(handle.Cancel(), ShouldBeTrue)

			time.Sleep(ToggleDelay + 200*time.Millisecond)

			So(s.Playing(), ShouldBeFalse)
		})

		Convey("Overlapping toggles each restore independently", func() {
			first := s.DeferredToggle()
			second := s.DeferredToggle()
			defer first.Cancel()
			defer second.Cancel()

			So(s.Playing(), ShouldBeFalse)

			time.Sleep(ToggleDelay + 200*time.Millisecond)

			So(s.Playing(), ShouldBeTrue)
		})
	})
}
