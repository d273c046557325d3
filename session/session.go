// Package session wires a playback engine, the durable preference stores, and the event log into a single debugging surface.
package session

import (
	"sync"

	"github.com/playpen-cli/playpen/eventlog"
	"github.com/playpen-cli/playpen/log"
	"github.com/playpen-cli/playpen/player"
	"github.com/playpen-cli/playpen/prefs"
)

// Default preference values applied when durable storage has no entry.
const (
	DefaultPlaying     = false
	DefaultVolume      = 0.8
	DefaultMuted       = false
	DefaultHiddenVideo = false
)

// Session owns the debugging state for one playback engine: the typed
// preference stores, the bounded event log, and the last progress snapshot.
//
// The mutex serializes control methods: the UI loop and deferred toggle
// timers both drive the session.
type Session struct {
	mu sync.Mutex

	engine player.Player
	events *eventlog.Log

	playing     *prefs.Store[bool]
	volume      *prefs.Store[float64]
	muted       *prefs.Store[bool]
	hiddenVideo *prefs.Store[bool]

	snapshot  player.Snapshot
	sourceURL string
}

// New creates a session over the given engine, re-hydrating preferences
// from the injected storage.
func New(engine player.Player, storage prefs.Storage, events *eventlog.Log) *Session {
	return &Session{
		engine:      engine,
		events:      events,
		playing:     prefs.New(storage, prefs.KeyPlaying, DefaultPlaying),
		volume:      prefs.New(storage, prefs.KeyVolume, DefaultVolume),
		muted:       prefs.New(storage, prefs.KeyMuted, DefaultMuted),
		hiddenVideo: prefs.New(storage, prefs.KeyHiddenVideo, DefaultHiddenVideo),
	}
}

// Events returns the bounded event log backing this session.
func (s *Session) Events() *eventlog.Log {
	return s.events
}

// Subscribe registers the given callback set with the engine and starts
// event observation. Usually called once with the session's own adapters.
func (s *Session) Subscribe(cb player.Callbacks) error {
	return s.engine.Subscribe(cb)
}

// Close shuts the playback engine down and releases its resources.
func (s *Session) Close() error {
	return s.engine.Close()
}

// Load points the engine at a new source URL and applies the persisted
// preferences to the freshly loaded media.
func (s *Session) Load(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.engine.Load(url); err != nil {
		return err
	}
	s.sourceURL = url
	s.snapshot = player.Snapshot{}

	// Preference application is best-effort: a failing engine property
	// shows up in the event log through its own error callback.
	s.apply()
	return nil
}

// apply pushes the current preference values into the engine. Callers hold the mutex.
func (s *Session) apply() {
	if err := s.engine.SetVolume(s.volume.Get()); err != nil {
		log.Debugf("session: apply volume: %v", err)
	}
	if err := s.engine.SetMuted(s.muted.Get()); err != nil {
		log.Debugf("session: apply muted: %v", err)
	}
	if err := s.engine.SetVideoHidden(s.hiddenVideo.Get()); err != nil {
		log.Debugf("session: apply hidden video: %v", err)
	}
	if err := s.engine.SetPlaying(s.playing.Get()); err != nil {
		log.Debugf("session: apply playing: %v", err)
	}
}

// SourceURL returns the currently loaded source URL.
func (s *Session) SourceURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sourceURL
}

// Snapshot returns the most recent progress snapshot.
func (s *Session) Snapshot() player.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot
}

// Playing reports the current playing preference.
func (s *Session) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.playing.Get()
}

// Volume reports the current volume preference as a fraction in [0,1].
func (s *Session) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.volume.Get()
}

// Muted reports the current mute preference.
func (s *Session) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.muted.Get()
}

// HiddenVideo reports the current hidden-video preference.
func (s *Session) HiddenVideo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.hiddenVideo.Get()
}

// SetPlaying updates the playing preference and drives the engine.
func (s *Session) SetPlaying(playing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setPlaying(playing)
}

// setPlaying is the lock-free core of SetPlaying. Callers hold the mutex.
func (s *Session) setPlaying(playing bool) {
	s.playing.Set(playing)
	if err := s.engine.SetPlaying(playing); err != nil {
		log.Debugf("session: set playing: %v", err)
	}
}

// SetVolume updates the volume preference and drives the engine.
func (s *Session) SetVolume(fraction float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.volume.Set(fraction)
	if err := s.engine.SetVolume(fraction); err != nil {
		log.Debugf("session: set volume: %v", err)
	}
}

// SetMuted updates the mute preference and drives the engine.
func (s *Session) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.muted.Set(muted)
	if err := s.engine.SetMuted(muted); err != nil {
		log.Debugf("session: set muted: %v", err)
	}
}

// SetHiddenVideo updates the hidden-video preference and drives the engine.
func (s *Session) SetHiddenVideo(hidden bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hiddenVideo.Set(hidden)
	if err := s.engine.SetVideoHidden(hidden); err != nil {
		log.Debugf("session: set hidden video: %v", err)
	}
}

// SeekTo invokes the engine's seek primitive directly and logs the requested position.
func (s *Session) SeekTo(seconds float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events.Append("seekTo", eventlog.Payload{"seconds": seconds})
	if err := s.engine.Seek(seconds); err != nil {
		log.Debugf("session: seek: %v", err)
	}
}
