package session

import (
	"github.com/playpen-cli/playpen/eventlog"
	"github.com/playpen-cli/playpen/player"
)

// Callbacks builds the adapter set mapping every playback callback 1:1 onto
// an event log append. The adapters carry no retry or error-translation
// logic beyond stringifying error values for display; the only state they
// mutate is the playing flag, forced false when the media ends.
func (s *Session) Callbacks() player.Callbacks {
	return player.Callbacks{
		OnReady: func() {
			s.events.Append("onReady", nil)
		},

		OnStart: func() {
			// Query the position synchronously at callback time.
			pos, err := s.engine.CurrentTime()
			if err != nil {
				pos = 0
			}
			s.events.Append("onStart", eventlog.Payload{"currentTime": pos})
		},

		OnPlay: func() {
			s.events.Append("onPlay", nil)
		},

		OnPause: func() {
			s.events.Append("onPause", nil)
		},

		OnEnded: func() {
			s.mu.Lock()
			s.playing.Set(false)
			s.mu.Unlock()

			s.events.Append("onEnded", nil)
		},

		OnError: func(message string) {
			s.events.Append("onError", eventlog.Payload{"error": message})
		},

		OnProgress: func(snap player.Snapshot) {
			s.mu.Lock()
			s.snapshot = snap
			s.mu.Unlock()

			s.events.Append("onProgress", eventlog.Payload{
				"duration":      snap.Duration,
				"played":        snap.Played,
				"playedSeconds": snap.PlayedSeconds,
				"loaded":        snap.Loaded,
				"loadedSeconds": snap.LoadedSeconds,
			})
		},

		OnDuration: func(seconds float64) {
			s.events.Append("onDuration", eventlog.Payload{"duration": seconds})
		},

		OnSeek: func(seconds float64) {
			s.events.Append("onSeek", eventlog.Payload{"seconds": seconds})
		},
	}
}
