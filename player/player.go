// Package player defines a unified abstraction layer for media playback engines.
// The architecture supports multiple backends, with the primary implementation targeting 'mpv' via its JSON-IPC interface.
package player

import "time"

// Snapshot is a point-in-time readout of playback progress, duration, and buffering.
// Played and Loaded are fractions in [0,1]; the remaining fields are seconds.
// A snapshot is always produced wholesale, never partially updated.
type Snapshot struct {
	Duration      float64 `json:"duration"`
	Played        float64 `json:"played"`
	PlayedSeconds float64 `json:"playedSeconds"`
	Loaded        float64 `json:"loaded"`
	LoadedSeconds float64 `json:"loadedSeconds"`
}

// Callbacks is the notification surface produced by a playback engine.
// Nil members are simply skipped at dispatch time.
type Callbacks struct {
	// OnReady fires once the engine has loaded the media and is ready to play.
	OnReady func()

	// OnStart fires the first time playback actually begins for the loaded media.
	OnStart func()

	// OnPlay fires whenever playback transitions from paused to playing.
	OnPlay func()

	// OnPause fires whenever playback transitions from playing to paused.
	OnPause func()

	// OnEnded fires when the media reaches its end.
	OnEnded func()

	// OnError fires with a human-readable message when the engine reports a failure.
	OnError func(message string)

	// OnProgress fires at the configured progress interval with a full snapshot.
	OnProgress func(Snapshot)

	// OnDuration fires when the engine learns the total media duration in seconds.
	OnDuration func(seconds float64)

	// OnSeek fires when a playback position jump is observed, with the new position in seconds.
	OnSeek func(seconds float64)
}

// Player encapsulates the required capabilities for a media playback backend.
type Player interface {
	// Load starts the engine (if needed) and loads the given source URL.
	Load(url string) error

	// SetPlaying sets the playing flag: true resumes playback, false suspends it.
	SetPlaying(playing bool) error

	// SetVolume sets the output volume as a fraction in [0,1].
	SetVolume(fraction float64) error

	// SetMuted sets the audio mute flag.
	SetMuted(muted bool) error

	// SetVideoHidden toggles video track visibility while audio keeps playing.
	SetVideoHidden(hidden bool) error

	// SetProgressInterval adjusts the cadence of OnProgress reports.
	SetProgressInterval(interval time.Duration)

	// CurrentTime retrieves the current absolute playback position in seconds.
	CurrentTime() (float64, error)

	// TotalDuration retrieves the total temporal length of the active media in seconds.
	TotalDuration() (float64, error)

	// Seek transitions the playback position to a specific absolute timestamp in seconds.
	Seek(seconds float64) error

	// Subscribe registers the callback set and starts event observation.
	Subscribe(cb Callbacks) error

	// IsRunning validates the liveness of the underlying playback process or handler.
	IsRunning() bool

	// Socket retrieves the identifier for the Inter-Process Communication (IPC) channel.
	Socket() string

	// Close terminates the playback engine and releases all associated system resources.
	Close() error

	// Wait returns a channel that is closed when the playback session terminates.
	Wait() <-chan struct{}
}
