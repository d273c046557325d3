package session

import (
	"time"

	"github.com/playpen-cli/playpen/eventlog"
)

// ToggleDelay is the fixed suspension window of the deferred toggle.
const ToggleDelay = 500 * time.Millisecond

// ToggleHandle controls one in-flight deferred toggle. Each invocation gets
// an independent handle; overlapping toggles are deliberately not coalesced,
// every uncancelled timer eventually restores playback.
type ToggleHandle struct {
	timer *time.Timer
}

// Cancel stops the pending restore. It reports whether the restore was
// actually prevented; false means the timer already fired.
func (h *ToggleHandle) Cancel() bool {
	return h.timer.Stop()
}

// DeferredToggle exercises the engine's handling of rapid state flips:
// playback is suspended immediately and restored unconditionally after
// ToggleDelay. Firing against a torn-down engine is a tolerated no-op.
func (s *Session) DeferredToggle() *ToggleHandle {
	s.mu.Lock()
	s.events.Append("deferredToggle", eventlog.Payload{"delayMs": ToggleDelay.Milliseconds()})
	s.setPlaying(false)
	s.mu.Unlock()

	return &ToggleHandle{
		timer: time.AfterFunc(ToggleDelay, func() {
			s.SetPlaying(true)
		}),
	}
}
