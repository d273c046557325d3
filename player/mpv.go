package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/playpen-cli/playpen/key"
	"github.com/playpen-cli/playpen/log"
	"github.com/spf13/viper"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
)

// MPV implements the Player interface using mpv's JSON-IPC protocol.
type MPV struct {
	socketPath string
	cmd        *exec.Cmd
	listener   *eventListener
	callbacks  Callbacks

	mu sync.Mutex // Protects socket writes

	stateMu    sync.Mutex    // Guards process and ticker lifecycle state
	exited     chan struct{} // closed when mpv process exits
	tickerStop chan struct{} // signals the progress ticker to stop
	interval   time.Duration
}

// NewMPV creates a new MPV player instance (does not start playback).
func NewMPV() *MPV {
	return &MPV{
		exited:   make(chan struct{}),
		interval: time.Second,
	}
}

// Load starts mpv (if needed) and loads the given source URL. A fresh
// process starts paused and idle so the debug session controls every
// state transition explicitly.
func (m *MPV) Load(rawURL string) error {
	// Sanitize the URL to prevent flag injection from untrusted input
	safeURL, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if m.socketPath != "" && m.IsRunning() {
		// Engine already up: swap the source over IPC.
		_, err := m.sendCommand([]interface{}{"loadfile", safeURL, "replace"})
		return err
	}

	// Generate a random socket path using os.TempDir() for cross-platform support
	// (macOS $TMPDIR is /var/folders/... not /tmp/)
	if m.socketPath == "" {
		randomBytes := make([]byte, 4)
		if _, err := rand.Read(randomBytes); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(os.TempDir(), fmt.Sprintf("playpen-%x.sock", randomBytes))
	}

	// Build mpv arguments. Pass ONLY the socket and debug-session flags;
	// respect the user's mpv.conf for everything else.
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		"--force-window=yes",
		"--idle=yes",
		"--pause=yes",
		safeURL,
	}

	m.cmd = exec.Command(viper.GetString(key.PlayerPath), args...)

	// Detach from parent process group to prevent cascading shell panics.
	m.cmd.SysProcAttr = sysProcAttr()

	// Disable standard pipes to prevent resource leaks.
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	// Background goroutine to reap the process and prevent zombies
	exited := make(chan struct{})
	m.stateMu.Lock()
	m.exited = exited
	m.stateMu.Unlock()
	go func() {
		_ = m.cmd.Wait()
		close(exited)
	}()

	// Wait for the IPC socket to become available
	if err := m.waitForSocket(); err != nil {
		// If socket never became ready, kill the orphaned process
		if m.cmd.Process != nil {
			select {
			case <-exited:
				// Already exited
			default:
				log.Warnf("killing mpv: socket never became ready")
				_ = m.cmd.Process.Kill()
			}
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	return nil
}

// Wait returns a channel that is closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exitedChan()
}

// exitedChan returns the exit channel of the current mpv process.
// Load replaces the channel on restart, so readers must go through here.
func (m *MPV) exitedChan() chan struct{} {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()

	return m.exited
}

// waitForSocket polls until the mpv IPC socket is accepting connections.
func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		// Check if process already exited
		select {
		case <-m.exitedChan():
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// SetPlaying resumes or suspends playback via the pause property.
func (m *MPV) SetPlaying(playing bool) error {
	return m.setProperty("pause", !playing)
}

// SetVolume sets the output volume; the fraction is mapped to mpv's 0-100 scale.
func (m *MPV) SetVolume(fraction float64) error {
	if fraction < 0 || fraction > 1 {
		return fmt.Errorf("volume fraction %v out of range [0,1]", fraction)
	}
	return m.setProperty("volume", fraction*100)
}

// SetMuted sets the audio mute flag.
func (m *MPV) SetMuted(muted bool) error {
	return m.setProperty("mute", muted)
}

// SetVideoHidden disables or restores the video track while audio keeps playing.
func (m *MPV) SetVideoHidden(hidden bool) error {
	if hidden {
		return m.setProperty("vid", "no")
	}
	return m.setProperty("vid", "auto")
}

// SetProgressInterval adjusts the cadence of progress reports.
// Takes effect the next time the progress ticker starts.
func (m *MPV) SetProgressInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}

	m.stateMu.Lock()
	defer m.stateMu.Unlock()
	m.interval = interval
}

// CurrentTime returns the current playback position in seconds.
func (m *MPV) CurrentTime() (float64, error) {
	return m.getFloatProperty("time-pos")
}

// TotalDuration returns the total duration of the current media in seconds.
func (m *MPV) TotalDuration() (float64, error) {
	return m.getFloatProperty("duration")
}

// Seek moves playback to the given absolute position in seconds.
func (m *MPV) Seek(seconds float64) error {
	_, err := m.sendCommand([]interface{}{"seek", seconds, "absolute"})
	return err
}

// IsRunning reports whether mpv is responding to IPC commands.
func (m *MPV) IsRunning() bool {
	if m.socketPath == "" {
		return false
	}

	// Fast check: process already exited?
	select {
	case <-m.exitedChan():
		return false
	default:
	}

	_, err := m.sendCommand([]interface{}{"get_property", "pid"})
	return err == nil
}

// Subscribe registers the callback set, starts the property observation
// listener, and begins periodic progress reporting.
func (m *MPV) Subscribe(cb Callbacks) error {
	m.callbacks = cb

	m.listener = newEventListener(m.socketPath, m, cb)
	if err := m.listener.start(); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	m.startProgressTicker()
	return nil
}

// snapshot assembles a full playback snapshot from current engine properties.
func (m *MPV) snapshot() (Snapshot, error) {
	pos, err := m.CurrentTime()
	if err != nil {
		return Snapshot{}, err
	}

	dur, err := m.TotalDuration()
	if err != nil {
		// Duration can be unknown for live streams; report position only.
		dur = 0
	}

	// demuxer-cache-time is the absolute timestamp buffered ahead of the cursor.
	loadedSec, err := m.getFloatProperty("demuxer-cache-time")
	if err != nil {
		loadedSec = pos
	}

	snap := Snapshot{
		Duration:      dur,
		PlayedSeconds: pos,
		LoadedSeconds: loadedSec,
	}
	if dur > 0 {
		snap.Played = clampFraction(pos / dur)
		snap.Loaded = clampFraction(loadedSec / dur)
	}
	return snap, nil
}

// startProgressTicker starts a background ticker that assembles a snapshot
// and dispatches OnProgress at the configured interval.
func (m *MPV) startProgressTicker() {
	if m.callbacks.OnProgress == nil {
		return
	}

	m.stateMu.Lock()
	if m.tickerStop != nil {
		// Ticker already running
		m.stateMu.Unlock()
		return
	}
	stop := make(chan struct{})
	m.tickerStop = stop
	interval := m.interval
	exited := m.exited
	m.stateMu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-exited:
				m.releaseTicker(stop)
				return
			case <-ticker.C:
				if !m.IsRunning() {
					continue
				}

				snap, err := m.snapshot()
				if err != nil {
					continue
				}

				m.callbacks.OnProgress(snap)
			}
		}
	}()
}

// releaseTicker frees the ticker slot if it still belongs to the given run.
func (m *MPV) releaseTicker(stop chan struct{}) {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()

	if m.tickerStop == stop {
		m.tickerStop = nil
	}
}

// stopProgressTicker stops the background ticker if it's running.
func (m *MPV) stopProgressTicker() {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()

	if m.tickerStop != nil {
		close(m.tickerStop)
		m.tickerStop = nil
	}
}

// Close shuts down the mpv process and cleans up resources.
func (m *MPV) Close() error {
	m.stopProgressTicker()

	if m.listener != nil {
		m.listener.stop()
	}

	if m.socketPath == "" {
		return nil
	}

	// Try graceful quit via IPC
	_, _ = m.sendCommand([]interface{}{"quit"})

	// Wait for process to exit (with timeout)
	select {
	case <-m.exitedChan():
		// Clean exit
	case <-time.After(3 * time.Second):
		// Force kill if graceful quit didn't work
		_ = killProcess(m.cmd)
	}

	// Clean up the socket file
	_ = os.Remove(m.socketPath)

	return nil
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	return m.socketPath
}

// setProperty assigns an mpv property over IPC.
func (m *MPV) setProperty(property string, value interface{}) error {
	_, err := m.sendCommand([]interface{}{"set_property", property, value})
	return err
}

// getFloatProperty is a helper to retrieve a float64 mpv property via IPC.
func (m *MPV) getFloatProperty(name string) (float64, error) {
	data, err := m.sendCommand([]interface{}{"get_property", name})
	if err != nil {
		return 0, err
	}

	if data == nil {
		return 0, fmt.Errorf("property %s: nil response", name)
	}

	val, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}

	return val, nil
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// sanitizeMediaTarget validates that a URL is safe to pass to mpv.
// Prevents flag injection from untrusted input.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	// Reject control characters
	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	// Prevent flag injection: URLs must not start with -
	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	// If it contains "://", validate as URL
	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	// Treat as local file path
	return filepath.Clean(l), nil
}
