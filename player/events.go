// Package player defines a unified abstraction layer for media playback engines.
package player

import (
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/playpen-cli/playpen/log"
)

// eventListener provides real-time mpv event monitoring via observe_property,
// translating raw IPC notifications into the typed Callbacks surface.
type eventListener struct {
	socketPath string
	conn       net.Conn
	engine     *MPV
	callbacks  Callbacks
	stopCh     chan struct{}
	mu         sync.Mutex
	listening  bool

	started bool            // OnStart fired for the current media
	primed  map[string]bool // properties whose initial observe notification was consumed
}

// newEventListener creates a new event listener for the given socket.
func newEventListener(socketPath string, engine *MPV, callbacks Callbacks) *eventListener {
	return &eventListener{
		socketPath: socketPath,
		engine:     engine,
		callbacks:  callbacks,
		stopCh:     make(chan struct{}),
		primed:     make(map[string]bool),
	}
}

// start begins listening for mpv property change events.
// It sets up property observers and starts a dedicated read loop.
func (el *eventListener) start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.listening {
		return nil
	}

	// Subscribe to property change events via IPC
	// observe_property <id> <property> — mpv sends notifications when they change
	properties := []struct {
		id   int
		name string
	}{
		{1, "pause"},       // play/pause transitions
		{2, "duration"},    // total media length discovery
		{3, "eof-reached"}, // media completion detection
	}

	for _, prop := range properties {
		_, err := doSendCommand(el.socketPath, []interface{}{"observe_property", prop.id, prop.name})
		if err != nil {
			return fmt.Errorf("observe %s: %w", prop.name, err)
		}
	}

	// Open a persistent connection for the event read loop
	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}
	el.conn = conn
	el.listening = true

	// Start the event read loop in a background goroutine
	go el.readLoop()

	log.Infof("mpv event listener started on %s (observing: pause, duration, eof-reached)", el.socketPath)
	return nil
}

// stop terminates the event listener.
func (el *eventListener) stop() {
	el.mu.Lock()
	defer el.mu.Unlock()

	if !el.listening {
		return
	}

	close(el.stopCh)
	if el.conn != nil {
		el.conn.Close()
	}
	el.listening = false
}

// readLoop continuously reads events from the persistent mpv connection.
// mpv sends newline-delimited JSON events when observed properties change.
func (el *eventListener) readLoop() {
	defer func() {
		el.mu.Lock()
		el.listening = false
		el.mu.Unlock()
	}()

	buf := make([]byte, 4096)
	var remainder []byte

	for {
		select {
		case <-el.stopCh:
			return
		default:
		}

		// Set read deadline to avoid blocking forever
		if err := el.conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
			return
		}

		n, err := el.conn.Read(buf)
		if err != nil {
			if strings.Contains(err.Error(), "timeout") || strings.Contains(err.Error(), "deadline") {
				continue // timeout is normal, keep listening
			}
			log.Warnf("event listener read error: %v", err)
			return
		}

		// mpv sends multiple JSON objects separated by newlines
		data := append(remainder, buf[:n]...)
		remainder = nil

		lines := strings.Split(string(data), "\n")
		for i, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			// Last incomplete line goes to remainder for next read
			if i == len(lines)-1 && !strings.HasSuffix(string(data), "\n") {
				remainder = []byte(line)
				continue
			}

			el.processEvent(line)
		}
	}
}

// processEvent parses a single mpv event JSON line and dispatches the matching callback.
func (el *eventListener) processEvent(line string) {
	var event map[string]interface{}
	if err := json.Unmarshal([]byte(line), &event); err != nil {
		return // Skip unparseable lines
	}

	eventType, ok := event["event"].(string)
	if !ok {
		return
	}

	switch eventType {
	case "property-change":
		name, _ := event["name"].(string)
		el.dispatchProperty(name, event["data"])

	case "file-loaded":
		el.started = false
		if el.callbacks.OnReady != nil {
			el.callbacks.OnReady()
		}

	case "playback-restart":
		// Fires once when playback first begins, and again after each seek.
		if !el.started {
			el.started = true
			if el.callbacks.OnStart != nil {
				el.callbacks.OnStart()
			}
		}

	case "seek":
		if el.callbacks.OnSeek != nil {
			pos, err := el.engine.CurrentTime()
			if err != nil {
				pos = 0
			}
			el.callbacks.OnSeek(pos)
		}

	case "end-file":
		if reason, _ := event["reason"].(string); reason == "error" {
			if el.callbacks.OnError != nil {
				detail, _ := event["file_error"].(string)
				if detail == "" {
					detail = "playback failed"
				}
				el.callbacks.OnError(detail)
			}
		}
	}
}

// dispatchProperty translates an observed property change into its callback.
// The first notification per property reflects the pre-existing state, not a
// transition, and is consumed silently.
func (el *eventListener) dispatchProperty(name string, data interface{}) {
	if name == "" {
		return
	}

	if !el.primed[name] {
		el.primed[name] = true
		return
	}

	switch name {
	case "pause":
		paused, ok := data.(bool)
		if !ok {
			return
		}
		if paused {
			if el.callbacks.OnPause != nil {
				el.callbacks.OnPause()
			}
		} else if el.callbacks.OnPlay != nil {
			el.callbacks.OnPlay()
		}

	case "duration":
		seconds, ok := data.(float64)
		if !ok {
			return
		}
		if el.callbacks.OnDuration != nil {
			el.callbacks.OnDuration(seconds)
		}

	case "eof-reached":
		reached, ok := data.(bool)
		if !ok || !reached {
			return
		}
		if el.callbacks.OnEnded != nil {
			el.callbacks.OnEnded()
		}
	}
}
