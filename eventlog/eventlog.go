// Package eventlog implements a bounded, newest-first registry of playback callback occurrences.
package eventlog

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Capacity is the fixed maximum number of entries retained by a Log.
const Capacity = 50

// now is the clock used for entry timestamps; swapped out in tests.
var now = time.Now

// Payload is an arbitrary key/value bag attached to a recorded callback.
type Payload map[string]any

// Entry represents a single recorded callback occurrence.
type Entry struct {
	Timestamp string `json:"timestamp" jsonschema:"description=Locale time-of-day at which the callback fired"`
	Event     string `json:"event" jsonschema:"description=Name of the playback callback"`
	Data      string `json:"data" jsonschema:"description=Serialized key/value payload attached to the callback"`
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s %s", e.Timestamp, e.Event, e.Data)
}

// Log is a fixed-capacity, newest-first sequence of entries.
// It is safe for concurrent use: the playback IPC listener and the UI loop both touch it.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns an empty event log.
func New() *Log {
	return &Log{}
}

// Append records a callback occurrence at the head of the sequence,
// timestamping it at call time and serializing the payload to a string.
// The tail is truncated so the log never exceeds Capacity entries.
func (l *Log) Append(event string, payload Payload) {
	entry := Entry{
		Timestamp: now().Format("15:04:05"),
		Event:     event,
		Data:      serialize(payload),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > Capacity {
		l.entries = l.entries[:Capacity]
	}
}

// Clear empties the sequence.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
}

// Entries returns a snapshot copy of the sequence, newest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the current number of retained entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// Filter returns the entries whose event name fuzzy-matches the query, newest first.
// An empty query matches everything.
func (l *Log) Filter(query string) []Entry {
	if query == "" {
		return l.Entries()
	}

	return lo.Filter(l.Entries(), func(e Entry, _ int) bool {
		return fuzzy.MatchFold(query, e.Event)
	})
}

// serialize renders a payload as a compact JSON object string.
// Plain key/value payloads are assumed to always marshal; anything
// exotic degrades to fmt formatting rather than failing.
func serialize(payload Payload) string {
	if len(payload) == 0 {
		return "{}"
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(payload))
	}
	return string(raw)
}
