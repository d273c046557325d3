// Package prefs implements typed playback preferences mirrored into durable local storage.
package prefs

// Canonical preference keys shared with the durable store.
const (
	KeyPlaying     = "isPlaying"
	KeyVolume      = "volume"
	KeyHiddenVideo = "hiddenVideo"
	KeyMuted       = "muted"
)

// Storage is the injected durability capability of a preference store.
// Implementations must tolerate concurrent absence of the backing medium;
// a failed read or write must never propagate beyond the store.
type Storage interface {
	// Read returns the raw serialized value for key, reporting presence.
	Read(key string) (value []byte, ok bool, err error)

	// Write persists the raw serialized value for key.
	Write(key string, value []byte) error
}

// MemoryStorage is a volatile Storage backed by a plain map.
// Used when preference persistence is disabled and as a test fake.
type MemoryStorage struct {
	values map[string][]byte
}

// NewMemoryStorage returns an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

// Read returns the stored value for key, if any.
func (m *MemoryStorage) Read(key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Write stores the value for key.
func (m *MemoryStorage) Write(key string, value []byte) error {
	m.values[key] = value
	return nil
}
