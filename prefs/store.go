package prefs

import (
	"encoding/json"

	"github.com/playpen-cli/playpen/log"
)

// Store is a typed preference mirrored into durable storage.
// The value type is fixed per key for the lifetime of the store.
//
// No locking: stores are touched only from the UI loop.
type Store[T any] struct {
	storage Storage
	key     string
	value   T
}

// New creates a store for key, re-hydrating its value from storage.
// An absent, corrupt, or unreadable durable value silently falls back
// to the provided default.
func New[T any](storage Storage, key string, fallback T) *Store[T] {
	s := &Store[T]{
		storage: storage,
		key:     key,
		value:   fallback,
	}

	raw, ok, err := storage.Read(key)
	if err != nil {
		log.Debugf("prefs: read %q: %v", key, err)
		return s
	}
	if !ok {
		return s
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Debugf("prefs: decode %q: %v", key, err)
		return s
	}

	s.value = v
	return s
}

// Get returns the current in-memory value.
func (s *Store[T]) Get() T {
	return s.value
}

// Set updates the in-memory value unconditionally and best-effort persists it.
// A persistence failure is swallowed so the session stays consistent even
// when durability is unavailable.
func (s *Store[T]) Set(v T) {
	s.value = v

	raw, err := json.Marshal(v)
	if err != nil {
		log.Debugf("prefs: encode %q: %v", s.key, err)
		return
	}

	if err := s.storage.Write(s.key, raw); err != nil {
		log.Debugf("prefs: write %q: %v", s.key, err)
	}
}

// Key returns the durable storage key this store is bound to.
func (s *Store[T]) Key() string {
	return s.key
}
