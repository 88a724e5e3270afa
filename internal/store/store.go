// Package store holds the simulated git configuration: an ordered, in-memory
// mapping of dot-namespaced keys to string values.
package store

import (
	"slices"
	"strings"
)

// Entry is a single key/value pair of the configuration store.
type Entry struct {
	Key   string
	Value string
}

// String renders the entry the way `git config --list` prints it.
func (e Entry) String() string {
	return e.Key + "=" + e.Value
}

// DefaultSeed returns the entries every new session starts with.
func DefaultSeed() []Entry {
	return []Entry{
		{Key: "user.name", Value: "Learner"},
		{Key: "user.email", Value: "learner@example.com"},
		{Key: "core.editor", Value: "vim"},
		{Key: "init.defaultBranch", Value: "main"},
	}
}

// Store is an ordered key/value map. Keys keep the position of their first
// insertion; overwriting a key does not move it. Deleting a key removes it
// entirely, a later Set appends it again at the end.
//
// A Store is owned by a single session and is not safe for concurrent use.
type Store struct {
	keys   []string
	values map[string]string
}

// New creates a store seeded with the given entries, in order.
func New(seed ...Entry) *Store {
	s := &Store{
		keys:   make([]string, 0, len(seed)),
		values: make(map[string]string, len(seed)),
	}
	for _, e := range seed {
		s.Set(e.Key, e.Value)
	}
	return s
}

// NewSeeded creates a store holding DefaultSeed.
func NewSeeded() *Store {
	return New(DefaultSeed()...)
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key, last write wins.
func (s *Store) Set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Unset removes key and reports whether it was present.
func (s *Store) Unset(key string) bool {
	if _, ok := s.values[key]; !ok {
		return false
	}
	delete(s.values, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
	return true
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.keys)
}

// Entries returns a snapshot of all entries in iteration order.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.keys))
	for _, k := range s.keys {
		entries = append(entries, Entry{Key: k, Value: s.values[k]})
	}
	return entries
}

// ParseEntry parses a "key=value" string. The key is trimmed, the value is
// kept verbatim.
func ParseEntry(raw string) (Entry, bool) {
	key, value, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return Entry{}, false
	}
	return Entry{Key: key, Value: value}, true
}
