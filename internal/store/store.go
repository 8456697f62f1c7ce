// Package store holds the latest known status record for each monitored host.
//
// The host set is fixed at construction and never grows or shrinks. Exactly
// one monitor goroutine writes a given host's record; any number of viewer
// sessions read concurrently, so access is guarded by a single RWMutex.
package store

import "sync"

// Record is the latest status text stored for a host. The body carries raw
// terminal output (with ANSI escapes), a placeholder line, or a terminal
// error line once the host's monitor has given up.
type Record struct {
	Host string
	Body string
}

// Store maps host names to their latest records, preserving the order in
// which hosts were first registered.
type Store struct {
	mu      sync.RWMutex
	order   []string
	records map[string]string
}

// New creates a store with an entry for every host, in the given order.
// Duplicate names are registered once; bodies start empty.
func New(hosts []string) *Store {
	s := &Store{
		records: make(map[string]string, len(hosts)),
	}
	for _, h := range hosts {
		if _, ok := s.records[h]; ok {
			continue
		}
		s.order = append(s.order, h)
		s.records[h] = ""
	}
	return s
}

// Set overwrites the record body for a registered host. Writes for hosts
// that were not registered at construction are ignored; the host set is
// fixed for the process lifetime.
func (s *Store) Set(host, body string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[host]; !ok {
		return false
	}
	s.records[host] = body
	return true
}

// Get returns the current record body for a host.
func (s *Store) Get(host string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	body, ok := s.records[host]
	return body, ok
}

// Hosts returns the registered host names in registration order.
func (s *Store) Hosts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Entries returns a point-in-time copy of all records in registration order.
func (s *Store) Entries() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.order))
	for _, h := range s.order {
		out = append(out, Record{Host: h, Body: s.records[h]})
	}
	return out
}

// Len returns the number of registered hosts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
