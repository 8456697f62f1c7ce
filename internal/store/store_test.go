package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersInOrder(t *testing.T) {
	s := New([]string{"c", "a", "b"})

	assert.Equal(t, []string{"c", "a", "b"}, s.Hosts())
	assert.Equal(t, 3, s.Len())

	for _, h := range []string{"a", "b", "c"} {
		body, ok := s.Get(h)
		require.True(t, ok)
		assert.Empty(t, body)
	}
}

func TestNewDeduplicates(t *testing.T) {
	s := New([]string{"a", "b", "a"})
	assert.Equal(t, []string{"a", "b"}, s.Hosts())
}

func TestSetAndGet(t *testing.T) {
	s := New([]string{"a", "b"})

	require.True(t, s.Set("a", "GPU0 OK"))

	body, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "GPU0 OK", body)

	// Sibling record untouched.
	body, ok = s.Get("b")
	require.True(t, ok)
	assert.Empty(t, body)
}

func TestSetUnknownHostIgnored(t *testing.T) {
	s := New([]string{"a"})

	assert.False(t, s.Set("z", "body"))
	assert.Equal(t, []string{"a"}, s.Hosts())

	_, ok := s.Get("z")
	assert.False(t, ok)
}

func TestEntriesPreserveOrder(t *testing.T) {
	hosts := []string{"node3", "node1", "node2"}
	s := New(hosts)
	s.Set("node1", "one")
	s.Set("node2", "two")

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "node3", entries[0].Host)
	assert.Equal(t, "node1", entries[1].Host)
	assert.Equal(t, "node2", entries[2].Host)
	assert.Equal(t, "one", entries[1].Body)
}

func TestEntriesAreACopy(t *testing.T) {
	s := New([]string{"a"})
	s.Set("a", "before")

	entries := s.Entries()
	s.Set("a", "after")

	assert.Equal(t, "before", entries[0].Body)
}

func TestConcurrentAccess(t *testing.T) {
	hosts := make([]string, 8)
	for i := range hosts {
		hosts[i] = fmt.Sprintf("host%d", i)
	}
	s := New(hosts)

	var wg sync.WaitGroup
	// One writer per host (the single-writer-per-key discipline) plus
	// several concurrent readers.
	for _, h := range hosts {
		wg.Add(1)
		go func(h string) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Set(h, fmt.Sprintf("%s update %d", h, i))
			}
		}(h)
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Entries()
				s.Get("host0")
			}
		}()
	}
	wg.Wait()

	for _, h := range hosts {
		body, ok := s.Get(h)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("%s update 99", h), body)
	}
}
