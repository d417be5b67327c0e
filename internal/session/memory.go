package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/skytrip/booking-engine/internal/domain"
	"github.com/skytrip/booking-engine/internal/infrastructure/timeutil"
)

// Memory is an in-process Store backed by a map. Sessions are stored as
// JSON bytes so Get always returns a private copy, matching the aliasing
// semantics of the Redis store. Expired entries are dropped lazily on access.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	clock   timeutil.Clock
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemory creates a memory store with the given session TTL.
// A nil clock defaults to the system clock.
func NewMemory(ttl time.Duration, clock timeutil.Clock) *Memory {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Memory{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get implements Store.Get.
func (m *Memory) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	entry, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if m.clock.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, id)
		m.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}

	var s Session
	if err := json.Unmarshal(entry.data, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &s, nil
}

// Put implements Store.Put.
func (m *Memory) Put(_ context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", s.ID, err)
	}

	m.mu.Lock()
	m.entries[s.ID] = memoryEntry{
		data:      data,
		expiresAt: m.clock.Now().Add(m.ttl),
	}
	m.mu.Unlock()
	return nil
}

// Delete implements Store.Delete.
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}

// Close implements Store.Close. The memory store holds no resources.
func (m *Memory) Close() error {
	return nil
}

// Len returns the number of stored sessions, including not-yet-swept
// expired ones. Intended for tests.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

var _ Store = (*Memory)(nil)
