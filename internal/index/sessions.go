package index

import (
	"context"
	"sync"
	"time"
)

type sessionEntry struct {
	query     string
	expiresAt time.Time
}

// MemorySessions keeps session queries in memory.
// It is used when Redis is not configured or unreachable.
type MemorySessions struct {
	mu        sync.RWMutex
	sessions  map[string]sessionEntry // session ID -> query
	lastSweep time.Time
	now       func() time.Time
}

// NewMemorySessions creates an empty in-memory session store
func NewMemorySessions() *MemorySessions {
	return &MemorySessions{
		sessions: make(map[string]sessionEntry),
		now:      time.Now,
	}
}

// GetQuery returns the stored query of a live session
func (m *MemorySessions) GetQuery(_ context.Context, id string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.sessions[id]
	if !ok || !m.now().Before(entry.expiresAt) {
		return "", false, nil
	}
	return entry.query, true, nil
}

// SaveQuery stores the query of a session for ttl
func (m *MemorySessions) SaveQuery(_ context.Context, id, query string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = sessionEntry{query: query, expiresAt: m.now().Add(ttl)}
	return nil
}

// Count returns the number of sessions held, expired ones included until swept
func (m *MemorySessions) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions), nil
}

// Sweep removes sessions expired at now and returns how many were removed
func (m *MemorySessions) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, entry := range m.sessions {
		if !now.Before(entry.expiresAt) {
			delete(m.sessions, id)
			removed++
		}
	}
	m.lastSweep = now
	return removed
}

// GetLastSweep returns the timestamp of the last sweep
func (m *MemorySessions) GetLastSweep() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastSweep
}
