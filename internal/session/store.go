package session

import (
	"sync"
	"time"

	"github.com/studydimension/ytdl-bot/pkg/ytdlp"
)

// DefaultTTL bounds how long an abandoned link waits for a format choice.
const DefaultTTL = 30 * time.Minute

// Session is a user's most recently submitted link plus its resolved
// metadata, waiting for an /mp3 or /mp4 choice.
type Session struct {
	URL      string
	Metadata ytdlp.Metadata
}

type entry struct {
	session   Session
	expiresAt time.Time
}

// Manager owns the per-user session map. At most one session per user,
// a new link silently replaces the previous one. Entries expire after
// the TTL so abandoned flows don't accumulate forever.
type Manager struct {
	mu       sync.Mutex
	entries  map[string]entry
	inFlight map[string]struct{}
	ttl      time.Duration
	stop     chan struct{}
}

func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		entries:  make(map[string]entry),
		inFlight: make(map[string]struct{}),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
}

// Put stores the session for userID, replacing any prior one.
func (m *Manager) Put(userID string, s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[userID] = entry{session: s, expiresAt: time.Now().Add(m.ttl)}
}

// Get returns the live session for userID. Expired entries count as absent.
func (m *Manager) Get(userID string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[userID]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(m.entries, userID)
		return Session{}, false
	}
	return e.session, true
}

// Remove drops the session for userID. No-op when absent.
func (m *Manager) Remove(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, userID)
}

// TryAcquire marks userID as having a download in flight. Returns false
// if one is already running, so overlapping /mp3 and /mp4 calls from the
// same user don't race on the same session.
func (m *Manager) TryAcquire(userID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, busy := m.inFlight[userID]; busy {
		return false
	}
	m.inFlight[userID] = struct{}{}
	return true
}

// Release clears the in-flight mark for userID.
func (m *Manager) Release(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inFlight, userID)
}

// StartJanitor sweeps expired entries in the background until Close.
func (m *Manager) StartJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-m.stop:
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

func (m *Manager) Close() {
	close(m.stop)
}

func (m *Manager) sweep() {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, id)
		}
	}
}
