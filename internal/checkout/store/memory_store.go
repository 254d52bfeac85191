package store

import (
	"sync"
	"time"

	"github.com/Shubhamqu2002/F.M.E.S-Service/internal/checkout/domain"
)

const (
	// DefaultSessionTTL is how long an untouched checkout session survives
	DefaultSessionTTL = 1 * time.Hour

	// CleanupInterval is how often the background cleanup runs
	CleanupInterval = 30 * time.Second
)

// MemoryStore implements SessionStore with in-memory storage. Expiring a
// session only drops the session itself; the shopper's cart is untouched.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session // sessionID -> checkout session
	ttl      time.Duration

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewMemoryStore creates a new in-memory session store. Sessions idle longer
// than ttl are dropped; ttl <= 0 means DefaultSessionTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	s := &MemoryStore{
		sessions:    make(map[string]*domain.Session),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

func (s *MemoryStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.dropIdle()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *MemoryStore) dropIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for sessionID, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(s.sessions, sessionID)
		}
	}
}

func (s *MemoryStore) Get(sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[sessionID]
	if !exists {
		return nil, ErrSessionNotFound
	}

	dup := *session
	return &dup, nil
}

func (s *MemoryStore) Put(session *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dup := *session
	s.sessions[session.SessionID] = &dup
}

func (s *MemoryStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}

// Close stops the background cleanup and waits for it to finish
func (s *MemoryStore) Close() error {
	close(s.stopCleanup)
	s.wg.Wait()
	return nil
}
