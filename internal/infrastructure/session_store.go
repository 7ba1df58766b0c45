package infrastructure

import (
	"context"
	"sync"
	"time"
)

// SessionStore maps opaque session ids to user ids. Get reports false for
// unknown, deleted, or expired sessions; it never errors for those cases.
type SessionStore interface {
	Put(ctx context.Context, sessionID string, userID uint) error
	Get(ctx context.Context, sessionID string) (uint, bool, error)
	Delete(ctx context.Context, sessionID string) error
}

type memorySession struct {
	userID    uint
	expiresAt time.Time
}

// MemorySessionStore is the single-node default. Sessions die with the
// process, which is acceptable in scope.
type MemorySessionStore struct {
	mutex    sync.RWMutex
	sessions map[string]memorySession
	ttl      time.Duration
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	s := &MemorySessionStore{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
	}
	go s.cleanupStaleEntries()
	return s
}

func (s *MemorySessionStore) Put(ctx context.Context, sessionID string, userID uint) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.sessions[sessionID] = memorySession{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (uint, bool, error) {
	s.mutex.RLock()
	session, ok := s.sessions[sessionID]
	s.mutex.RUnlock()

	if !ok || time.Now().After(session.expiresAt) {
		return 0, false, nil
	}
	return session.userID, true, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *MemorySessionStore) cleanupStaleEntries() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.mutex.Lock()
		for id, session := range s.sessions {
			if now.After(session.expiresAt) {
				delete(s.sessions, id)
			}
		}
		s.mutex.Unlock()
	}
}
