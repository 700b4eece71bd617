package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	id "tpb/pkg/domain"
	"tpb/pkg/platform/sentinel"
)

type entry struct {
	userID    id.UserID
	expiresAt time.Time
}

// InMemory is a session store for tests and single-process runs.
type InMemory struct {
	mu       sync.RWMutex
	sessions map[string]entry
	now      func() time.Time
}

func NewInMemory() *InMemory {
	return &InMemory{sessions: make(map[string]entry), now: time.Now}
}

func (s *InMemory) Create(_ context.Context, userID id.UserID, ttl time.Duration) (string, error) {
	sessionID := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = entry{userID: userID, expiresAt: s.now().Add(ttl)}
	return sessionID, nil
}

func (s *InMemory) Lookup(_ context.Context, sessionID string) (id.UserID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[sessionID]
	if !ok || !s.now().Before(e.expiresAt) {
		return 0, sentinel.ErrNotFound
	}
	return e.userID, nil
}

func (s *InMemory) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
