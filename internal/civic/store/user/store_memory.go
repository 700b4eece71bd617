package user

import (
	"context"
	"sync"

	"tpb/internal/civic/models"
	id "tpb/pkg/domain"
	"tpb/pkg/platform/sentinel"
)

// InMemory is a thread-safe user store for tests and local runs.
type InMemory struct {
	mu    sync.RWMutex
	users map[id.UserID]*models.User
}

func NewInMemory() *InMemory {
	return &InMemory{users: make(map[id.UserID]*models.User)}
}

// Save inserts or replaces a user.
func (s *InMemory) Save(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = cloneUser(u)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, userID id.UserID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *InMemory) UpdateTown(_ context.Context, userID id.UserID, townID id.TownID, stateID id.StateID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return sentinel.ErrNotFound
	}
	u.TownID = &townID
	u.StateID = &stateID
	return nil
}

func cloneUser(u *models.User) *models.User {
	c := *u
	if u.TownID != nil {
		townID := *u.TownID
		c.TownID = &townID
	}
	if u.StateID != nil {
		stateID := *u.StateID
		c.StateID = &stateID
	}
	return &c
}
