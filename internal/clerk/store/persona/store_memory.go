package persona

import (
	"context"
	"sync"
	"time"

	"tpb/internal/clerk/models"
	id "tpb/pkg/domain"
	"tpb/pkg/platform/sentinel"
)

// InMemory is a persona catalog for tests and local runs.
type InMemory struct {
	mu           sync.RWMutex
	nextID       id.ClerkID
	personas     map[string]*models.Persona
	interactions map[id.ClerkID]int64
}

func NewInMemory() *InMemory {
	return &InMemory{
		nextID:       1,
		personas:     make(map[string]*models.Persona),
		interactions: make(map[id.ClerkID]int64),
	}
}

// Save inserts or replaces the persona with p.Key and sets p.ID.
func (s *InMemory) Save(_ context.Context, p *models.Persona) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.personas[p.Key]; ok {
		p.ID = existing.ID
	} else {
		p.ID = s.nextID
		s.nextID++
	}
	s.personas[p.Key] = clonePersona(p)
	return nil
}

// FindByKey returns an enabled persona.
func (s *InMemory) FindByKey(_ context.Context, key string) (*models.Persona, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.personas[key]
	if !ok || !p.Enabled {
		return nil, sentinel.ErrNotFound
	}
	return clonePersona(p), nil
}

func (s *InMemory) RecordInteraction(_ context.Context, clerkID id.ClerkID, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactions[clerkID]++
	return nil
}

// Interactions returns the recorded count for clerkID.
func (s *InMemory) Interactions(clerkID id.ClerkID) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.interactions[clerkID]
}

func clonePersona(p *models.Persona) *models.Persona {
	c := *p
	c.Capabilities = append([]string{}, p.Capabilities...)
	return &c
}
