package location

import (
	"context"
	"strings"
	"sync"

	"tpb/internal/civic/models"
	id "tpb/pkg/domain"
	"tpb/pkg/platform/sentinel"
)

// InMemory holds states and towns for tests and local runs.
type InMemory struct {
	mu     sync.RWMutex
	states map[id.StateID]*models.State
	towns  map[id.TownID]*models.Town
}

func NewInMemory() *InMemory {
	return &InMemory{
		states: make(map[id.StateID]*models.State),
		towns:  make(map[id.TownID]*models.Town),
	}
}

func (s *InMemory) AddState(st *models.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *st
	s.states[st.ID] = &c
}

// AddTown stores a town; state name and abbreviation are filled from the
// state when it is known.
func (s *InMemory) AddTown(t *models.Town) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *t
	if st, ok := s.states[t.StateID]; ok {
		c.StateName = st.Name
		c.StateAbbreviation = st.Abbreviation
	}
	s.towns[t.ID] = &c
}

func (s *InMemory) FindTownByID(_ context.Context, townID id.TownID) (*models.Town, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.towns[townID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	c := *t
	return &c, nil
}

// FindTown matches the town name case-insensitively within a state matched by
// abbreviation or full name.
func (s *InMemory) FindTown(_ context.Context, townName, state string) (*models.Town, error) {
	townName = strings.TrimSpace(townName)
	state = strings.TrimSpace(state)
	s.mu.RLock()
	defer s.mu.RUnlock()

	var match *models.Town
	for _, t := range s.towns {
		if !strings.EqualFold(t.Name, townName) {
			continue
		}
		if !strings.EqualFold(t.StateAbbreviation, state) && !strings.EqualFold(t.StateName, state) {
			continue
		}
		if match == nil || t.ID < match.ID {
			match = t
		}
	}
	if match == nil {
		return nil, sentinel.ErrNotFound
	}
	c := *match
	return &c, nil
}
