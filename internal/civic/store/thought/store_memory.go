package thought

import (
	"context"
	"sort"
	"sync"

	"tpb/internal/civic/models"
	id "tpb/pkg/domain"
)

// InMemory is a thread-safe thought store for tests and local runs.
type InMemory struct {
	mu       sync.RWMutex
	nextID   id.ThoughtID
	thoughts []*models.Thought
}

func NewInMemory() *InMemory {
	return &InMemory{nextID: 1}
}

// Create assigns the thought an id and stores a copy.
func (s *InMemory) Create(_ context.Context, t *models.Thought) (id.ThoughtID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *t
	c.ID = s.nextID
	s.nextID++
	s.thoughts = append(s.thoughts, &c)
	t.ID = c.ID
	return c.ID, nil
}

// ListRecent returns up to limit published thoughts, newest first.
func (s *InMemory) ListRecent(_ context.Context, limit int) ([]models.Thought, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Thought, 0, len(s.thoughts))
	for _, t := range s.thoughts {
		if t.Status == models.ThoughtStatusPublished {
			out = append(out, *t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// All returns every stored thought in insertion order.
func (s *InMemory) All() []models.Thought {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Thought, len(s.thoughts))
	for i, t := range s.thoughts {
		out[i] = *t
	}
	return out
}
