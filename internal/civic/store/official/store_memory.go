package official

import (
	"context"
	"sort"
	"strings"
	"sync"

	"tpb/internal/civic/models"
)

// InMemory keeps officials in insertion order.
type InMemory struct {
	mu        sync.RWMutex
	officials []models.Official
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Add(o models.Official) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.officials = append(s.officials, o)
}

// FindCurrentByDivisions returns current officials whose division equals one
// of addrs, grouped in the order of addrs and sorted by name within a group.
func (s *InMemory) FindCurrentByDivisions(_ context.Context, addrs []models.DivisionAddress) ([]models.Official, error) {
	if len(addrs) == 0 {
		return []models.Official{}, nil
	}
	position := make(map[models.DivisionAddress]int, len(addrs))
	for i, a := range addrs {
		if _, ok := position[a]; !ok {
			position[a] = i
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Official, 0)
	for _, o := range s.officials {
		if !o.IsCurrent {
			continue
		}
		if _, ok := position[o.Division]; ok {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := position[out[i].Division], position[out[j].Division]
		if pi != pj {
			return pi < pj
		}
		return out[i].FullName < out[j].FullName
	})
	return out, nil
}

// FindCurrentStatewide returns current officials of the state holding one of
// titles, ordered by TitleRank then name.
func (s *InMemory) FindCurrentStatewide(_ context.Context, stateCode string, titles []string) ([]models.Official, error) {
	wanted := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		wanted[t] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Official, 0)
	for _, o := range s.officials {
		if !o.IsCurrent || !strings.EqualFold(o.StateCode, stateCode) {
			continue
		}
		if _, ok := wanted[o.Title]; ok {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := models.TitleRank(out[i].Title), models.TitleRank(out[j].Title)
		if ri != rj {
			return ri < rj
		}
		return out[i].FullName < out[j].FullName
	})
	return out, nil
}
