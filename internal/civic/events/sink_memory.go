package events

import (
	"context"
	"sync"
)

// InMemorySink records events for tests and local runs.
type InMemorySink struct {
	mu     sync.Mutex
	events []Event
}

func NewInMemorySink() *InMemorySink {
	return &InMemorySink{}
}

func (s *InMemorySink) Append(_ context.Context, events ...Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
	return nil
}

func (s *InMemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}
