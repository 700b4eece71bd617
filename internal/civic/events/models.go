// Package events publishes the effects of clerk directives to downstream
// consumers.
package events

import (
	"time"

	id "tpb/pkg/domain"
)

// EventType names a civic effect.
type EventType string

const (
	EventThoughtCreated  EventType = "thought.created"
	EventUserTownChanged EventType = "user.town_changed"
)

// Event is emitted after a directive changed state. Keep it transport-agnostic
// so sinks can fan out.
type Event struct {
	ID         string            `json:"event_id"`
	Type       EventType         `json:"type"`
	UserID     id.UserID         `json:"user_id"`
	ClerkKey   string            `json:"clerk_key,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}
