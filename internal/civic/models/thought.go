package models

import (
	"time"

	id "tpb/pkg/domain"
	dErrors "tpb/pkg/domain-errors"
)

// Jurisdiction labels understood by the thought flags.
const (
	JurisdictionTown    = "town"
	JurisdictionState   = "state"
	JurisdictionFederal = "federal"
)

// ThoughtStatusPublished is the moderation status of thoughts posted by the clerk.
const ThoughtStatusPublished = "published"

// Thought is a user-authored civic comment.
//
// Invariants:
//   - Content is non-empty
//   - UserID is set; thoughts are never anonymous
//   - At most one of IsLocal / IsState / IsFederal is true, chosen by an exact
//     match of Jurisdiction against town / state / federal. Any other label is
//     kept verbatim with all flags false.
type Thought struct {
	ID           id.ThoughtID `json:"thought_id"`
	UserID       id.UserID    `json:"user_id"`
	Content      string       `json:"content"`
	Jurisdiction string       `json:"jurisdiction_level"`
	IsLocal      bool         `json:"is_local"`
	IsState      bool         `json:"is_state"`
	IsFederal    bool         `json:"is_federal"`
	TownID       *id.TownID   `json:"town_id,omitempty"`
	StateID      *id.StateID  `json:"state_id,omitempty"`
	Status       string       `json:"status"`
	Upvotes      int          `json:"upvotes"`
	Downvotes    int          `json:"downvotes"`
	CreatedAt    time.Time    `json:"created_at"`
}

// NewThought validates invariants and sets jurisdiction flags. An empty
// jurisdiction defaults to town.
func NewThought(userID id.UserID, content, jurisdiction string, now time.Time) (*Thought, error) {
	if userID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "thought requires an authenticated user")
	}
	if content == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "thought content cannot be empty")
	}
	if jurisdiction == "" {
		jurisdiction = JurisdictionTown
	}
	return &Thought{
		UserID:       userID,
		Content:      content,
		Jurisdiction: jurisdiction,
		IsLocal:      jurisdiction == JurisdictionTown,
		IsState:      jurisdiction == JurisdictionState,
		IsFederal:    jurisdiction == JurisdictionFederal,
		Status:       ThoughtStatusPublished,
		CreatedAt:    now,
	}, nil
}
