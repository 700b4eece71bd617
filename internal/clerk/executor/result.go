package executor

import (
	"tpb/internal/clerk/directive"
	id "tpb/pkg/domain"
)

// Status is the outcome of a single directive.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
	StatusRejected  Status = "rejected"
)

// TownInfo is the read-only answer to LOOKUP_TOWN.
type TownInfo struct {
	TownID      id.TownID `json:"town_id"`
	Name        string    `json:"name"`
	USCongress  string    `json:"us_congress"`
	StateSenate string    `json:"state_senate"`
	StateHouse  string    `json:"state_house"`
}

// Result reports what one directive did. Success is true only for
// StatusSucceeded.
type Result struct {
	Action    directive.Type `json:"action"`
	Status    Status         `json:"status"`
	Success   bool           `json:"success"`
	Error     string         `json:"error,omitempty"`
	Message   string         `json:"message,omitempty"`
	ThoughtID *id.ThoughtID  `json:"thought_id,omitempty"`
	TownID    *id.TownID     `json:"town_id,omitempty"`
	TownName  string         `json:"town_name,omitempty"`
	State     string         `json:"state,omitempty"`
	Town      *TownInfo      `json:"town,omitempty"`
}

func succeeded(action directive.Type, message string) Result {
	return Result{Action: action, Status: StatusSucceeded, Success: true, Message: message}
}

func notDone(action directive.Type, status Status, errMsg string) Result {
	return Result{Action: action, Status: status, Error: errMsg}
}
