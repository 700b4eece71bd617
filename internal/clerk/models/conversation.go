package models

import (
	dErrors "tpb/pkg/domain-errors"
)

// Role is the speaker of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message of the history the caller supplies.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Validate rejects unknown roles.
func (t Turn) Validate() error {
	switch t.Role {
	case RoleUser, RoleAssistant:
		return nil
	default:
		return dErrors.New(dErrors.CodeValidation, "history role must be user or assistant")
	}
}
