package models

import (
	id "tpb/pkg/domain"
)

// User is the civic identity of a registered member. The clerk pipeline only
// reads users and reassigns their home town.
type User struct {
	ID            id.UserID   `json:"user_id"`
	Username      string      `json:"username"`
	Email         string      `json:"-"`
	FirstName     string      `json:"first_name"`
	LastName      string      `json:"last_name"`
	EmailVerified bool        `json:"email_verified"`
	TownID        *id.TownID  `json:"current_town_id,omitempty"`
	StateID       *id.StateID `json:"current_state_id,omitempty"`
	CivicPoints   int         `json:"civic_points"`
}

// DisplayName is the name used when addressing the user.
func (u *User) DisplayName() string {
	if u.FirstName == "" {
		return "Friend"
	}
	return u.FirstName
}

// HasTown reports whether the user has a current town set.
func (u *User) HasTown() bool {
	return u.TownID != nil && !u.TownID.IsZero()
}
