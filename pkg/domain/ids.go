// Package domain holds typed identifiers shared across modules.
//
// Rows in the civic store use integer surrogate keys. Wrapping them in distinct
// types keeps a TownID from being passed where a StateID is expected.
package domain

import (
	"strconv"
	"strings"

	dErrors "tpb/pkg/domain-errors"
)

type (
	UserID     int64
	StateID    int64
	TownID     int64
	OfficialID int64
	ThoughtID  int64
	ClerkID    int64
)

func (id UserID) IsZero() bool { return id <= 0 }
func (id StateID) IsZero() bool { return id <= 0 }
func (id TownID) IsZero() bool { return id <= 0 }
func (id ThoughtID) IsZero() bool { return id <= 0 }

func (id UserID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id StateID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id TownID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id ThoughtID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseUserID parses a positive integer user identifier.
func ParseUserID(s string) (UserID, error) {
	v, err := parsePositive(s, "user_id")
	return UserID(v), err
}

// ParseTownID parses a positive integer town identifier.
func ParseTownID(s string) (TownID, error) {
	v, err := parsePositive(s, "town_id")
	return TownID(v), err
}

func parsePositive(s, field string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, field+" is required")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, field+" must be an integer")
	}
	if v <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, field+" must be positive")
	}
	return v, nil
}
