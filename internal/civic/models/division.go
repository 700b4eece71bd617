package models

import (
	"strings"

	dErrors "tpb/pkg/domain-errors"
)

// DivisionLevel is the jurisdiction level a division address encodes.
type DivisionLevel string

const (
	LevelState         DivisionLevel = "state"
	LevelCongressional DivisionLevel = "cd"
	LevelStateUpper    DivisionLevel = "sldu"
	LevelStateLower    DivisionLevel = "sldl"
)

const divisionPrefix = "ocd-division/country:us/state:"

// DivisionAddress identifies exactly one jurisdiction: a whole state, or one
// congressional / upper / lower legislative district inside a state. It is a
// comparable value; two addresses match only when every field is equal.
type DivisionAddress struct {
	Level    DivisionLevel
	State    string // lowercase two-letter abbreviation
	District string // empty for LevelState
}

// NewStateAddress builds the address of a whole state.
func NewStateAddress(state string) (DivisionAddress, error) {
	state = normalizeState(state)
	if !validState(state) {
		return DivisionAddress{}, dErrors.New(dErrors.CodeInvalidInput, "state must be a two-letter abbreviation")
	}
	return DivisionAddress{Level: LevelState, State: state}, nil
}

// NewDistrictAddress builds the address of a district within a state.
func NewDistrictAddress(level DivisionLevel, state, district string) (DivisionAddress, error) {
	state = normalizeState(state)
	district = strings.ToLower(strings.TrimSpace(district))
	if !validState(state) {
		return DivisionAddress{}, dErrors.New(dErrors.CodeInvalidInput, "state must be a two-letter abbreviation")
	}
	switch level {
	case LevelCongressional, LevelStateUpper, LevelStateLower:
	default:
		return DivisionAddress{}, dErrors.New(dErrors.CodeInvalidInput, "unknown district level "+string(level))
	}
	if district == "" || strings.ContainsAny(district, "/:") {
		return DivisionAddress{}, dErrors.New(dErrors.CodeInvalidInput, "district designator is required")
	}
	return DivisionAddress{Level: level, State: state, District: district}, nil
}

// ParseDivisionAddress parses the OCD string form, e.g.
// "ocd-division/country:us/state:ct/sldu:29". Addresses that span more than one
// level below the state are rejected.
func ParseDivisionAddress(s string) (DivisionAddress, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	rest, ok := strings.CutPrefix(s, divisionPrefix)
	if !ok {
		return DivisionAddress{}, dErrors.New(dErrors.CodeInvalidInput, "not a state division address")
	}
	parts := strings.Split(rest, "/")
	switch len(parts) {
	case 1:
		return NewStateAddress(parts[0])
	case 2:
		level, district, found := strings.Cut(parts[1], ":")
		if !found {
			return DivisionAddress{}, dErrors.New(dErrors.CodeInvalidInput, "malformed district segment")
		}
		return NewDistrictAddress(DivisionLevel(level), parts[0], district)
	default:
		return DivisionAddress{}, dErrors.New(dErrors.CodeInvalidInput, "division address must encode a single jurisdiction level")
	}
}

// String renders the OCD identifier used as the lookup key in the store.
func (a DivisionAddress) String() string {
	if a.Level == LevelState || a.District == "" {
		return divisionPrefix + a.State
	}
	return divisionPrefix + a.State + "/" + string(a.Level) + ":" + a.District
}

func (a DivisionAddress) IsZero() bool {
	return a == DivisionAddress{}
}

func normalizeState(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validState(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
