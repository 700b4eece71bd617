package directive

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned by Validate for types with no command.
var ErrUnknownType = errors.New("unknown directive type")

// Command is a validated directive. The concrete types are AddThought,
// SetTown and LookupTown.
type Command interface {
	Type() Type
	isCommand()
}

// AddThought posts a civic thought for the current user.
type AddThought struct {
	Content      string
	Jurisdiction string
}

// SetTown moves the current user to a town.
type SetTown struct {
	State string
	Town  string
}

// LookupTown reads a town's districts without changing anything.
type LookupTown struct {
	State string
	Town  string
}

func (AddThought) Type() Type { return TypeAddThought }
func (SetTown) Type() Type    { return TypeSetTown }
func (LookupTown) Type() Type { return TypeLookupTown }

func (AddThought) isCommand() {}
func (SetTown) isCommand()    {}
func (LookupTown) isCommand() {}

// ValidationError names the required parameters a directive lacks.
type ValidationError struct {
	Type    Type
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing %s", e.Type, strings.Join(e.Missing, ", "))
}

// Validate turns a parsed directive into a command, or explains why it cannot.
// Unknown types yield ErrUnknownType; missing parameters a *ValidationError.
func Validate(d Directive) (Command, error) {
	switch d.Type {
	case TypeAddThought:
		content, _ := d.Get("content")
		jurisdiction, _ := d.Get("jurisdiction")
		if content == "" {
			return nil, &ValidationError{Type: d.Type, Missing: []string{"content"}}
		}
		return AddThought{Content: content, Jurisdiction: jurisdiction}, nil
	case TypeSetTown:
		state, town, err := townParams(d)
		if err != nil {
			return nil, err
		}
		return SetTown{State: state, Town: town}, nil
	case TypeLookupTown:
		state, town, err := townParams(d)
		if err != nil {
			return nil, err
		}
		return LookupTown{State: state, Town: town}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, d.Type)
	}
}

func townParams(d Directive) (state, town string, err error) {
	state, _ = d.Get("state")
	town, _ = d.Get("town")
	var missing []string
	if state == "" {
		missing = append(missing, "state")
	}
	if town == "" {
		missing = append(missing, "town")
	}
	if len(missing) > 0 {
		return "", "", &ValidationError{Type: d.Type, Missing: missing}
	}
	return state, town, nil
}
