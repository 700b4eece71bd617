// Package directive reads the action markup a clerk model embeds in its
// replies and strips it before the reply is shown.
//
// A directive is a marker followed by KEY: VALUE lines:
//
//	[ACTION: SET_TOWN]
//	state: CT
//	town: Putnam
//
// The block runs until the next marker or end of text. Blank lines between
// KEY: VALUE lines are allowed, but a blank line followed by anything else
// closes the block, so prose after a blank line is not part of the directive.
package directive

import (
	"regexp"
	"strings"
)

// Type is the marker's tag. Parsing keeps the captured token verbatim.
type Type string

const (
	TypeAddThought Type = "ADD_THOUGHT"
	TypeSetTown    Type = "SET_TOWN"
	TypeLookupTown Type = "LOOKUP_TOWN"
)

// Known reports whether the executor has a command for t.
func (t Type) Known() bool {
	switch t {
	case TypeAddThought, TypeSetTown, TypeLookupTown:
		return true
	default:
		return false
	}
}

// Param is one KEY: VALUE line.
type Param struct {
	Key   string
	Value string
}

// Directive is a parsed block. Params keep their order of appearance.
type Directive struct {
	Type   Type
	Params []Param
}

// Get returns the value of key. A repeated key resolves to its last value.
func (d Directive) Get(key string) (string, bool) {
	for i := len(d.Params) - 1; i >= 0; i-- {
		if d.Params[i].Key == key {
			return d.Params[i].Value, true
		}
	}
	return "", false
}

// Map returns the parameters keyed by name.
func (d Directive) Map() map[string]string {
	out := make(map[string]string, len(d.Params))
	for _, p := range d.Params {
		out[p.Key] = p.Value
	}
	return out
}

// markerPattern only allows spaces or tabs after the colon so a marker never
// spans lines.
var markerPattern = regexp.MustCompile(`\[ACTION:[ \t]*(\w+)\]`)

var keyLinePattern = regexp.MustCompile(`^\s*(\w+):(.*)$`)

// sectionEnd returns the offset in body where the directive's lines stop. A
// blank line that follows a non-blank line closes the section unless the next
// non-blank line is another KEY: VALUE line. Without such a break the section
// runs to len(body).
func sectionEnd(body string) int {
	seen := false
	offset := 0
	for {
		line, rest, more := strings.Cut(body[offset:], "\n")
		if strings.TrimSpace(line) == "" {
			if seen && !keyLineFollows(rest) {
				return max(offset-1, 0)
			}
		} else {
			seen = true
		}
		if !more {
			return len(body)
		}
		offset = len(body) - len(rest)
	}
}

// keyLineFollows reports whether the first non-blank line of s is a key line.
func keyLineFollows(s string) bool {
	for s != "" {
		var line string
		line, s, _ = strings.Cut(s, "\n")
		if strings.TrimSpace(line) != "" {
			return keyLinePattern.MatchString(line)
		}
	}
	return false
}
