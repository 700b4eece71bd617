// Package models holds the clerk's persona and conversation types.
package models

import (
	"strings"

	"tpb/internal/clerk/directive"
	id "tpb/pkg/domain"
	dErrors "tpb/pkg/domain-errors"
	pstrings "tpb/pkg/platform/strings"
)

// DefaultPersonaKey is used when the requested persona does not exist.
const DefaultPersonaKey = "guide"

// Persona configures a clerk's voice, model and permitted directives.
//
// Capabilities hold lowercase directive types, e.g. "set_town".
type Persona struct {
	ID           id.ClerkID `json:"clerk_id"`
	Key          string     `json:"clerk_key"`
	Name         string     `json:"clerk_name"`
	BasePrompt   string     `json:"base_prompt"`
	Model        string     `json:"model,omitempty"`
	Capabilities []string   `json:"capabilities"`
	Enabled      bool       `json:"enabled"`
}

// NewPersona validates and normalizes a persona definition.
func NewPersona(key, name, basePrompt, model string, capabilities []string) (*Persona, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "persona key cannot be empty")
	}
	if strings.TrimSpace(basePrompt) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "persona base prompt cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = key
	}
	caps := pstrings.DedupeAndTrimLower(capabilities)
	if caps == nil {
		caps = []string{}
	}
	return &Persona{
		Key:          key,
		Name:         name,
		BasePrompt:   basePrompt,
		Model:        strings.TrimSpace(model),
		Capabilities: caps,
		Enabled:      true,
	}, nil
}

// Allows reports whether t is in the capability set, ignoring case.
func (p *Persona) Allows(t directive.Type) bool {
	for _, c := range p.Capabilities {
		if strings.EqualFold(c, string(t)) {
			return true
		}
	}
	return false
}

// Granted lists the directive types the persona may use, in the order the
// prompt documents them.
func (p *Persona) Granted() []directive.Type {
	out := make([]directive.Type, 0, len(p.Capabilities))
	for _, t := range []directive.Type{directive.TypeSetTown, directive.TypeLookupTown, directive.TypeAddThought} {
		if p.Allows(t) {
			out = append(out, t)
		}
	}
	return out
}

// CapabilityList renders capabilities in their stored comma-separated form.
func (p *Persona) CapabilityList() string {
	return strings.Join(p.Capabilities, ",")
}

// ModelOr returns the persona's model override or fallback.
func (p *Persona) ModelOr(fallback string) string {
	if p.Model != "" {
		return p.Model
	}
	return fallback
}
