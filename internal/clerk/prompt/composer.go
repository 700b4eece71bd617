// Package prompt assembles the system instruction and message list for one
// clerk turn. It performs no I/O.
package prompt

import (
	"strings"

	"tpb/internal/clerk/directive"
	"tpb/internal/clerk/models"
)

const actionHeader = "## Action Tags\nWhen the user wants to DO something (not just ask), include an action tag:\n\n"

var actionGrammar = map[directive.Type]string{
	directive.TypeSetTown: "To set user's town:\n[ACTION: SET_TOWN]\n" +
		"state: {state abbreviation or name}\ntown: {town name}\n\n",
	directive.TypeLookupTown: "To verify a town exists:\n[ACTION: LOOKUP_TOWN]\n" +
		"town: {town name}\nstate: {state}\n\n",
	directive.TypeAddThought: "To submit a thought:\n[ACTION: ADD_THOUGHT]\n" +
		"content: {the thought text}\njurisdiction: {town|state|federal}\n\n",
}

// Input is everything a prompt is built from.
type Input struct {
	Persona     *models.Persona
	ContextText string
	Lookups     string
	History     []models.Turn
	Message     string
}

// Prompt is the composed model request body.
type Prompt struct {
	System   string
	Messages []models.Turn
}

// Compose joins the persona instruction, user context, message lookups and,
// when the persona has capabilities, the action grammar. History is copied
// verbatim and followed by the new user message.
func Compose(in Input) Prompt {
	var b strings.Builder
	b.WriteString(in.Persona.BasePrompt)
	if in.ContextText != "" {
		b.WriteString("\n\n")
		b.WriteString(in.ContextText)
	}
	if in.Lookups != "" {
		b.WriteString("\n\n## Additional Context\n")
		b.WriteString(in.Lookups)
	}
	if granted := in.Persona.Granted(); len(granted) > 0 {
		b.WriteString("\n\n")
		b.WriteString(ActionInstructions(granted))
	}

	messages := make([]models.Turn, 0, len(in.History)+1)
	messages = append(messages, in.History...)
	messages = append(messages, models.Turn{Role: models.RoleUser, Content: in.Message})

	return Prompt{System: b.String(), Messages: messages}
}

// ActionInstructions documents the directive grammar for each granted type.
func ActionInstructions(granted []directive.Type) string {
	var b strings.Builder
	b.WriteString(actionHeader)
	for _, t := range granted {
		b.WriteString(actionGrammar[t])
	}
	return b.String()
}
