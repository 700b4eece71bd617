package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrimLower(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "lowercases and trims",
			input:    []string{"  SET_TOWN ", "Add_Thought"},
			expected: []string{"set_town", "add_thought"},
		},
		{
			name:     "case-insensitive duplicates keep first position",
			input:    []string{"add_thought", "SET_TOWN", "ADD_THOUGHT"},
			expected: []string{"add_thought", "set_town"},
		},
		{
			name:     "drops blanks",
			input:    []string{"", "   ", "lookup_town"},
			expected: []string{"lookup_town"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrimLower(tt.input))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{}, SplitList("  "))
	assert.Equal(t, []string{"set_town", "add_thought"}, SplitList("set_town, add_thought,SET_TOWN"))
}
