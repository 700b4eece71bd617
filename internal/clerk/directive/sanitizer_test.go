package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Run("removes directive and keeps surrounding prose", func(t *testing.T) {
		got := Sanitize("Sure!\n\n[ACTION: ADD_THOUGHT]\ncontent: Fix the bridge\njurisdiction: town\n\nDone.")
		assert.Equal(t, "Sure!\n\nDone.", got)
	})

	t.Run("text without markers is unchanged", func(t *testing.T) {
		for _, text := range []string{"", "  padded  \n\n\n", "Plain answer.\n\nSecond paragraph."} {
			assert.Equal(t, text, Sanitize(text))
		}
	})

	t.Run("only directives sanitize to empty", func(t *testing.T) {
		got := Sanitize("[ACTION: SET_TOWN]\nstate: CT\ntown: Putnam\n\n[ACTION: ADD_THOUGHT]\ncontent: x\n")
		assert.Empty(t, got)
	})

	t.Run("adjacent directives are both removed", func(t *testing.T) {
		got := Sanitize("Okay.\n[ACTION: SET_TOWN]\nstate: CT\ntown: Putnam\n[ACTION: LOOKUP_TOWN]\nstate: CT\ntown: Putnam\n\nAll set.")
		assert.Equal(t, "Okay.\n\nAll set.", got)
	})

	t.Run("key lines after a blank line are removed too", func(t *testing.T) {
		assert.Empty(t, Sanitize("[ACTION: SET_TOWN]\nstate: CT\n\ntown: Putnam"))
		assert.Equal(t, "Moving you.\n\nDone.",
			Sanitize("Moving you.\n[ACTION: SET_TOWN]\nstate: CT\n\ntown: Putnam\n\nDone."))
	})

	t.Run("mid-line marker keeps the prose before it", func(t *testing.T) {
		assert.Equal(t, "Updating now", Sanitize("Updating now [ACTION: SET_TOWN]\nstate: CT\ntown: Putnam"))
	})
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Sure!\n\n[ACTION: ADD_THOUGHT]\ncontent: Fix the bridge\n\nDone.",
		"[ACTION: X]",
		"a\n\n\n\nb [ACTION: Y] tail\n\n\n\nc",
		"[ACTION:\n\n[ACTION: Y] body\n\nX]",
		"[ACT[ACTION: X]ION: Y]",
		"no markers at all\n\n\n",
		"[ACTION: A]\n\n\n[ACTION: B]\nk: v\n \n\t\nprose",
		"[ACTION: SET_TOWN]\nstate: CT\n\ntown: Putnam",
		"Hi\n[ACTION: SET_TOWN]\nstate: CT\n\n\ntown: Putnam\n\nnote: [ACTION: X]\n\nbye",
	}
	for _, x := range inputs {
		once := Sanitize(x)
		assert.Equal(t, once, Sanitize(once), x)
		assert.NotContains(t, once, "[ACTION: ", x)
	}
}
