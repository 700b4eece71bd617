package persona

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
personas:
  - key: Guide
    name: Civic Guide
    base_prompt: |
      You are a helpful civic guide.
    capabilities: [SET_TOWN, add_thought]
  - key: historian
    base_prompt: You know local history.
    model: claude-haiku-4-5
    disabled: true
`

func TestParse(t *testing.T) {
	personas, err := Parse([]byte(seedYAML))
	require.NoError(t, err)
	require.Len(t, personas, 2)

	assert.Equal(t, "guide", personas[0].Key)
	assert.Equal(t, "Civic Guide", personas[0].Name)
	assert.Equal(t, "You are a helpful civic guide.\n", personas[0].BasePrompt)
	assert.Equal(t, []string{"set_town", "add_thought"}, personas[0].Capabilities)
	assert.True(t, personas[0].Enabled)

	assert.Equal(t, "historian", personas[1].Name)
	assert.Equal(t, "claude-haiku-4-5", personas[1].Model)
	assert.False(t, personas[1].Enabled)
	assert.Empty(t, personas[1].Capabilities)
}

func TestParseRejectsInvalidPersona(t *testing.T) {
	_, err := Parse([]byte("personas:\n  - key: empty\n"))
	require.Error(t, err)

	_, err = Parse([]byte("personas: [unterminated"))
	require.Error(t, err)
}

func TestLoadFileAndSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	personas, err := LoadFile(path)
	require.NoError(t, err)

	store := NewInMemory()
	require.NoError(t, Seed(context.Background(), store, personas))

	found, err := store.FindByKey(context.Background(), "guide")
	require.NoError(t, err)
	assert.Equal(t, personas[0].ID, found.ID)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
