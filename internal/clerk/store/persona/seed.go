package persona

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tpb/internal/clerk/models"
)

type seedFile struct {
	Personas []seedPersona `yaml:"personas"`
}

type seedPersona struct {
	Key          string   `yaml:"key"`
	Name         string   `yaml:"name"`
	BasePrompt   string   `yaml:"base_prompt"`
	Model        string   `yaml:"model"`
	Capabilities []string `yaml:"capabilities"`
	Disabled     bool     `yaml:"disabled"`
}

// LoadFile reads persona definitions from a YAML file:
//
//	personas:
//	  - key: guide
//	    name: Civic Guide
//	    base_prompt: |
//	      You are a helpful civic guide.
//	    capabilities: [set_town, add_thought]
func LoadFile(path string) ([]*models.Persona, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read persona file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes persona definitions from YAML.
func Parse(raw []byte) ([]*models.Persona, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode persona file: %w", err)
	}
	out := make([]*models.Persona, 0, len(f.Personas))
	for i, sp := range f.Personas {
		p, err := models.NewPersona(sp.Key, sp.Name, sp.BasePrompt, sp.Model, sp.Capabilities)
		if err != nil {
			return nil, fmt.Errorf("persona %d: %w", i, err)
		}
		p.Enabled = !sp.Disabled
		out = append(out, p)
	}
	return out, nil
}

// Seed saves every persona into store.
func Seed(ctx context.Context, store Store, personas []*models.Persona) error {
	for _, p := range personas {
		if err := store.Save(ctx, p); err != nil {
			return fmt.Errorf("seed persona %s: %w", p.Key, err)
		}
	}
	return nil
}
