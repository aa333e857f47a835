package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontograph/config"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 7, cfg.Retrieve.MaxFacts)
	assert.Equal(t, 5, cfg.Retrieve.MaxSubjects)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"no paths", func(c *config.Config) { c.Ontology.Paths = nil }},
		{"zero max facts", func(c *config.Config) { c.Retrieve.MaxFacts = 0 }},
		{"negative max subjects", func(c *config.Config) { c.Retrieve.MaxSubjects = -1 }},
		{"empty subject prefix", func(c *config.Config) { c.Service.SubjectPrefix = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ontograph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ontology:
  paths:
    - data/hpc.ttl
  watch: true
  debounce_delay: 250ms
retrieve:
  max_facts: 10
  synonyms:
    solution: ["Padding memoire 3D"]
`), 0644))

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"data/hpc.ttl"}, cfg.Ontology.Paths)
	assert.True(t, cfg.Ontology.Watch)
	assert.Equal(t, 250*time.Millisecond, cfg.Ontology.DebounceDelay)
	assert.Equal(t, 10, cfg.Retrieve.MaxFacts)
	assert.Equal(t, 5, cfg.Retrieve.MaxSubjects, "unset fields keep defaults")
	assert.Equal(t, []string{"Padding memoire 3D"}, cfg.Retrieve.Synonyms["solution"])
}

func TestMerge(t *testing.T) {
	base := config.DefaultConfig()
	other := &config.Config{}
	other.Ontology.Paths = []string{"override.ttl"}
	other.Retrieve.MaxFacts = 3

	base.Merge(other)
	assert.Equal(t, []string{"override.ttl"}, base.Ontology.Paths)
	assert.Equal(t, 3, base.Retrieve.MaxFacts)
	assert.Equal(t, 5, base.Retrieve.MaxSubjects, "zero values do not override")
	assert.Equal(t, "ontograph", base.Service.SubjectPrefix)
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := config.DefaultConfig()
	cfg.Ontology.Paths = []string{"a.ttl", "b.ttl"}
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Ontology.Paths, loaded.Ontology.Paths)
}
