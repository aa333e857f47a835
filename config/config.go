// Package config provides configuration loading and management for the
// ontograph engine.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete ontograph configuration
type Config struct {
	Ontology OntologyConfig `yaml:"ontology"`
	Retrieve RetrieveConfig `yaml:"retrieve"`
	Service  ServiceConfig  `yaml:"service"`
}

// OntologyConfig configures which sources feed the snapshot
type OntologyConfig struct {
	// Paths lists ontology files or doublestar glob patterns
	Paths []string `yaml:"paths"`
	// Watch enables reload-on-change for the source files
	Watch bool `yaml:"watch"`
	// DebounceDelay is how long to wait for more changes before reloading
	DebounceDelay time.Duration `yaml:"debounce_delay"`
}

// RetrieveConfig configures keyword fact retrieval
type RetrieveConfig struct {
	// MaxFacts caps the number of fact lines returned per question
	MaxFacts int `yaml:"max_facts"`
	// MaxSubjects caps how many matched subjects are expanded into facts
	MaxSubjects int `yaml:"max_subjects"`
	// Synonyms maps question keywords to ontology labels they stand for
	Synonyms map[string][]string `yaml:"synonyms"`
}

// ServiceConfig configures the NATS query service
type ServiceConfig struct {
	// NATSURL is the NATS server URL
	NATSURL string `yaml:"nats_url"`
	// SubjectPrefix is prepended to every service subject
	SubjectPrefix string `yaml:"subject_prefix"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Ontology: OntologyConfig{
			Paths:         []string{"ontology/*.ttl"},
			Watch:         false,
			DebounceDelay: 500 * time.Millisecond,
		},
		Retrieve: RetrieveConfig{
			MaxFacts:    7,
			MaxSubjects: 5,
			Synonyms:    nil,
		},
		Service: ServiceConfig{
			NATSURL:       "nats://127.0.0.1:4222",
			SubjectPrefix: "ontograph",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if len(c.Ontology.Paths) == 0 {
		return fmt.Errorf("ontology.paths is required")
	}
	if c.Retrieve.MaxFacts <= 0 {
		return fmt.Errorf("retrieve.max_facts must be positive")
	}
	if c.Retrieve.MaxSubjects <= 0 {
		return fmt.Errorf("retrieve.max_subjects must be positive")
	}
	if c.Service.SubjectPrefix == "" {
		return fmt.Errorf("service.subject_prefix is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Ontology
	if len(other.Ontology.Paths) > 0 {
		c.Ontology.Paths = other.Ontology.Paths
	}
	if other.Ontology.Watch {
		c.Ontology.Watch = true
	}
	if other.Ontology.DebounceDelay != 0 {
		c.Ontology.DebounceDelay = other.Ontology.DebounceDelay
	}

	// Retrieve
	if other.Retrieve.MaxFacts != 0 {
		c.Retrieve.MaxFacts = other.Retrieve.MaxFacts
	}
	if other.Retrieve.MaxSubjects != 0 {
		c.Retrieve.MaxSubjects = other.Retrieve.MaxSubjects
	}
	if len(other.Retrieve.Synonyms) > 0 {
		c.Retrieve.Synonyms = other.Retrieve.Synonyms
	}

	// Service
	if other.Service.NATSURL != "" {
		c.Service.NATSURL = other.Service.NATSURL
	}
	if other.Service.SubjectPrefix != "" {
		c.Service.SubjectPrefix = other.Service.SubjectPrefix
	}
}
