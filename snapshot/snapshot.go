// Package snapshot loads ontology source files into immutable store
// snapshots and keeps the current snapshot swappable behind an atomic
// pointer. A reload always builds a complete new snapshot before readers see
// it; the one in use is never mutated.
package snapshot

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/c360studio/ontograph/store"
)

// Snapshot is one immutable, fully-loaded store with its provenance.
type Snapshot struct {
	// ID uniquely identifies this load; a reload yields a new ID even
	// when the content is unchanged.
	ID string

	// Store holds the loaded triples.
	Store *store.Store

	// Sources lists the files that fed this snapshot.
	Sources []string

	// LoadedAt is when the load completed.
	LoadedAt time.Time
}

// Load resolves the given path patterns (plain paths or doublestar globs)
// and parses every matched file into one snapshot. Loading is all-or-nothing
// across files: any error returns no snapshot.
func Load(patterns []string) (*Snapshot, error) {
	paths, err := ResolvePaths(patterns)
	if err != nil {
		return nil, err
	}

	builder := store.NewBuilder()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read ontology file: %w", err)
		}
		if err := builder.AddText(path, string(data)); err != nil {
			return nil, err
		}
	}

	return &Snapshot{
		ID:       uuid.NewString(),
		Store:    builder.Store(),
		Sources:  paths,
		LoadedAt: time.Now(),
	}, nil
}

// LoadText builds a snapshot from in-memory source text.
func LoadText(text string) (*Snapshot, error) {
	st, err := store.Load(text)
	if err != nil {
		return nil, err
	}
	return &Snapshot{ID: uuid.NewString(), Store: st, LoadedAt: time.Now()}, nil
}

// ResolvePaths expands glob patterns to concrete files, deduplicated and
// sorted for a stable load order. A pattern matching nothing is an error:
// an empty ontology is almost always a misconfigured path.
func ResolvePaths(patterns []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no ontology files match %q", pattern)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil {
				return nil, err
			}
			if info.IsDir() {
				continue
			}
			if !seen[m] {
				seen[m] = true
				resolved = append(resolved, m)
			}
		}
	}

	sort.Strings(resolved)
	return resolved, nil
}
