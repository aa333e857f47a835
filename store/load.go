package store

import (
	"fmt"

	"github.com/c360studio/ontograph/term"
	"github.com/c360studio/ontograph/turtle"
)

// Builder accumulates parsed texts into one store. Loading is a
// single-threaded pipeline: parse, intern, insert. It completes or fails
// atomically per call; a failed AddText leaves the builder unchanged because
// parsing finishes before any triple is inserted.
type Builder struct {
	store *Store
}

// NewBuilder creates a builder with an empty dictionary.
func NewBuilder() *Builder {
	return &Builder{store: newStore(term.NewDict())}
}

// AddText parses one source text and inserts its facts. The name labels the
// source in error messages; prefixes declared in one text do not leak into
// the next.
func (b *Builder) AddText(name, text string) error {
	stmts, err := turtle.Parse(text)
	if err != nil {
		if name != "" {
			return fmt.Errorf("%s: %w", name, err)
		}
		return err
	}
	dict := b.store.dict
	for _, st := range stmts {
		subject := dict.Resource(st.Subject)
		predicate := dict.Resource(st.Predicate)
		for _, obj := range st.Objects {
			var object term.ID
			if obj.Literal {
				object = dict.Literal(obj.Value)
			} else {
				object = dict.Resource(obj.Value)
			}
			b.store.insert(Triple{Subject: subject, Predicate: predicate, Object: object})
		}
	}
	return nil
}

// Store freezes and returns the built store. The builder must not be used
// afterwards.
func (b *Builder) Store() *Store {
	s := b.store
	b.store = nil
	return s
}

// Load parses one source text into a fresh store. Any syntax error discards
// the whole in-progress store: the caller gets a store or an error, never
// partial data.
func Load(text string) (*Store, error) {
	b := NewBuilder()
	if err := b.AddText("", text); err != nil {
		return nil, err
	}
	return b.Store(), nil
}
