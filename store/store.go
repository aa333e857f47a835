// Package store holds resolved (subject, predicate, object) facts with
// multi-index access. A Store is built once by a Builder (or Load) and is
// immutable afterwards, so any number of concurrent readers may scan it
// without locking.
package store

import (
	"iter"

	"github.com/c360studio/ontograph/term"
)

// Any is the wildcard handle for Scan patterns.
const Any = term.ID(1<<32 - 1)

// Triple is one (subject, predicate, object) fact. Subject and predicate are
// always resources; the object may be a resource or a literal.
type Triple struct {
	Subject   term.ID
	Predicate term.ID
	Object    term.ID
}

type spKey struct {
	subject   term.ID
	predicate term.ID
}

// Store is an immutable snapshot of one loaded ontology. Triples keep
// insertion order; duplicate insertion is collapsed, so iteration order is
// the order of first assertion.
type Store struct {
	dict    *term.Dict
	triples []Triple
	seen    map[Triple]struct{}

	bySubject   map[term.ID][]int
	byPredicate map[term.ID][]int
	bySubjPred  map[spKey][]int
}

func newStore(dict *term.Dict) *Store {
	return &Store{
		dict:        dict,
		seen:        make(map[Triple]struct{}),
		bySubject:   make(map[term.ID][]int),
		byPredicate: make(map[term.ID][]int),
		bySubjPred:  make(map[spKey][]int),
	}
}

// insert adds a fact if absent. Inserting a triple that is already present
// is a no-op, so two chains asserting the same fact yield the same store.
func (s *Store) insert(t Triple) {
	if _, dup := s.seen[t]; dup {
		return
	}
	i := len(s.triples)
	s.triples = append(s.triples, t)
	s.seen[t] = struct{}{}
	s.bySubject[t.Subject] = append(s.bySubject[t.Subject], i)
	s.byPredicate[t.Predicate] = append(s.byPredicate[t.Predicate], i)
	key := spKey{subject: t.Subject, predicate: t.Predicate}
	s.bySubjPred[key] = append(s.bySubjPred[key], i)
}

// Dict returns the term dictionary owning this store's handles.
func (s *Store) Dict() *term.Dict {
	return s.dict
}

// Len returns the number of distinct triples.
func (s *Store) Len() int {
	return len(s.triples)
}

// Term resolves a handle to its interned term.
func (s *Store) Term(id term.ID) term.Term {
	return s.dict.Term(id)
}

// Value resolves a handle to its textual form.
func (s *Store) Value(id term.ID) string {
	return s.dict.Value(id)
}

// Resource returns the handle of an IRI previously interned by this store.
func (s *Store) Resource(iri string) (term.ID, bool) {
	return s.dict.LookupResource(iri)
}

// Scan returns every triple matching the pattern, treating Any as a
// wildcard. The sequence is lazy, finite and restartable; matches come back
// in insertion order. Patterns bound on subject, predicate, or both use the
// indexes; only a fully unbound subject and predicate walk the whole store.
func (s *Store) Scan(subject, predicate, object term.ID) iter.Seq[Triple] {
	var hits []int
	full := false
	switch {
	case subject != Any && predicate != Any:
		hits = s.bySubjPred[spKey{subject: subject, predicate: predicate}]
	case subject != Any:
		hits = s.bySubject[subject]
	case predicate != Any:
		hits = s.byPredicate[predicate]
	default:
		full = true
	}

	return func(yield func(Triple) bool) {
		if full {
			for _, t := range s.triples {
				if object != Any && t.Object != object {
					continue
				}
				if !yield(t) {
					return
				}
			}
			return
		}
		for _, i := range hits {
			t := s.triples[i]
			if object != Any && t.Object != object {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// All returns every triple in insertion order.
func (s *Store) All() iter.Seq[Triple] {
	return s.Scan(Any, Any, Any)
}
