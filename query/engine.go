// Package query evaluates pattern queries over an immutable store snapshot.
// The engine is purely request/response: it never mutates the store, keeps no
// session state, and is safe for arbitrarily many concurrent callers.
package query

import (
	"fmt"
	"log/slog"

	"github.com/c360studio/ontograph/store"
	"github.com/c360studio/ontograph/term"
	"github.com/c360studio/ontograph/vocabulary"
)

// Engine answers queries against one loaded snapshot.
type Engine struct {
	store  *store.Store
	logger *slog.Logger
}

// New creates an engine over a loaded store.
func New(st *store.Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{store: st, logger: logger}
}

// Store returns the snapshot the engine reads.
func (e *Engine) Store() *store.Store {
	return e.store
}

// resolve maps an IRI to its handle, or ErrUnknownResource when the name was
// never seen by this store.
func (e *Engine) resolve(iri string) (term.ID, error) {
	id, ok := e.store.Resource(iri)
	if !ok {
		return 0, fmt.Errorf("%q: %w", iri, ErrUnknownResource)
	}
	return id, nil
}

// PropertiesOf groups every triple with the given subject by predicate.
// Multi-valued predicates keep assertion order. A resource that exists but
// was never used as a subject yields an empty map.
func (e *Engine) PropertiesOf(subject string) (map[string][]term.Term, error) {
	id, err := e.resolve(subject)
	if err != nil {
		return nil, err
	}
	props := make(map[string][]term.Term)
	for t := range e.store.Scan(id, store.Any, store.Any) {
		pred := e.store.Value(t.Predicate)
		props[pred] = append(props[pred], e.store.Term(t.Object))
	}
	return props, nil
}

// InstancesOf returns the resources whose type fact names the given class,
// in assertion order. Membership is direct only: no transitive walk over
// subclass chains is performed.
func (e *Engine) InstancesOf(class string) ([]string, error) {
	classID, err := e.resolve(class)
	if err != nil {
		return nil, err
	}
	typePred, ok := e.store.Resource(vocabulary.RDFType)
	if !ok {
		return nil, nil
	}
	var out []string
	for t := range e.store.Scan(store.Any, typePred, classID) {
		out = append(out, e.store.Value(t.Subject))
	}
	return out, nil
}

// TypesOf returns the classes a resource is asserted to belong to, in
// assertion order.
func (e *Engine) TypesOf(resource string) ([]string, error) {
	id, err := e.resolve(resource)
	if err != nil {
		return nil, err
	}
	typePred, ok := e.store.Resource(vocabulary.RDFType)
	if !ok {
		return nil, nil
	}
	var out []string
	for t := range e.store.Scan(id, typePred, store.Any) {
		if !e.store.Term(t.Object).IsLiteral() {
			out = append(out, e.store.Value(t.Object))
		}
	}
	return out, nil
}

// LabelOf returns the rdfs:label of a resource, falling back to its local
// name when no label is asserted. It fails only when the resource was never
// interned by this store.
func (e *Engine) LabelOf(resource string) (string, error) {
	id, err := e.resolve(resource)
	if err != nil {
		return "", err
	}
	if label, ok := e.labelByID(id); ok {
		return label, nil
	}
	return vocabulary.LocalName(resource), nil
}

func (e *Engine) labelByID(id term.ID) (string, bool) {
	labelPred, ok := e.store.Resource(vocabulary.RDFSLabel)
	if !ok {
		return "", false
	}
	for t := range e.store.Scan(id, labelPred, store.Any) {
		if obj := e.store.Term(t.Object); obj.IsLiteral() {
			return obj.Value, true
		}
	}
	return "", false
}

// displayName renders a handle for human-readable output: label or local
// name for resources, the raw text for literals.
func (e *Engine) displayName(id term.ID) string {
	t := e.store.Term(id)
	if t.IsLiteral() {
		return t.Value
	}
	if label, ok := e.labelByID(id); ok {
		return label
	}
	return vocabulary.LocalName(t.Value)
}

// ResourceByLabel finds the resource whose asserted rdfs:label equals the
// given text. Returns false when no resource carries that label.
func (e *Engine) ResourceByLabel(label string) (string, bool) {
	labelPred, ok := e.store.Resource(vocabulary.RDFSLabel)
	if !ok {
		return "", false
	}
	lit, ok := e.store.Dict().Lookup(term.KindLiteral, label)
	if !ok {
		return "", false
	}
	for t := range e.store.Scan(store.Any, labelPred, lit) {
		return e.store.Value(t.Subject), true
	}
	return "", false
}

// Description is the presentation-ready view of one resource: its label,
// optional comment, asserted classes, and all properties grouped by
// predicate in assertion order.
type Description struct {
	IRI        string
	Label      string
	Comment    string
	Types      []string
	Properties map[string][]term.Term
}

// Describe combines LabelOf, the optional rdfs:comment, and PropertiesOf
// into one record for a presentation layer to render.
func (e *Engine) Describe(resource string) (*Description, error) {
	props, err := e.PropertiesOf(resource)
	if err != nil {
		return nil, err
	}
	label, err := e.LabelOf(resource)
	if err != nil {
		return nil, err
	}
	types, err := e.TypesOf(resource)
	if err != nil {
		return nil, err
	}

	desc := &Description{IRI: resource, Label: label, Types: types, Properties: props}
	for _, obj := range props[vocabulary.RDFSComment] {
		if obj.IsLiteral() {
			desc.Comment = obj.Value
			break
		}
	}
	return desc, nil
}
