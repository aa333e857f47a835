package query

import (
	"fmt"

	"github.com/c360studio/ontograph/store"
	"github.com/c360studio/ontograph/term"
)

// Fact is one (subject, predicate, object) step rendered back to IRIs and
// literal text for consumers outside the store.
type Fact struct {
	Subject       string
	Predicate     string
	Object        string
	LiteralObject bool
}

func (e *Engine) fact(t store.Triple) Fact {
	obj := e.store.Term(t.Object)
	return Fact{
		Subject:       e.store.Value(t.Subject),
		Predicate:     e.store.Value(t.Predicate),
		Object:        obj.Value,
		LiteralObject: obj.IsLiteral(),
	}
}

// FormatFact renders a fact as a readable arrow line, using labels where the
// ontology asserts them and local names otherwise.
func (e *Engine) FormatFact(f Fact) string {
	subject := f.Subject
	if id, ok := e.store.Resource(f.Subject); ok {
		subject = e.displayName(id)
	}
	predicate := f.Predicate
	if id, ok := e.store.Resource(f.Predicate); ok {
		predicate = e.displayName(id)
	}
	object := f.Object
	if f.LiteralObject {
		object = fmt.Sprintf("%q", f.Object)
	} else if id, ok := e.store.Resource(f.Object); ok {
		object = e.displayName(id)
	}
	return fmt.Sprintf("%s --[%s]--> %s", subject, predicate, object)
}

// Neighborhood returns every fact whose subject is the given resource, in
// assertion order.
func (e *Engine) Neighborhood(resource string) ([]Fact, error) {
	id, err := e.resolve(resource)
	if err != nil {
		return nil, err
	}
	var facts []Fact
	for t := range e.store.Scan(id, store.Any, store.Any) {
		facts = append(facts, e.fact(t))
	}
	return facts, nil
}

type pathState struct {
	node term.ID
	path []store.Triple
}

// Path finds the shortest chain of facts linking two resources, following
// edges in both directions so that inverse assertions still connect. It
// returns nil when no chain exists, and an empty non-nil slice when from and
// to are the same resource.
func (e *Engine) Path(from, to string) ([]Fact, error) {
	fromID, err := e.resolve(from)
	if err != nil {
		return nil, err
	}
	toID, err := e.resolve(to)
	if err != nil {
		return nil, err
	}
	if fromID == toID {
		return []Fact{}, nil
	}

	queue := []pathState{{node: fromID}}
	visited := map[term.ID]bool{fromID: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// Outgoing edges, then incoming: breadth-first over both
		// directions so the first hit is a shortest chain.
		for t := range e.store.Scan(cur.node, store.Any, store.Any) {
			if e.store.Term(t.Object).IsLiteral() || visited[t.Object] {
				continue
			}
			next := appendStep(cur.path, t)
			if t.Object == toID {
				return e.facts(next), nil
			}
			visited[t.Object] = true
			queue = append(queue, pathState{node: t.Object, path: next})
		}
		for t := range e.store.Scan(store.Any, store.Any, cur.node) {
			if visited[t.Subject] {
				continue
			}
			next := appendStep(cur.path, t)
			if t.Subject == toID {
				return e.facts(next), nil
			}
			visited[t.Subject] = true
			queue = append(queue, pathState{node: t.Subject, path: next})
		}
	}
	return nil, nil
}

func appendStep(path []store.Triple, t store.Triple) []store.Triple {
	next := make([]store.Triple, len(path), len(path)+1)
	copy(next, path)
	return append(next, t)
}

func (e *Engine) facts(path []store.Triple) []Fact {
	facts := make([]Fact, len(path))
	for i, t := range path {
		facts[i] = e.fact(t)
	}
	return facts
}
