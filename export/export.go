// Package export serializes a loaded store back to RDF text formats.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/ontograph/store"
	"github.com/c360studio/ontograph/term"
	"github.com/c360studio/ontograph/vocabulary"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output with prefixed names,
	// object lists and predicate chains.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output, one fact per line.
	FormatNTriples Format = "ntriples"
)

// Exporter serializes one store snapshot. Output is deterministic: prefixes
// are sorted, subjects and predicates follow first-assertion order.
type Exporter struct {
	store    *store.Store
	prefixes map[string]string
}

// NewExporter creates an exporter with the default prefix table.
func NewExporter(st *store.Store) *Exporter {
	return &Exporter{store: st, prefixes: vocabulary.DefaultPrefixes()}
}

// SetPrefix binds a prefix for Turtle output.
func (e *Exporter) SetPrefix(prefix, namespace string) {
	e.prefixes[prefix] = namespace
}

// Export serializes the store to the specified format.
func (e *Exporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// subjectGroup preserves assertion order per subject and predicate.
type subjectGroup struct {
	subject    term.ID
	predicates []term.ID
	objects    map[term.ID][]term.ID
}

func (e *Exporter) group() []*subjectGroup {
	var groups []*subjectGroup
	bySubject := make(map[term.ID]*subjectGroup)
	for t := range e.store.All() {
		g, ok := bySubject[t.Subject]
		if !ok {
			g = &subjectGroup{subject: t.Subject, objects: make(map[term.ID][]term.ID)}
			bySubject[t.Subject] = g
			groups = append(groups, g)
		}
		if _, ok := g.objects[t.Predicate]; !ok {
			g.predicates = append(g.predicates, t.Predicate)
		}
		g.objects[t.Predicate] = append(g.objects[t.Predicate], t.Object)
	}
	return groups
}

func (e *Exporter) toTurtle() string {
	var sb strings.Builder

	names := make([]string, 0, len(e.prefixes))
	for name := range e.prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", name, e.prefixes[name])
	}

	for _, g := range e.group() {
		sb.WriteString("\n")
		sb.WriteString(e.compact(e.store.Value(g.subject)))
		for i, pred := range g.predicates {
			if i == 0 {
				sb.WriteString(" ")
			} else {
				sb.WriteString(" ;\n    ")
			}
			sb.WriteString(e.verb(pred))
			sb.WriteString(" ")
			for j, obj := range g.objects[pred] {
				if j > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(e.object(obj))
			}
		}
		sb.WriteString(" .\n")
	}
	return sb.String()
}

func (e *Exporter) toNTriples() string {
	var sb strings.Builder
	for t := range e.store.All() {
		fmt.Fprintf(&sb, "<%s> <%s> %s .\n",
			e.store.Value(t.Subject),
			e.store.Value(t.Predicate),
			e.ntObject(t.Object))
	}
	return sb.String()
}

func (e *Exporter) verb(pred term.ID) string {
	iri := e.store.Value(pred)
	if iri == vocabulary.RDFType {
		return "a"
	}
	return e.compact(iri)
}

func (e *Exporter) object(id term.ID) string {
	t := e.store.Term(id)
	if !t.IsLiteral() {
		return e.compact(t.Value)
	}
	if strings.Contains(t.Value, "\n") {
		return `"""` + t.Value + `"""`
	}
	return `"` + escapeString(t.Value) + `"`
}

func (e *Exporter) ntObject(id term.ID) string {
	t := e.store.Term(id)
	if t.IsLiteral() {
		return `"` + escapeString(t.Value) + `"`
	}
	return "<" + t.Value + ">"
}

// compact rewrites an IRI as a prefixed name when a declared namespace
// matches. Named prefixes win over the default empty prefix; an IRI outside
// every namespace stays in angle brackets.
func (e *Exporter) compact(iri string) string {
	best := ""
	bestNS := ""
	found := false
	for prefix, ns := range e.prefixes {
		if ns == "" || !strings.HasPrefix(iri, ns) {
			continue
		}
		if !found || len(ns) > len(bestNS) || (len(ns) == len(bestNS) && prefix > best) {
			best, bestNS, found = prefix, ns, true
		}
	}
	if !found {
		return "<" + iri + ">"
	}
	local := iri[len(bestNS):]
	return best + ":" + local
}

// escapeString escapes special characters for single-line literal output.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
