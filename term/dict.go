package term

type dictKey struct {
	kind  Kind
	value string
}

// Dict interns terms. Resolution is deterministic: the same kind and textual
// form always yield the same ID within one Dict. A resource "x" and a literal
// "x" are distinct terms with distinct handles.
//
// Dict is not safe for concurrent mutation; loading is single-threaded. Once
// loading finishes the Dict is read-only and safe to share.
type Dict struct {
	terms []Term
	ids   map[dictKey]ID
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{ids: make(map[dictKey]ID)}
}

// Resource interns a named resource identified by its canonical IRI.
func (d *Dict) Resource(iri string) ID {
	return d.intern(KindResource, iri)
}

// Literal interns a text literal.
func (d *Dict) Literal(text string) ID {
	return d.intern(KindLiteral, text)
}

func (d *Dict) intern(kind Kind, value string) ID {
	key := dictKey{kind: kind, value: value}
	if id, ok := d.ids[key]; ok {
		return id
	}
	id := ID(len(d.terms))
	d.terms = append(d.terms, Term{Kind: kind, Value: value})
	d.ids[key] = id
	return id
}

// Lookup returns the handle for a term already interned with the given kind
// and value, without interning it. The second result is false when the term
// was never seen.
func (d *Dict) Lookup(kind Kind, value string) (ID, bool) {
	id, ok := d.ids[dictKey{kind: kind, value: value}]
	return id, ok
}

// LookupResource is Lookup for named resources.
func (d *Dict) LookupResource(iri string) (ID, bool) {
	return d.Lookup(KindResource, iri)
}

// Term returns the interned term for a handle issued by this Dict.
func (d *Dict) Term(id ID) Term {
	return d.terms[id]
}

// Value returns the textual form of the term behind a handle.
func (d *Dict) Value(id ID) string {
	return d.terms[id].Value
}

// Len returns the number of distinct interned terms.
func (d *Dict) Len() int {
	return len(d.terms)
}
