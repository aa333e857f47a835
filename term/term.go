// Package term provides interned RDF-style terms: named resources and plain
// text literals. A Dict deduplicates terms and hands out stable integer
// handles, so the store and its indexes compare uint32s instead of strings.
package term

// Kind discriminates the two term forms of this subset.
type Kind uint8

const (
	// KindResource is a named entity or property identified by an IRI.
	KindResource Kind = iota

	// KindLiteral is an immutable text value, possibly multi-line. No
	// language tags or datatypes in this subset.
	KindLiteral
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindResource:
		return "resource"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// ID is a stable handle to an interned term. Handles are valid for the
// lifetime of the Dict that issued them and are never reused; the store is
// append-only, so invalidation never arises.
type ID uint32

// Term is an immutable interned value.
type Term struct {
	Kind  Kind
	Value string
}

// IsLiteral reports whether the term is a text literal.
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }
