// Package vocabulary defines the namespaces and well-known IRIs used by the
// ontograph engine.
//
// Predicates in loaded ontologies are ordinary interned resources; nothing in
// the engine enumerates them. The constants here exist only so that the query
// layer can recognize the handful of annotation predicates it gives special
// treatment (rdf:type for class membership, rdfs:label and rdfs:comment for
// presentation) by comparing values, never by schema validation.
package vocabulary

import "strings"

// Standard namespaces.
const (
	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// HPCNamespace is the default namespace of the HPC optimization ontology.
	HPCNamespace = "http://example.org/hpc#"
)

// Well-known IRIs compared by value in the query layer.
const (
	// RDFType asserts class membership. The Turtle shorthand "a" resolves
	// to this IRI during parsing.
	RDFType = RDFNamespace + "type"

	// RDFSLabel carries the human-readable name of a resource.
	RDFSLabel = RDFSNamespace + "label"

	// RDFSComment carries the long-form description of a resource.
	RDFSComment = RDFSNamespace + "comment"

	// RDFSSubClassOf links a class to its superclass. The engine stores
	// these as ordinary facts and performs no automatic closure over them.
	RDFSSubClassOf = RDFSNamespace + "subClassOf"

	// RDFSClass is the class of classes.
	RDFSClass = RDFSNamespace + "Class"
)

// DefaultPrefixes returns the prefix table used when serializing a store and
// when expanding prefixed names given on the command line. Parsers never
// consult it: a parse resolves only prefixes declared in its own input.
func DefaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":  RDFNamespace,
		"rdfs": RDFSNamespace,
		"hpc":  HPCNamespace,
		"":     HPCNamespace,
	}
}

// LocalName returns the fragment of an IRI after its namespace: the part
// after the last '#', or failing that the last '/'. IRIs with neither
// separator are returned unchanged.
func LocalName(iri string) string {
	if i := strings.LastIndexByte(iri, '#'); i >= 0 {
		iri = iri[i+1:]
	}
	if i := strings.LastIndexByte(iri, '/'); i >= 0 {
		iri = iri[i+1:]
	}
	return iri
}

// Namespace returns the namespace part of an IRI, the complement of
// LocalName. An IRI with no separator has an empty namespace.
func Namespace(iri string) string {
	return iri[:len(iri)-len(LocalName(iri))]
}
