package graphstore

import "github.com/c360/owldoc/rdf"

// Binding associates a prefix with a namespace IRI. The empty prefix is the
// distinguished default-namespace entry.
type Binding struct {
	Prefix    string `json:"prefix"`
	Namespace string `json:"namespace"`
}

// Store is the read interface the extraction engine consumes. All reads are
// in-memory lookups over an immutable snapshot; implementations must be safe
// for concurrent readers so parallel extractions can share one snapshot.
type Store interface {
	// Triples returns the triples matching the pattern in encounter order.
	// A nil position is a wildcard.
	Triples(subject, predicate, object rdf.Term) []rdf.Triple

	// Subjects returns the subjects of triples matching (*, predicate,
	// object) in encounter order, without duplicates.
	Subjects(predicate, object rdf.Term) []rdf.Term

	// Objects returns the objects of triples matching (subject, predicate,
	// *) in encounter order, without duplicates.
	Objects(subject, predicate rdf.Term) []rdf.Term

	// Has reports whether the exact triple is present.
	Has(subject, predicate, object rdf.Term) bool

	// Namespaces returns the prefix table in binding order.
	Namespaces() []Binding

	// PrefixedName splits the IRI against the prefix table, matching the
	// longest bound namespace. ok is false when no binding covers the IRI.
	// An empty returned prefix with ok true means the default namespace.
	PrefixedName(iri rdf.IRI) (prefix, local string, ok bool)
}
