// Package rdf provides the core term and triple model for the extraction
// engine.
//
// Graph nodes form a closed union of three kinds (IRI, Literal, and the
// anonymous BlankNode), so traversal sites can switch
// exhaustively on Term.TermKind() instead of relying on runtime type
// inspection. Terms are immutable values; a Triple is three terms.
//
// The package also defines TermRecord, the JSON encoding used by graph
// snapshots. This is owldoc's own serialization of an already-parsed graph,
// not an RDF wire format: Turtle, RDF/XML, JSON-LD and N-Triples parsing
// belong to the format codec collaborator.
package rdf
