// Package graphstore defines the graph store boundary the extraction engine
// reads through, and ships a deterministic in-memory implementation.
//
// The Store interface covers exactly what the engine consumes: pattern
// queries with any position wildcarded, an ordered namespace-prefix table,
// and prefixed-name computation for an IRI against that table. Stores are
// treated as immutable snapshots during extraction: the engine never
// writes, and every resolver receives the store as an explicit handle, not
// as ambient state.
//
// Memory is the reference implementation. It preserves insertion order in
// every query result, which makes extraction output reproducible: running
// the engine twice over the same snapshot yields byte-identical models.
// Populate it programmatically or from the JSON snapshot format in
// snapshot.go; parsing standard RDF wire formats (Turtle, RDF/XML, JSON-LD,
// N-Triples) is the format codec collaborator's job and deliberately absent
// here.
package graphstore
