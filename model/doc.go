// Package model defines the documentation model the extraction engine
// produces: plain data structures describing an ontology's classes,
// properties, and individuals, ready for JSON serialization or template
// rendering.
//
// The model is deliberately renderer-agnostic. Every cross-reference carries
// both a human-readable display name and the underlying URI so a renderer
// can emit links without consulting the graph again. Class expressions form
// a small sealed union (Restriction, Union, Intersection, Complement,
// Enumeration, AtomicReference, LiteralValue) that marshals to tagged JSON
// objects.
package model
