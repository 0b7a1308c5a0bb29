// Package errors provides standardized error handling for owldoc components.
// It includes error classification, standard error variables, and helper
// functions for consistent error wrapping across the extraction pipeline.
//
// # Classification
//
// Errors fall into three classes:
//
//   - Malformed: a graph structure the decoder cannot use (broken RDF list
//     chain, cyclic list encoding, restriction without a recognizable
//     restriction predicate). The construct is omitted from output; the run
//     continues.
//   - Invalid: bad input or configuration supplied by the caller.
//   - Fatal: an upstream collaborator failure (graph store unreadable,
//     reasoner failure) that stops the whole run. The engine performs no
//     retries; retries, if any, belong to the upstream collaborator.
//
// Plain absence (no label in a requested language, unresolved blank node,
// missing ontology declaration) is not an error at all: callers degrade to
// documented fallbacks without touching this package.
//
// # Usage
//
//	if err := dec.Decode(node); err != nil {
//	    return errors.WrapMalformed(err, "decoder", "Decode", "list traversal")
//	}
//
//	if errors.IsFatal(err) {
//	    // abort the run
//	}
package errors
