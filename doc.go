// Package owldoc extracts renderer-ready documentation models from OWL
// ontology graphs.
//
// The engine reads an already-parsed graph through the graphstore.Store
// interface and produces a model.Document describing the ontology's
// classes, properties, and individuals, with labels resolved per language,
// anonymous class expressions decoded into a typed union, and colliding
// display labels disambiguated by namespace prefix.
//
// Packages:
//
//   - rdf: the term and triple types everything else is built on.
//   - vocabulary: W3C term IRI constants and namespace helpers.
//   - graphstore: the store boundary plus a deterministic in-memory
//     implementation and a JSON snapshot format.
//   - model: the extraction output types.
//   - extract: the extraction engine itself.
//   - pipeline: run orchestration, the reasoning hook, and parallel
//     per-language extraction.
//   - config, errors, metric: settings, classified errors, and Prometheus
//     instruments.
//
// The cmd/owldoc command wraps the pipeline for shell use: graph snapshot
// in, documentation model JSON out.
package owldoc
