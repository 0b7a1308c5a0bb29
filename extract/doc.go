// Package extract turns an OWL graph into a documentation model.
//
// The Extractor walks a graphstore.Store and produces a model.Document. The
// work splits into small resolvers that each answer one question about a
// node:
//
//   - literal.go picks the preferred literal for a subject and predicate
//     chain, honoring the configured language.
//   - name.go computes display names: label, then prefixed name, then the
//     raw URI.
//   - expression.go decodes anonymous class expressions (restrictions and
//     boolean combinators) into the model's sealed expression union, with
//     bounded list traversal so malformed graphs cannot hang a run.
//   - entity.go extracts classes, the three property kinds, and named
//     individuals.
//   - metadata.go extracts the document-level ontology header.
//   - unique.go disambiguates colliding display labels with namespace
//     prefixes.
//
// Extraction never mutates the store, so one store snapshot can serve
// several extractions concurrently.
package extract
