// Package vocabulary provides the W3C standard IRIs the extraction engine
// reads, plus helpers for splitting IRIs into namespace and local name.
//
// The constants cover the core description vocabularies (RDF, RDFS, OWL)
// and the common annotation vocabularies (Dublin Core, DCMI Terms, SKOS,
// FOAF). The RDF/RDFS/OWL namespaces are the "structural" set: predicates
// in those namespaces describe the ontology's own machinery and are kept
// out of generic assertion and annotation listings, which surface them
// through dedicated model fields instead.
//
// References:
//   - RDF:  https://www.w3.org/TR/rdf11-concepts/
//   - RDFS: https://www.w3.org/TR/rdf-schema/
//   - OWL:  https://www.w3.org/TR/owl2-overview/
//   - SKOS: https://www.w3.org/TR/skos-reference/
//   - Dublin Core: https://www.dublincore.org/specifications/dublin-core/dcmi-terms/
package vocabulary
