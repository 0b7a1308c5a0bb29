package vocabulary

import (
	"strings"

	"github.com/c360/owldoc/rdf"
)

// structuralNamespaces is the core description vocabulary itself. Predicates
// in these namespaces never appear in generic assertion or annotation lists;
// the extractor surfaces them through dedicated model fields.
var structuralNamespaces = []string{
	RDFNamespace,
	RDFSNamespace,
	OWLNamespace,
}

// IsStructural reports whether the IRI belongs to the reserved structural
// namespace set (RDF, RDFS, OWL).
func IsStructural(iri rdf.IRI) bool {
	s := string(iri)
	for _, ns := range structuralNamespaces {
		if strings.HasPrefix(s, ns) {
			return true
		}
	}
	return false
}

// LocalName returns the fragment after the last '#', or the segment after
// the last '/' when there is no fragment. IRIs with neither separator are
// returned unchanged, so the result is always non-empty for non-empty input.
func LocalName(iri string) string {
	if i := strings.LastIndex(iri, "#"); i >= 0 {
		return iri[i+1:]
	}
	if i := strings.LastIndex(iri, "/"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}

// SplitName splits an IRI into its namespace part (including the separator)
// and local name. The second return is empty when the IRI has no '#' or '/'
// separator.
func SplitName(iri string) (namespace, local string) {
	if i := strings.LastIndex(iri, "#"); i >= 0 {
		return iri[:i+1], iri[i+1:]
	}
	if i := strings.LastIndex(iri, "/"); i >= 0 {
		return iri[:i+1], iri[i+1:]
	}
	return iri, ""
}
