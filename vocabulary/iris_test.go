package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360/owldoc/rdf"
)

func TestLocalName(t *testing.T) {
	tests := []struct {
		name     string
		iri      string
		expected string
	}{
		{
			name:     "hash fragment",
			iri:      "http://example.org/onto#Person",
			expected: "Person",
		},
		{
			name:     "slash segment",
			iri:      "http://example.org/onto/Person",
			expected: "Person",
		},
		{
			name:     "hash wins over slash",
			iri:      "http://example.org/onto/v1#Person",
			expected: "Person",
		},
		{
			name:     "no separator returns input",
			iri:      "urn-like-identifier",
			expected: "urn-like-identifier",
		},
		{
			name:     "empty input",
			iri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LocalName(tt.iri))
		})
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		iri       string
		namespace string
		local     string
	}{
		{
			name:      "hash namespace",
			iri:       "http://example.org/onto#Person",
			namespace: "http://example.org/onto#",
			local:     "Person",
		},
		{
			name:      "slash namespace",
			iri:       "http://purl.org/dc/terms/title",
			namespace: "http://purl.org/dc/terms/",
			local:     "title",
		},
		{
			name:      "no separator",
			iri:       "urn-like",
			namespace: "urn-like",
			local:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, local := SplitName(tt.iri)
			assert.Equal(t, tt.namespace, ns)
			assert.Equal(t, tt.local, local)
		})
	}
}

func TestIsStructural(t *testing.T) {
	tests := []struct {
		name     string
		iri      rdf.IRI
		expected bool
	}{
		{name: "rdf type", iri: RDFType, expected: true},
		{name: "rdfs label", iri: RDFSLabel, expected: true},
		{name: "owl sameAs", iri: OWLSameAs, expected: true},
		{name: "dcterms title", iri: DCTermsTitle, expected: false},
		{name: "skos prefLabel", iri: SKOSPrefLabel, expected: false},
		{name: "domain predicate", iri: rdf.IRI("http://example.org/onto#hasPart"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsStructural(tt.iri))
		})
	}
}
