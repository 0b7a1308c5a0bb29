package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermKinds(t *testing.T) {
	tests := []struct {
		name string
		term Term
		kind TermKind
	}{
		{name: "iri", term: IRI("http://example.org/Person"), kind: KindIRI},
		{name: "blank node", term: BlankNode("b0"), kind: KindBlank},
		{name: "plain literal", term: Text("Person"), kind: KindLiteral},
		{name: "tagged literal", term: Lang("Personne", "fr"), kind: KindLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.term.TermKind())
			assert.True(t, tt.term.TermKind().IsValid())
		})
	}
}

func TestTermKindIsValid(t *testing.T) {
	assert.False(t, TermKind("quad").IsValid())
	assert.False(t, TermKind("").IsValid())
}

func TestTermString(t *testing.T) {
	assert.Equal(t, "http://example.org/Person", IRI("http://example.org/Person").String())
	assert.Equal(t, "_:b0", BlankNode("b0").String())
	assert.Equal(t, "Person", Text("Person").String())
	assert.Equal(t, `"Personne"@fr`, Lang("Personne", "fr").String())
}

func TestTermRecordRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		term Term
	}{
		{name: "iri", term: IRI("http://example.org/Person")},
		{name: "blank node", term: BlankNode("b12")},
		{name: "plain literal", term: Text("Person")},
		{name: "tagged literal", term: Lang("Personne", "fr")},
		{name: "typed literal", term: Literal{Value: "3", Datatype: IRI("http://www.w3.org/2001/XMLSchema#integer")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := NewTermRecord(tt.term).Term()
			require.NoError(t, err)
			assert.Equal(t, tt.term, decoded)
		})
	}
}

func TestTermRecordInvalid(t *testing.T) {
	tests := []struct {
		name   string
		record TermRecord
	}{
		{name: "unknown kind", record: TermRecord{Kind: "quad", Value: "x"}},
		{name: "empty iri", record: TermRecord{Kind: KindIRI}},
		{name: "empty blank id", record: TermRecord{Kind: KindBlank}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.record.Term()
			assert.Error(t, err)
		})
	}
}

func TestTripleString(t *testing.T) {
	tr := Triple{
		Subject:   IRI("http://example.org/Person"),
		Predicate: IRI("http://www.w3.org/2000/01/rdf-schema#label"),
		Object:    Lang("Person", "en"),
	}
	assert.Equal(t, `http://example.org/Person http://www.w3.org/2000/01/rdf-schema#label "Person"@en`, tr.String())
}
