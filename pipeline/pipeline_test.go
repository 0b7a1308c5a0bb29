package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/owldoc/config"
	"github.com/c360/owldoc/errors"
	"github.com/c360/owldoc/graphstore"
	"github.com/c360/owldoc/rdf"
	"github.com/c360/owldoc/vocabulary"
)

const exNS = "http://example.org/onto#"

func testStore() *graphstore.Memory {
	store := graphstore.NewMemory()
	store.Bind("ex", exNS)
	person := rdf.IRI(exNS + "Person")
	store.Add(
		rdf.Triple{Subject: person, Predicate: vocabulary.RDFType, Object: vocabulary.OWLClass},
		rdf.Triple{Subject: person, Predicate: vocabulary.RDFSLabel, Object: rdf.Lang("Person", "en")},
		rdf.Triple{Subject: person, Predicate: vocabulary.RDFSLabel, Object: rdf.Lang("Personne", "fr")},
	)
	return store
}

// fakeReasoner adds one inferred class to a copy of the store.
type fakeReasoner struct {
	called bool
	fail   bool
}

func (f *fakeReasoner) Materialize(_ context.Context, store graphstore.Store) (graphstore.Store, error) {
	f.called = true
	if f.fail {
		return nil, fmt.Errorf("inconsistent ontology")
	}
	out := graphstore.NewMemory()
	for _, b := range store.Namespaces() {
		out.Bind(b.Prefix, b.Namespace)
	}
	out.Add(store.Triples(nil, nil, nil)...)
	out.Add(rdf.Triple{
		Subject:   rdf.IRI(exNS + "Inferred"),
		Predicate: vocabulary.RDFType,
		Object:    vocabulary.OWLClass,
	})
	return out, nil
}

func TestRun(t *testing.T) {
	p := New()
	doc, err := p.Run(context.Background(), testStore(), config.Default())
	require.NoError(t, err)

	require.Len(t, doc.Classes, 1)
	assert.Equal(t, "Person", doc.Classes[exNS+"Person"].Label)
}

func TestRunNilStore(t *testing.T) {
	p := New()
	_, err := p.Run(context.Background(), nil, config.Default())
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.MaxListNodes = -1

	p := New()
	_, err := p.Run(context.Background(), testStore(), cfg)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestRunWithReasoner(t *testing.T) {
	reasoner := &fakeReasoner{}
	cfg := config.Default()
	cfg.Reasoning = true

	p := New(WithReasoner(reasoner))
	doc, err := p.Run(context.Background(), testStore(), cfg)
	require.NoError(t, err)

	assert.True(t, reasoner.called)
	assert.Len(t, doc.Classes, 2, "inferred class included")
}

func TestRunReasonerDisabledByConfig(t *testing.T) {
	reasoner := &fakeReasoner{}
	p := New(WithReasoner(reasoner))

	doc, err := p.Run(context.Background(), testStore(), config.Default())
	require.NoError(t, err)
	assert.False(t, reasoner.called)
	assert.Len(t, doc.Classes, 1)
}

func TestRunReasonerFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Reasoning = true

	p := New(WithReasoner(&fakeReasoner{fail: true}))
	_, err := p.Run(context.Background(), testStore(), cfg)
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
}

func TestRunLanguages(t *testing.T) {
	p := New()
	docs, err := p.RunLanguages(context.Background(), testStore(), config.Default(), []string{"en", "fr"})
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "Person", docs["en"].Classes[exNS+"Person"].Label)
	assert.Equal(t, "Personne", docs["fr"].Classes[exNS+"Person"].Label)
}

func TestRunLanguagesDefaultsToPrimary(t *testing.T) {
	p := New()
	docs, err := p.RunLanguages(context.Background(), testStore(), config.Default(), nil)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Contains(t, docs, "en")
}
