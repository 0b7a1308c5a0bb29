package extract

import (
	"strings"

	"github.com/c360/owldoc/model"
	"github.com/c360/owldoc/rdf"
	"github.com/c360/owldoc/vocabulary"
)

// ExtractMetadata builds the document-level header from the owl:Ontology
// node. A graph without one yields the sentinel URI and empty fields.
func (e *Extractor) ExtractMetadata() model.OntologyMeta {
	subject := e.ontologySubject()
	if subject == "" {
		e.logger.Warn("no ontology declaration found", "fallback", model.UnknownOntologyURI)
		return model.OntologyMeta{URI: model.UnknownOntologyURI}
	}

	meta := model.OntologyMeta{URI: string(subject)}
	meta.Title = e.firstLiteral(subject,
		vocabulary.DCTermsTitle, vocabulary.DCTitle, vocabulary.RDFSLabel)
	meta.Description = e.descriptionBlock(subject)
	meta.Creators = e.literalValues(subject, vocabulary.DCTermsCreator, vocabulary.DCCreator)
	meta.Contributors = e.literalValues(subject, vocabulary.DCTermsContributor, vocabulary.DCContributor)
	meta.Date = e.firstLiteral(subject, vocabulary.DCTermsDate, vocabulary.DCDate)
	meta.Version = e.firstLiteral(subject, vocabulary.OWLVersionInfo)
	if v, ok := e.firstObject(subject, vocabulary.OWLVersionIRI).(rdf.IRI); ok {
		meta.VersionIRI = string(v)
	}
	for _, obj := range e.store.Objects(subject, vocabulary.OWLPriorVersion) {
		if prior, ok := obj.(rdf.IRI); ok {
			meta.PriorVersions = append(meta.PriorVersions, string(prior))
		}
	}
	for _, obj := range e.store.Objects(subject, vocabulary.OWLImports) {
		if imported, ok := obj.(rdf.IRI); ok {
			meta.Imports = append(meta.Imports, string(imported))
		}
	}
	return meta
}

// ontologySubject returns the first IRI declared as owl:Ontology.
func (e *Extractor) ontologySubject() rdf.IRI {
	for _, s := range e.store.Subjects(vocabulary.RDFType, vocabulary.OWLOntology) {
		if iri, ok := s.(rdf.IRI); ok {
			return iri
		}
	}
	return ""
}

// firstLiteral resolves the preferred literal across the predicates in
// order, language preference applied per predicate.
func (e *Extractor) firstLiteral(subject rdf.Term, predicates ...rdf.IRI) string {
	for _, p := range predicates {
		if value, _ := e.ResolvePreferred(subject, []rdf.IRI{p}); value != "" {
			return value
		}
	}
	return ""
}

// literalValues collects every literal object of the predicates in order.
func (e *Extractor) literalValues(subject rdf.Term, predicates ...rdf.IRI) []string {
	var out []string
	for _, p := range predicates {
		for _, obj := range e.store.Objects(subject, p) {
			switch v := obj.(type) {
			case rdf.Literal:
				out = append(out, v.Value)
			case rdf.IRI:
				out = append(out, e.iriDisplayName(v))
			}
		}
	}
	return out
}

// descriptionBlock joins the ontology's descriptions, preferred one first,
// into a paragraph-separated block.
func (e *Extractor) descriptionBlock(subject rdf.Term) string {
	predicates := []rdf.IRI{
		vocabulary.DCTermsDescription, vocabulary.DCDescription, vocabulary.RDFSComment,
	}
	for _, p := range predicates {
		value, alternates := e.ResolvePreferred(subject, []rdf.IRI{p})
		if value == "" {
			continue
		}
		parts := append([]string{value}, alternates...)
		return strings.Join(parts, "\n\n")
	}
	return ""
}
