package extract

import (
	"github.com/c360/owldoc/model"
	"github.com/c360/owldoc/rdf"
	"github.com/c360/owldoc/vocabulary"
)

// characteristicProbes pairs each characteristic type with its model name.
// Probed in declaration order so output is deterministic.
var characteristicProbes = []struct {
	typ  rdf.IRI
	name model.Characteristic
}{
	{vocabulary.OWLFunctionalProperty, model.Functional},
	{vocabulary.OWLInverseFunctionalProperty, model.InverseFunctional},
	{vocabulary.OWLTransitiveProperty, model.Transitive},
	{vocabulary.OWLSymmetricProperty, model.Symmetric},
	{vocabulary.OWLAsymmetricProperty, model.Asymmetric},
	{vocabulary.OWLReflexiveProperty, model.Reflexive},
	{vocabulary.OWLIrreflexiveProperty, model.Irreflexive},
}

// extractEntity resolves the fields shared by every documented term.
func (e *Extractor) extractEntity(subject rdf.IRI, kind model.Kind) model.Entity {
	label, altLabels := e.Label(subject)
	if label == "" {
		label = vocabulary.LocalName(string(subject))
	}
	comment, altComments := e.Comment(subject)

	entity := model.Entity{
		URI:         string(subject),
		Kind:        kind,
		Label:       label,
		AltLabels:   altLabels,
		Comment:     comment,
		AltComments: altComments,
	}
	if definedBy, ok := e.firstObject(subject, vocabulary.RDFSIsDefinedBy).(rdf.IRI); ok {
		entity.DefinedBy = string(definedBy)
	}
	e.metrics.RecordEntity(string(kind))
	return entity
}

// namedSubjects returns the IRI subjects typed as the given class, keeping
// encounter order. Blank subjects are anonymous and not documented directly.
func (e *Extractor) namedSubjects(typ rdf.IRI) []rdf.IRI {
	var out []rdf.IRI
	for _, s := range e.store.Subjects(vocabulary.RDFType, typ) {
		if iri, ok := s.(rdf.IRI); ok {
			out = append(out, iri)
		}
	}
	return out
}

func (e *Extractor) extractClasses(doc *model.Document) {
	for _, subject := range e.namedSubjects(vocabulary.OWLClass) {
		cls := &model.Class{Entity: e.extractEntity(subject, model.KindClass)}

		for _, obj := range e.store.Objects(subject, vocabulary.RDFSSubClassOf) {
			switch parent := obj.(type) {
			case rdf.IRI:
				cls.SuperClasses = append(cls.SuperClasses, e.ref(parent))
			case rdf.BlankNode:
				if expr, ok := e.DecodeExpression(parent); ok {
					cls.Restrictions = append(cls.Restrictions, expr)
				}
			}
		}
		for _, s := range e.store.Subjects(vocabulary.RDFSSubClassOf, subject) {
			if child, ok := s.(rdf.IRI); ok {
				cls.SubClasses = append(cls.SubClasses, e.ref(child))
			}
		}
		for _, obj := range e.store.Objects(subject, vocabulary.OWLEquivalentClass) {
			switch eq := obj.(type) {
			case rdf.IRI:
				cls.EquivalentClasses = append(cls.EquivalentClasses, e.ref(eq))
			case rdf.BlankNode:
				// Anonymous equivalents are class expressions and
				// render alongside the restrictions.
				if expr, ok := e.DecodeExpression(eq); ok {
					cls.Restrictions = append(cls.Restrictions, expr)
				}
			}
		}
		for _, obj := range e.store.Objects(subject, vocabulary.OWLDisjointWith) {
			if other, ok := obj.(rdf.IRI); ok {
				cls.DisjointWith = append(cls.DisjointWith, e.ref(other))
			}
		}
		for _, s := range e.store.Subjects(vocabulary.RDFSDomain, subject) {
			if prop, ok := s.(rdf.IRI); ok {
				cls.InDomainOf = append(cls.InDomainOf, e.ref(prop))
			}
		}
		for _, s := range e.store.Subjects(vocabulary.RDFSRange, subject) {
			if prop, ok := s.(rdf.IRI); ok {
				cls.InRangeOf = append(cls.InRangeOf, e.ref(prop))
			}
		}
		for _, s := range e.store.Subjects(vocabulary.RDFType, rdf.Term(subject)) {
			member, ok := s.(rdf.IRI)
			if !ok || e.store.Has(member, vocabulary.RDFType, vocabulary.OWLClass) {
				continue
			}
			cls.Members = append(cls.Members, e.ref(member))
		}
		cls.ExtraAnnotations = e.extraAnnotations(subject)

		doc.Classes[string(subject)] = cls
	}
}

func (e *Extractor) extractProperties(doc *model.Document) {
	groups := []struct {
		typ  rdf.IRI
		kind model.Kind
		into map[string]*model.Property
	}{
		{vocabulary.OWLObjectProperty, model.KindObjectProperty, doc.ObjectProperties},
		{vocabulary.OWLDatatypeProperty, model.KindDataProperty, doc.DataProperties},
		{vocabulary.OWLAnnotationProperty, model.KindAnnotationProperty, doc.AnnotationProperties},
	}
	for _, g := range groups {
		for _, subject := range e.namedSubjects(g.typ) {
			g.into[string(subject)] = e.extractProperty(subject, g.kind)
		}
	}
}

func (e *Extractor) extractProperty(subject rdf.IRI, kind model.Kind) *model.Property {
	prop := &model.Property{Entity: e.extractEntity(subject, kind)}

	for _, obj := range e.store.Objects(subject, vocabulary.RDFSSubPropertyOf) {
		if parent, ok := obj.(rdf.IRI); ok {
			prop.SuperProperties = append(prop.SuperProperties, e.ref(parent))
		}
	}
	for _, s := range e.store.Subjects(vocabulary.RDFSSubPropertyOf, subject) {
		if child, ok := s.(rdf.IRI); ok {
			prop.SubProperties = append(prop.SubProperties, e.ref(child))
		}
	}
	for _, obj := range e.store.Objects(subject, vocabulary.RDFSDomain) {
		switch d := obj.(type) {
		case rdf.IRI:
			prop.Domains = append(prop.Domains, e.ref(d))
		case rdf.BlankNode:
			if expr, ok := e.DecodeExpression(d); ok {
				prop.DomainExpressions = append(prop.DomainExpressions, FormatExpression(expr))
			}
		}
	}
	for _, obj := range e.store.Objects(subject, vocabulary.RDFSRange) {
		switch r := obj.(type) {
		case rdf.IRI:
			prop.Ranges = append(prop.Ranges, e.ref(r))
		case rdf.BlankNode:
			if expr, ok := e.DecodeExpression(r); ok {
				prop.RangeExpressions = append(prop.RangeExpressions, FormatExpression(expr))
			}
		}
	}
	// Inverses and logical characteristics only apply to object properties.
	if kind == model.KindObjectProperty {
		for _, obj := range e.store.Objects(subject, vocabulary.OWLInverseOf) {
			if inv, ok := obj.(rdf.IRI); ok {
				prop.InverseOf = append(prop.InverseOf, e.ref(inv))
			}
		}
		for _, probe := range characteristicProbes {
			if e.store.Has(subject, vocabulary.RDFType, probe.typ) {
				prop.Characteristics = append(prop.Characteristics, probe.name)
			}
		}
	}
	for _, obj := range e.store.Objects(subject, vocabulary.OWLPropertyDisjointWith) {
		if other, ok := obj.(rdf.IRI); ok {
			prop.DisjointWith = append(prop.DisjointWith, e.ref(other))
		}
	}
	prop.ExtraAnnotations = e.extraAnnotations(subject)
	return prop
}

func (e *Extractor) extractIndividuals(doc *model.Document) {
	for _, subject := range e.namedSubjects(vocabulary.OWLNamedIndividual) {
		ind := &model.Individual{Entity: e.extractEntity(subject, model.KindIndividual)}

		for _, obj := range e.store.Objects(subject, vocabulary.RDFType) {
			typ, ok := obj.(rdf.IRI)
			if !ok || typ == vocabulary.OWLNamedIndividual {
				continue
			}
			ind.Types = append(ind.Types, e.ref(typ))
		}
		for _, obj := range e.store.Objects(subject, vocabulary.OWLSameAs) {
			if same, ok := obj.(rdf.IRI); ok {
				ind.SameAs = append(ind.SameAs, e.ref(same))
			}
		}
		ind.Assertions = e.extractAssertions(subject)

		doc.Individuals[string(subject)] = ind
	}
}

func (e *Extractor) extractAssertions(subject rdf.IRI) []model.Assertion {
	var out []model.Assertion
	for _, t := range e.store.Triples(subject, nil, nil) {
		if e.isDescriptivePredicate(t.Predicate) {
			continue
		}
		assertion := model.Assertion{
			Property:    e.iriDisplayName(t.Predicate),
			PropertyURI: string(t.Predicate),
		}
		switch obj := t.Object.(type) {
		case rdf.Literal:
			assertion.Value = obj.Value
		case rdf.IRI:
			assertion.Value = e.iriDisplayName(obj)
			assertion.ValueURI = string(obj)
		case rdf.BlankNode:
			summary := e.resolveBlankNode(obj)
			if summary == "" {
				continue
			}
			assertion.Value = summary
		}
		out = append(out, assertion)
	}
	return out
}

// extraAnnotations keeps the statements on a term that the structured
// extraction does not already surface.
func (e *Extractor) extraAnnotations(subject rdf.IRI) []model.Annotation {
	var out []model.Annotation
	for _, t := range e.store.Triples(subject, nil, nil) {
		if e.isDescriptivePredicate(t.Predicate) {
			continue
		}
		namespace, local := vocabulary.SplitName(string(t.Predicate))
		annotation := model.Annotation{
			Namespace:   namespace,
			Property:    local,
			PropertyURI: string(t.Predicate),
		}
		switch obj := t.Object.(type) {
		case rdf.Literal:
			annotation.Value = obj.Value
		case rdf.IRI:
			annotation.Value = e.iriDisplayName(obj)
			annotation.ValueURI = string(obj)
		default:
			continue
		}
		out = append(out, annotation)
	}
	return out
}

// isDescriptivePredicate reports whether the predicate is already handled by
// the structured extraction: structural vocabulary, labels, and comments.
func (e *Extractor) isDescriptivePredicate(p rdf.IRI) bool {
	if vocabulary.IsStructural(p) {
		return true
	}
	for _, lp := range e.opts.LabelPredicates {
		if p == lp {
			return true
		}
	}
	for _, cp := range e.opts.CommentPredicates {
		if p == cp {
			return true
		}
	}
	return false
}
