package vocabulary

import "github.com/c360/owldoc/rdf"

// Namespace IRIs for the vocabularies the engine reads.
const (
	RDFNamespace     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace    = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace     = "http://www.w3.org/2002/07/owl#"
	XSDNamespace     = "http://www.w3.org/2001/XMLSchema#"
	DCNamespace      = "http://purl.org/dc/elements/1.1/"
	DCTermsNamespace = "http://purl.org/dc/terms/"
	SKOSNamespace    = "http://www.w3.org/2004/02/skos/core#"
	FOAFNamespace    = "http://xmlns.com/foaf/0.1/"
)

// RDF core terms.
const (
	// RDFType links a node to its type.
	RDFType = rdf.IRI(RDFNamespace + "type")

	// RDFFirst and RDFRest encode linked-list cells; RDFNil is the canonical
	// empty-list marker that terminates a well-formed list.
	RDFFirst = rdf.IRI(RDFNamespace + "first")
	RDFRest  = rdf.IRI(RDFNamespace + "rest")
	RDFNil   = rdf.IRI(RDFNamespace + "nil")
)

// RDF Schema terms.
const (
	// RDFSLabel provides a human-readable name for a resource.
	RDFSLabel = rdf.IRI(RDFSNamespace + "label")

	// RDFSComment provides a human-readable description.
	RDFSComment = rdf.IRI(RDFSNamespace + "comment")

	RDFSSubClassOf    = rdf.IRI(RDFSNamespace + "subClassOf")
	RDFSSubPropertyOf = rdf.IRI(RDFSNamespace + "subPropertyOf")
	RDFSDomain        = rdf.IRI(RDFSNamespace + "domain")
	RDFSRange         = rdf.IRI(RDFSNamespace + "range")
	RDFSIsDefinedBy   = rdf.IRI(RDFSNamespace + "isDefinedBy")
	RDFSSeeAlso       = rdf.IRI(RDFSNamespace + "seeAlso")
	RDFSDatatype      = rdf.IRI(RDFSNamespace + "Datatype")
)

// OWL entity declaration types.
const (
	OWLOntology           = rdf.IRI(OWLNamespace + "Ontology")
	OWLClass              = rdf.IRI(OWLNamespace + "Class")
	OWLObjectProperty     = rdf.IRI(OWLNamespace + "ObjectProperty")
	OWLDatatypeProperty   = rdf.IRI(OWLNamespace + "DatatypeProperty")
	OWLAnnotationProperty = rdf.IRI(OWLNamespace + "AnnotationProperty")
	OWLNamedIndividual    = rdf.IRI(OWLNamespace + "NamedIndividual")
	OWLRestriction        = rdf.IRI(OWLNamespace + "Restriction")
)

// OWL restriction predicates. The expression decoder probes these in the
// declared order, so the order here is load-bearing for deterministic
// first-match-wins decoding.
const (
	OWLOnProperty = rdf.IRI(OWLNamespace + "onProperty")
	// OWLOnClass scopes a qualified cardinality restriction to a class.
	OWLOnClass = rdf.IRI(OWLNamespace + "onClass")

	OWLSomeValuesFrom = rdf.IRI(OWLNamespace + "someValuesFrom")
	OWLAllValuesFrom  = rdf.IRI(OWLNamespace + "allValuesFrom")
	OWLHasValue       = rdf.IRI(OWLNamespace + "hasValue")

	OWLMinCardinality          = rdf.IRI(OWLNamespace + "minCardinality")
	OWLMaxCardinality          = rdf.IRI(OWLNamespace + "maxCardinality")
	OWLCardinality             = rdf.IRI(OWLNamespace + "cardinality")
	OWLMinQualifiedCardinality = rdf.IRI(OWLNamespace + "minQualifiedCardinality")
	OWLMaxQualifiedCardinality = rdf.IRI(OWLNamespace + "maxQualifiedCardinality")
	OWLQualifiedCardinality    = rdf.IRI(OWLNamespace + "qualifiedCardinality")
)

// OWL boolean combinators and enumeration.
const (
	OWLUnionOf        = rdf.IRI(OWLNamespace + "unionOf")
	OWLIntersectionOf = rdf.IRI(OWLNamespace + "intersectionOf")
	OWLComplementOf   = rdf.IRI(OWLNamespace + "complementOf")
	OWLOneOf          = rdf.IRI(OWLNamespace + "oneOf")
)

// OWL relation and metadata predicates.
const (
	OWLEquivalentClass      = rdf.IRI(OWLNamespace + "equivalentClass")
	OWLDisjointWith         = rdf.IRI(OWLNamespace + "disjointWith")
	OWLPropertyDisjointWith = rdf.IRI(OWLNamespace + "propertyDisjointWith")
	OWLInverseOf            = rdf.IRI(OWLNamespace + "inverseOf")
	OWLSameAs               = rdf.IRI(OWLNamespace + "sameAs")
	OWLImports              = rdf.IRI(OWLNamespace + "imports")
	OWLVersionInfo          = rdf.IRI(OWLNamespace + "versionInfo")
	OWLVersionIRI           = rdf.IRI(OWLNamespace + "versionIRI")
	OWLPriorVersion         = rdf.IRI(OWLNamespace + "priorVersion")
)

// OWL object-property characteristic types, probed in this order.
const (
	OWLFunctionalProperty        = rdf.IRI(OWLNamespace + "FunctionalProperty")
	OWLInverseFunctionalProperty = rdf.IRI(OWLNamespace + "InverseFunctionalProperty")
	OWLTransitiveProperty        = rdf.IRI(OWLNamespace + "TransitiveProperty")
	OWLSymmetricProperty         = rdf.IRI(OWLNamespace + "SymmetricProperty")
	OWLAsymmetricProperty        = rdf.IRI(OWLNamespace + "AsymmetricProperty")
	OWLReflexiveProperty         = rdf.IRI(OWLNamespace + "ReflexiveProperty")
	OWLIrreflexiveProperty       = rdf.IRI(OWLNamespace + "IrreflexiveProperty")
)

// Dublin Core and DCMI Terms annotation predicates.
const (
	DCTitle       = rdf.IRI(DCNamespace + "title")
	DCDescription = rdf.IRI(DCNamespace + "description")
	DCCreator     = rdf.IRI(DCNamespace + "creator")
	DCContributor = rdf.IRI(DCNamespace + "contributor")
	DCDate        = rdf.IRI(DCNamespace + "date")

	DCTermsTitle       = rdf.IRI(DCTermsNamespace + "title")
	DCTermsDescription = rdf.IRI(DCTermsNamespace + "description")
	DCTermsCreator     = rdf.IRI(DCTermsNamespace + "creator")
	DCTermsContributor = rdf.IRI(DCTermsNamespace + "contributor")
	DCTermsDate        = rdf.IRI(DCTermsNamespace + "date")
)

// SKOS label predicates.
const (
	// SKOSPrefLabel provides the preferred lexical label for a resource.
	SKOSPrefLabel = rdf.IRI(SKOSNamespace + "prefLabel")

	// SKOSAltLabel provides an alternative lexical label for a resource.
	SKOSAltLabel = rdf.IRI(SKOSNamespace + "altLabel")

	// SKOSDefinition provides a formal definition of a concept.
	SKOSDefinition = rdf.IRI(SKOSNamespace + "definition")
)
