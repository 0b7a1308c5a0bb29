package model

import (
	"regexp"
	"strings"
)

// Kind identifies which documentation section an entity belongs to.
type Kind string

const (
	KindClass              Kind = "class"
	KindObjectProperty     Kind = "object-property"
	KindDataProperty       Kind = "data-property"
	KindAnnotationProperty Kind = "annotation-property"
	KindIndividual         Kind = "individual"
)

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindClass, KindObjectProperty, KindDataProperty, KindAnnotationProperty, KindIndividual:
		return true
	}
	return false
}

// Characteristic is a logical property characteristic.
type Characteristic string

const (
	Functional        Characteristic = "functional"
	InverseFunctional Characteristic = "inverse-functional"
	Transitive        Characteristic = "transitive"
	Symmetric         Characteristic = "symmetric"
	Asymmetric        Characteristic = "asymmetric"
	Reflexive         Characteristic = "reflexive"
	Irreflexive       Characteristic = "irreflexive"
)

// String returns the characteristic name.
func (c Characteristic) String() string { return string(c) }

// UnknownOntologyURI is the sentinel ontology identifier used when the graph
// declares no owl:Ontology node.
const UnknownOntologyURI = "urn:owldoc:unknown"

// Entity carries the fields common to every documented term.
type Entity struct {
	URI         string   `json:"uri"`
	Kind        Kind     `json:"kind"`
	Label       string   `json:"label"`
	AltLabels   []string `json:"alt_labels,omitempty"`
	Comment     string   `json:"comment,omitempty"`
	AltComments []string `json:"alt_comments,omitempty"`
	DefinedBy   string   `json:"defined_by,omitempty"`
	DisplayURL  string   `json:"display_url"`
}

// Ref is a display-name/URI pair pointing at another term.
type Ref struct {
	Name string `json:"name"`
	URI  string `json:"uri,omitempty"`
}

// Annotation is a non-structural statement kept verbatim on an entity.
type Annotation struct {
	Namespace   string `json:"namespace"`
	Property    string `json:"property"`
	PropertyURI string `json:"property_uri"`
	Value       string `json:"value"`
	ValueURI    string `json:"value_uri,omitempty"`
}

// Class documents one owl:Class.
type Class struct {
	Entity
	SuperClasses      []Ref             `json:"super_classes,omitempty"`
	SubClasses        []Ref             `json:"sub_classes,omitempty"`
	EquivalentClasses []Ref             `json:"equivalent_classes,omitempty"`
	DisjointWith      []Ref             `json:"disjoint_with,omitempty"`
	Restrictions      []ClassExpression `json:"restrictions,omitempty"`
	InDomainOf        []Ref             `json:"in_domain_of,omitempty"`
	InRangeOf         []Ref             `json:"in_range_of,omitempty"`
	Members           []Ref             `json:"members,omitempty"`
	ExtraAnnotations  []Annotation      `json:"extra_annotations,omitempty"`
}

// Property documents an object, datatype, or annotation property.
type Property struct {
	Entity
	SuperProperties   []Ref            `json:"super_properties,omitempty"`
	SubProperties     []Ref            `json:"sub_properties,omitempty"`
	Domains           []Ref            `json:"domains,omitempty"`
	Ranges            []Ref            `json:"ranges,omitempty"`
	DomainExpressions []string         `json:"domain_expressions,omitempty"`
	RangeExpressions  []string         `json:"range_expressions,omitempty"`
	InverseOf         []Ref            `json:"inverse_of,omitempty"`
	DisjointWith      []Ref            `json:"disjoint_with,omitempty"`
	Characteristics   []Characteristic `json:"characteristics,omitempty"`
	ExtraAnnotations  []Annotation     `json:"extra_annotations,omitempty"`
}

// Assertion is one fact stated about an individual.
type Assertion struct {
	Property    string `json:"property"`
	PropertyURI string `json:"property_uri"`
	Value       string `json:"value"`
	ValueURI    string `json:"value_uri,omitempty"`
}

// Individual documents one owl:NamedIndividual.
type Individual struct {
	Entity
	Types      []Ref       `json:"types,omitempty"`
	SameAs     []Ref       `json:"same_as,omitempty"`
	Assertions []Assertion `json:"assertions,omitempty"`
}

// OntologyMeta is the document-level metadata block.
type OntologyMeta struct {
	URI           string   `json:"uri"`
	Title         string   `json:"title,omitempty"`
	Description   string   `json:"description,omitempty"`
	Creators      []string `json:"creators,omitempty"`
	Contributors  []string `json:"contributors,omitempty"`
	Date          string   `json:"date,omitempty"`
	Version       string   `json:"version,omitempty"`
	VersionIRI    string   `json:"version_iri,omitempty"`
	PriorVersions []string `json:"prior_versions,omitempty"`
	Imports       []string `json:"imports,omitempty"`
}

// Document is the complete extraction result for one graph.
type Document struct {
	Meta                 OntologyMeta           `json:"meta"`
	Classes              map[string]*Class      `json:"classes"`
	ObjectProperties     map[string]*Property   `json:"object_properties"`
	DataProperties       map[string]*Property   `json:"data_properties"`
	AnnotationProperties map[string]*Property   `json:"annotation_properties"`
	Individuals          map[string]*Individual `json:"individuals"`
	Namespaces           map[string]string      `json:"namespaces,omitempty"`
	UniqueLabels         map[string]string      `json:"unique_labels,omitempty"`
}

// NewDocument returns a Document with all maps allocated.
func NewDocument() *Document {
	return &Document{
		Classes:              make(map[string]*Class),
		ObjectProperties:     make(map[string]*Property),
		DataProperties:       make(map[string]*Property),
		AnnotationProperties: make(map[string]*Property),
		Individuals:          make(map[string]*Individual),
		Namespaces:           make(map[string]string),
		UniqueLabels:         make(map[string]string),
	}
}

// EntityCount returns the total number of documented terms.
func (d *Document) EntityCount() int {
	return len(d.Classes) + len(d.ObjectProperties) + len(d.DataProperties) +
		len(d.AnnotationProperties) + len(d.Individuals)
}

var anchorUnsafe = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Anchor converts a URI into a fragment identifier safe for HTML anchors.
func Anchor(uri string) string {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(uri, "https://"), "http://")
	return anchorUnsafe.ReplaceAllString(trimmed, "_")
}

// DisplayURL returns the link target for a URI: a local fragment when the
// URI names a term documented in this model, the URI itself otherwise.
func DisplayURL(uri string, local map[string]bool) string {
	if local[uri] {
		return "#" + Anchor(uri)
	}
	return uri
}
