package rdf

import "fmt"

// TermKind identifies which member of the term union a Term is.
type TermKind string

const (
	// KindIRI is a named node identified by an IRI.
	KindIRI TermKind = "iri"
	// KindLiteral is a literal value, optionally language-tagged or typed.
	KindLiteral TermKind = "literal"
	// KindBlank is an anonymous node with no external identifier, used to
	// encode compound structures (restrictions, RDF lists).
	KindBlank TermKind = "bnode"
)

// IsValid checks if the TermKind is one of the defined constants.
func (k TermKind) IsValid() bool {
	switch k {
	case KindIRI, KindLiteral, KindBlank:
		return true
	default:
		return false
	}
}

// Term is one node of the graph. The union is closed: IRI, Literal and
// BlankNode are the only implementations.
type Term interface {
	// TermKind reports which member of the union this term is.
	TermKind() TermKind
	// String returns a diagnostic rendering of the term. Display names are
	// the name resolver's job, not String's.
	String() string

	sealed()
}

// IRI is a named graph node.
type IRI string

// TermKind implements Term.
func (IRI) TermKind() TermKind { return KindIRI }

// String returns the raw IRI.
func (i IRI) String() string { return string(i) }

func (IRI) sealed() {}

// BlankNode is an anonymous graph node. The value is a graph-scoped
// identifier without the "_:" marker.
type BlankNode string

// TermKind implements Term.
func (BlankNode) TermKind() TermKind { return KindBlank }

// String returns the node in "_:id" form.
func (b BlankNode) String() string { return "_:" + string(b) }

func (BlankNode) sealed() {}

// Literal is a literal value with an optional language tag or datatype IRI.
// A literal carries at most one of the two, per the RDF data model; the
// extraction engine never enforces this, it just reads what the store holds.
type Literal struct {
	Value    string
	Language string
	Datatype IRI
}

// TermKind implements Term.
func (Literal) TermKind() TermKind { return KindLiteral }

// String returns the literal in a diagnostic form: the bare value, with
// "@lang" appended when language-tagged.
func (l Literal) String() string {
	if l.Language != "" {
		return fmt.Sprintf("%q@%s", l.Value, l.Language)
	}
	return l.Value
}

func (Literal) sealed() {}

// Text creates an untagged string literal.
func Text(value string) Literal {
	return Literal{Value: value}
}

// Lang creates a language-tagged string literal.
func Lang(value, language string) Literal {
	return Literal{Value: value, Language: language}
}
