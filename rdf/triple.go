package rdf

import (
	"fmt"

	"github.com/c360/owldoc/errors"
)

// Triple is one (subject, predicate, object) fact about the ontology.
type Triple struct {
	// Subject is the node the triple describes: an IRI or a BlankNode.
	Subject Term

	// Predicate is always a named node.
	Predicate IRI

	// Object is the value or target node: any term kind.
	Object Term
}

// String renders the triple for diagnostics.
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s", t.Subject, t.Predicate, t.Object)
}

// TermRecord is the JSON snapshot encoding of a Term.
type TermRecord struct {
	Kind     TermKind `json:"kind"`
	Value    string   `json:"value"`
	Language string   `json:"lang,omitempty"`
	Datatype string   `json:"datatype,omitempty"`
}

// NewTermRecord encodes a term for snapshot serialization.
func NewTermRecord(t Term) TermRecord {
	switch v := t.(type) {
	case IRI:
		return TermRecord{Kind: KindIRI, Value: string(v)}
	case BlankNode:
		return TermRecord{Kind: KindBlank, Value: string(v)}
	case Literal:
		return TermRecord{
			Kind:     KindLiteral,
			Value:    v.Value,
			Language: v.Language,
			Datatype: string(v.Datatype),
		}
	default:
		// Unreachable for the closed union; keep the zero record explicit.
		return TermRecord{}
	}
}

// Term decodes the record back into a term.
func (r TermRecord) Term() (Term, error) {
	switch r.Kind {
	case KindIRI:
		if r.Value == "" {
			return nil, errors.WrapInvalid(errors.ErrInvalidTerm, "rdf", "Term", "empty iri value")
		}
		return IRI(r.Value), nil
	case KindBlank:
		if r.Value == "" {
			return nil, errors.WrapInvalid(errors.ErrInvalidTerm, "rdf", "Term", "empty blank node id")
		}
		return BlankNode(r.Value), nil
	case KindLiteral:
		return Literal{Value: r.Value, Language: r.Language, Datatype: IRI(r.Datatype)}, nil
	default:
		return nil, errors.WrapInvalid(errors.ErrInvalidTerm, "rdf", "Term",
			fmt.Sprintf("unknown term kind %q", r.Kind))
	}
}
