package extract

import (
	"regexp"
	"strings"

	"github.com/c360/owldoc/model"
	"github.com/c360/owldoc/rdf"
	"github.com/c360/owldoc/vocabulary"
)

// autoPrefixPattern matches the machine-generated prefixes serializers
// invent for unbound namespaces. Those carry no meaning for readers, so a
// prefixed name using one is suppressed in favor of the raw URI.
var autoPrefixPattern = regexp.MustCompile(`^ns[0-9]+$`)

// DisplayName computes the human-readable name for a term:
// label if present, then prefixed name, then the raw URI. Blank nodes fall
// back to a summary of their own statements.
func (e *Extractor) DisplayName(node rdf.Term) string {
	switch v := node.(type) {
	case rdf.Literal:
		return v.Value
	case rdf.BlankNode:
		if summary := e.resolveBlankNode(v); summary != "" {
			return summary
		}
		return v.String()
	case rdf.IRI:
		return e.iriDisplayName(v)
	default:
		return ""
	}
}

func (e *Extractor) iriDisplayName(iri rdf.IRI) string {
	if label, _ := e.Label(iri); label != "" {
		return label
	}
	if prefix, local, ok := e.store.PrefixedName(iri); ok && !autoPrefixPattern.MatchString(prefix) {
		return prefix + ":" + local
	}
	return string(iri)
}

// ref builds a display-name/URI pair for an IRI-valued reference.
func (e *Extractor) ref(iri rdf.IRI) model.Ref {
	return model.Ref{Name: e.DisplayName(iri), URI: string(iri)}
}

// blankNodeStatementLimit bounds how many statements a blank node summary
// quotes before cutting off.
const blankNodeStatementLimit = 3

// resolveBlankNode summarizes an anonymous node for display. Labels and
// comments win; recognizable class expressions render as formatted
// expressions; anything else becomes up to three "name: value" pairs.
func (e *Extractor) resolveBlankNode(node rdf.BlankNode) string {
	if label, _ := e.Label(node); label != "" {
		return label
	}
	if comment, _ := e.Comment(node); comment != "" {
		return comment
	}
	if expr, ok := e.DecodeExpression(node); ok {
		return FormatExpression(expr)
	}

	var pairs []string
	for _, t := range e.store.Triples(node, nil, nil) {
		if vocabulary.IsStructural(t.Predicate) {
			continue
		}
		value := ""
		switch obj := t.Object.(type) {
		case rdf.Literal:
			value = obj.Value
		case rdf.IRI:
			value = e.iriDisplayName(obj)
		default:
			continue
		}
		pairs = append(pairs, vocabulary.LocalName(string(t.Predicate))+": "+value)
		if len(pairs) == blankNodeStatementLimit {
			break
		}
	}
	return strings.Join(pairs, " | ")
}
