package extract

import (
	"strconv"
	"strings"

	"github.com/c360/owldoc/model"
	"github.com/c360/owldoc/rdf"
	"github.com/c360/owldoc/vocabulary"
)

// maxExpressionDepth bounds recursion through nested expressions so cyclic
// blank node structures cannot overflow the stack.
const maxExpressionDepth = 32

// restrictionProbe maps a restriction predicate to its kind. Probed in
// order; the first predicate with a value decides the kind.
type restrictionProbe struct {
	predicate rdf.IRI
	kind      model.RestrictionKind
}

var restrictionProbes = []restrictionProbe{
	{vocabulary.OWLSomeValuesFrom, model.RestrictionSome},
	{vocabulary.OWLAllValuesFrom, model.RestrictionOnly},
	{vocabulary.OWLHasValue, model.RestrictionHasValue},
	{vocabulary.OWLMinCardinality, model.RestrictionMin},
	{vocabulary.OWLMaxCardinality, model.RestrictionMax},
	{vocabulary.OWLCardinality, model.RestrictionExactly},
	{vocabulary.OWLMinQualifiedCardinality, model.RestrictionMinQualified},
	{vocabulary.OWLMaxQualifiedCardinality, model.RestrictionMaxQualified},
	{vocabulary.OWLQualifiedCardinality, model.RestrictionExactlyQualified},
}

// DecodeExpression turns a term into a class expression. IRIs become atomic
// references and literals become literal values; blank nodes are decoded
// structurally. ok is false when a blank node matches no known expression
// shape or a restriction's target cannot be resolved.
func (e *Extractor) DecodeExpression(node rdf.Term) (model.ClassExpression, bool) {
	return e.decodeExpression(node, 0)
}

func (e *Extractor) decodeExpression(node rdf.Term, depth int) (model.ClassExpression, bool) {
	if depth > maxExpressionDepth {
		e.metrics.RecordExpression("unknown", "depth_exceeded")
		return nil, false
	}

	switch v := node.(type) {
	case rdf.IRI:
		return model.AtomicReference{Name: e.DisplayName(v), URI: string(v)}, true
	case rdf.Literal:
		return model.LiteralValue{Value: v.Value}, true
	case rdf.BlankNode:
		return e.decodeBlankExpression(v, depth)
	default:
		return nil, false
	}
}

func (e *Extractor) decodeBlankExpression(node rdf.BlankNode, depth int) (model.ClassExpression, bool) {
	// Restrictions are probed before the boolean combinators; a node
	// carrying both shapes decodes as the restriction.
	if _, isRestriction := e.firstObject(node, vocabulary.OWLOnProperty).(rdf.IRI); isRestriction {
		return e.decodeRestriction(node, depth)
	}
	if head := e.firstObject(node, vocabulary.OWLUnionOf); head != nil {
		members, ok := e.decodeList(head, depth)
		if !ok {
			e.metrics.RecordExpression("union", "malformed")
			return nil, false
		}
		e.metrics.RecordExpression("union", "decoded")
		return model.Union{Members: members}, true
	}
	if head := e.firstObject(node, vocabulary.OWLIntersectionOf); head != nil {
		members, ok := e.decodeList(head, depth)
		if !ok {
			e.metrics.RecordExpression("intersection", "malformed")
			return nil, false
		}
		e.metrics.RecordExpression("intersection", "decoded")
		return model.Intersection{Members: members}, true
	}
	if target := e.firstObject(node, vocabulary.OWLComplementOf); target != nil {
		inner, ok := e.decodeExpression(target, depth+1)
		if !ok {
			e.metrics.RecordExpression("complement", "malformed")
			return nil, false
		}
		e.metrics.RecordExpression("complement", "decoded")
		return model.Complement{Of: inner}, true
	}
	if head := e.firstObject(node, vocabulary.OWLOneOf); head != nil {
		members, ok := e.decodeList(head, depth)
		if !ok {
			e.metrics.RecordExpression("enumeration", "malformed")
			return nil, false
		}
		e.metrics.RecordExpression("enumeration", "decoded")
		return model.Enumeration{Members: members}, true
	}
	e.metrics.RecordExpression("unknown", "unrecognized")
	return nil, false
}

func (e *Extractor) decodeRestriction(node rdf.BlankNode, depth int) (model.ClassExpression, bool) {
	onProperty := e.firstObject(node, vocabulary.OWLOnProperty)
	prop, isIRI := onProperty.(rdf.IRI)
	if !isIRI {
		e.metrics.RecordExpression("restriction", "unrecognized")
		return nil, false
	}

	for _, probe := range restrictionProbes {
		value := e.firstObject(node, probe.predicate)
		if value == nil {
			continue
		}
		target, ok := e.decodeExpression(value, depth+1)
		if !ok {
			// An unresolvable target invalidates the whole restriction.
			e.metrics.RecordExpression("restriction", "malformed")
			return nil, false
		}
		if lit, isLit := target.(model.LiteralValue); isLit {
			target = model.LiteralValue{Value: cardinalityValue(lit.Value)}
		}
		restriction := model.Restriction{
			OnProperty: e.ref(prop),
			Kind:       probe.kind,
			Target:     target,
		}
		if probe.kind.IsQualified() {
			if qualifier, ok := e.firstObject(node, vocabulary.OWLOnClass).(rdf.IRI); ok {
				ref := e.ref(qualifier)
				restriction.QualifyingClass = &ref
			}
		}
		e.metrics.RecordExpression("restriction", "decoded")
		return restriction, true
	}

	e.metrics.RecordExpression("restriction", "unrecognized")
	return nil, false
}

// decodeList walks an RDF list and decodes every member. A malformed member
// fails the whole list; a truncated traversal keeps the members seen so far.
func (e *Extractor) decodeList(head rdf.Term, depth int) ([]model.ClassExpression, bool) {
	var members []model.ClassExpression
	for _, item := range e.listMembers(head) {
		decoded, ok := e.decodeExpression(item, depth+1)
		if !ok {
			return nil, false
		}
		members = append(members, decoded)
	}
	return members, true
}

// listMembers traverses the rdf:first/rdf:rest chain from head in order,
// stopping at rdf:nil. Cycles and chains longer than the configured budget
// truncate the traversal; the members collected so far are kept.
func (e *Extractor) listMembers(head rdf.Term) []rdf.Term {
	var members []rdf.Term
	visited := make(map[rdf.Term]bool)
	node := head
	for i := 0; i < e.opts.MaxListNodes; i++ {
		if node == nil || node == rdf.Term(vocabulary.RDFNil) {
			return members
		}
		if visited[node] {
			e.truncateList(head, "cycle")
			return members
		}
		visited[node] = true

		if first := e.firstObject(node, vocabulary.RDFFirst); first != nil {
			members = append(members, first)
		}
		node = e.firstObject(node, vocabulary.RDFRest)
	}
	if node != nil && node != rdf.Term(vocabulary.RDFNil) {
		e.truncateList(head, "budget")
	}
	return members
}

func (e *Extractor) truncateList(head rdf.Term, reason string) {
	e.metrics.RecordListTruncation()
	e.logger.Warn("rdf list traversal truncated",
		"head", head.String(),
		"reason", reason,
		"budget", e.opts.MaxListNodes)
}

// firstObject returns the first object of (subject, predicate, *) in
// encounter order, or nil.
func (e *Extractor) firstObject(subject rdf.Term, predicate rdf.IRI) rdf.Term {
	objects := e.store.Objects(subject, predicate)
	if len(objects) == 0 {
		return nil
	}
	return objects[0]
}

// FormatExpression renders a decoded expression as a compact display
// string, e.g. "hasPart some Wheel" or "(Cat or Dog)".
func FormatExpression(expr model.ClassExpression) string {
	switch v := expr.(type) {
	case model.AtomicReference:
		return v.Name
	case model.LiteralValue:
		return v.Value
	case model.Restriction:
		return formatRestriction(v)
	case model.Union:
		return "(" + joinMembers(v.Members, " or ") + ")"
	case model.Intersection:
		return "(" + joinMembers(v.Members, " and ") + ")"
	case model.Complement:
		return "not " + FormatExpression(v.Of)
	case model.Enumeration:
		return "{" + joinMembers(v.Members, ", ") + "}"
	default:
		return ""
	}
}

func formatRestriction(r model.Restriction) string {
	keyword := restrictionKeyword(r.Kind)
	parts := []string{r.OnProperty.Name, keyword}
	if r.Target != nil {
		parts = append(parts, FormatExpression(r.Target))
	}
	if r.QualifyingClass != nil {
		parts = append(parts, r.QualifyingClass.Name)
	}
	return strings.Join(parts, " ")
}

// restrictionKeyword maps qualified cardinality kinds onto the plain
// keywords used for display; the qualifier class carries the distinction.
func restrictionKeyword(kind model.RestrictionKind) string {
	switch kind {
	case model.RestrictionMinQualified:
		return string(model.RestrictionMin)
	case model.RestrictionMaxQualified:
		return string(model.RestrictionMax)
	case model.RestrictionExactlyQualified:
		return string(model.RestrictionExactly)
	default:
		return string(kind)
	}
}

func joinMembers(members []model.ClassExpression, sep string) string {
	parts := make([]string, 0, len(members))
	for _, m := range members {
		parts = append(parts, FormatExpression(m))
	}
	return strings.Join(parts, sep)
}

// cardinalityValue parses a cardinality literal for display; non-numeric
// values pass through unchanged.
func cardinalityValue(value string) string {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		return strconv.Itoa(n)
	}
	return value
}
