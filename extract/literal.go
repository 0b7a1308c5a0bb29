package extract

import (
	"strings"

	"github.com/c360/owldoc/rdf"
)

// ResolvePreferred picks the display literal for a subject from the given
// predicates, probed in order. Candidates keep encounter order; the first
// literal tagged with the primary language wins, otherwise the first
// candidate does. The remaining candidates come back as alternates,
// formatted "value @lang" when language-tagged.
func (e *Extractor) ResolvePreferred(subject rdf.Term, predicates []rdf.IRI) (string, []string) {
	var candidates []rdf.Literal
	for _, p := range predicates {
		for _, obj := range e.store.Objects(subject, p) {
			if lit, ok := obj.(rdf.Literal); ok {
				candidates = append(candidates, lit)
			}
		}
	}
	if len(candidates) == 0 {
		return "", nil
	}

	chosen := 0
	for i, lit := range candidates {
		if lit.Language == e.opts.PrimaryLanguage {
			chosen = i
			break
		}
	}

	alternates := make([]string, 0, len(candidates)-1)
	for i, lit := range candidates {
		if i == chosen {
			continue
		}
		alternates = append(alternates, formatAlternate(lit))
	}
	return candidates[chosen].Value, alternates
}

func formatAlternate(lit rdf.Literal) string {
	if lit.Language != "" {
		return lit.Value + " @" + lit.Language
	}
	return lit.Value
}

// Comment resolves the preferred description for a subject, with the
// remaining candidates as alternates.
func (e *Extractor) Comment(subject rdf.Term) (string, []string) {
	comment, alternates := e.ResolvePreferred(subject, e.opts.CommentPredicates)
	return strings.TrimSpace(comment), alternates
}

// Label resolves the preferred label for a subject.
func (e *Extractor) Label(subject rdf.Term) (string, []string) {
	return e.ResolvePreferred(subject, e.opts.LabelPredicates)
}
