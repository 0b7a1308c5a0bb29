package extract

import (
	"strings"

	"github.com/c360/owldoc/graphstore"
	"github.com/c360/owldoc/model"
	"github.com/c360/owldoc/vocabulary"
)

// pseudoPrefixMaxLen caps derived prefixes so anchors stay short.
const pseudoPrefixMaxLen = 8

func localNameOf(uri string) string {
	return vocabulary.LocalName(uri)
}

// ResolveUniqueLabels maps every documented URI to a display label that is
// unique within the document. Labels are grouped case-insensitively; a label
// shared by several terms gets qualified with the term's registered
// namespace prefix, or with a pseudo-prefix derived from its namespace when
// none is registered.
func ResolveUniqueLabels(doc *model.Document, bindings []graphstore.Binding) map[string]string {
	type entry struct {
		uri  string
		name string
	}
	var entries []entry
	add := func(uri, label string) {
		name := label
		if name == "" {
			name = localNameOf(uri)
		}
		entries = append(entries, entry{uri: uri, name: name})
	}
	for uri, c := range doc.Classes {
		add(uri, c.Label)
	}
	for uri, p := range doc.ObjectProperties {
		add(uri, p.Label)
	}
	for uri, p := range doc.DataProperties {
		add(uri, p.Label)
	}
	for uri, p := range doc.AnnotationProperties {
		add(uri, p.Label)
	}
	for uri, ind := range doc.Individuals {
		add(uri, ind.Label)
	}

	groups := make(map[string]int, len(entries))
	for _, e := range entries {
		groups[strings.ToLower(e.name)]++
	}

	out := make(map[string]string, len(entries))
	for _, e := range entries {
		if groups[strings.ToLower(e.name)] == 1 {
			out[e.uri] = e.name
			continue
		}
		if prefix := qualifierPrefix(e.uri, bindings); prefix != "" {
			out[e.uri] = prefix + ":" + e.name
			continue
		}
		out[e.uri] = e.name
	}
	return out
}

// qualifierPrefix picks the prefix used to disambiguate a colliding label:
// the longest registered binding covering the URI, unless its prefix is
// empty or the reserved "base", falling back to a derived pseudo-prefix.
func qualifierPrefix(uri string, bindings []graphstore.Binding) string {
	best := ""
	bestLen := -1
	for _, b := range bindings {
		if b.Namespace == "" || len(b.Namespace) <= bestLen {
			continue
		}
		if strings.HasPrefix(uri, b.Namespace) && len(uri) > len(b.Namespace) {
			best = b.Prefix
			bestLen = len(b.Namespace)
		}
	}
	if best != "" && best != "base" {
		return best
	}
	return pseudoPrefix(uri)
}

// pseudoPrefix derives a short prefix from a URI's namespace: the text
// before a fragment separator, or the second-to-last path segment. The
// scheme and a leading "www." are stripped, and the first dot-delimited
// piece is truncated.
func pseudoPrefix(uri string) string {
	var ns string
	if i := strings.Index(uri, "#"); i >= 0 {
		ns = uri[:i]
	} else {
		segments := strings.Split(uri, "/")
		if len(segments) < 2 {
			return ""
		}
		ns = segments[len(segments)-2]
	}
	ns = strings.TrimPrefix(ns, "https://")
	ns = strings.TrimPrefix(ns, "http://")
	ns = strings.TrimPrefix(ns, "www.")
	if ns == "" {
		return ""
	}
	piece := strings.SplitN(ns, ".", 2)[0]
	if len(piece) > pseudoPrefixMaxLen {
		piece = piece[:pseudoPrefixMaxLen]
	}
	return piece
}
