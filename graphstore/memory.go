package graphstore

import (
	"strings"
	"sync"

	"github.com/c360/owldoc/pkg/cache"
	"github.com/c360/owldoc/rdf"
)

// prefixedNameCacheSize bounds the memoized prefixed-name results. Vocabulary
// sizes are small; this mostly guards adversarial inputs.
const prefixedNameCacheSize = 4096

// prefixedName is the cached result of a PrefixedName lookup.
type prefixedName struct {
	prefix string
	local  string
	ok     bool
}

// Memory is an insertion-ordered, indexed, in-memory triple store. Writes
// (Add, Bind) happen while loading; once extraction starts the store must be
// treated as read-only, which makes it safe to share across parallel runs.
type Memory struct {
	mu       sync.RWMutex
	triples  []rdf.Triple
	seen     map[string]struct{}
	bySubj   map[string][]int
	byPred   map[string][]int
	byObj    map[string][]int
	bindings []Binding
	names    *cache.LRU[prefixedName]
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{
		seen:   make(map[string]struct{}),
		bySubj: make(map[string][]int),
		byPred: make(map[string][]int),
		byObj:  make(map[string][]int),
		names:  cache.NewLRU[prefixedName](prefixedNameCacheSize),
	}
}

// termKey builds a collision-free map key for a term. The unit separator
// cannot appear in IRIs or blank node ids.
func termKey(t rdf.Term) string {
	switch v := t.(type) {
	case rdf.IRI:
		return "i\x1f" + string(v)
	case rdf.BlankNode:
		return "b\x1f" + string(v)
	case rdf.Literal:
		return "l\x1f" + v.Value + "\x1f" + v.Language + "\x1f" + string(v.Datatype)
	default:
		return ""
	}
}

func tripleKey(t rdf.Triple) string {
	return termKey(t.Subject) + "\x1e" + string(t.Predicate) + "\x1e" + termKey(t.Object)
}

// Add appends triples, ignoring exact duplicates. Nil-positioned or
// malformed triples (non-IRI predicate is impossible by construction;
// nil subject or object is not) are skipped.
func (m *Memory) Add(triples ...rdf.Triple) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range triples {
		if t.Subject == nil || t.Predicate == "" || t.Object == nil {
			continue
		}
		key := tripleKey(t)
		if _, dup := m.seen[key]; dup {
			continue
		}
		m.seen[key] = struct{}{}

		idx := len(m.triples)
		m.triples = append(m.triples, t)
		m.bySubj[termKey(t.Subject)] = append(m.bySubj[termKey(t.Subject)], idx)
		m.byPred[termKey(t.Predicate)] = append(m.byPred[termKey(t.Predicate)], idx)
		m.byObj[termKey(t.Object)] = append(m.byObj[termKey(t.Object)], idx)
	}
}

// Bind registers a prefix for a namespace. Re-binding an existing prefix
// replaces its namespace. Binding invalidates memoized prefixed names.
func (m *Memory) Bind(prefix, namespace string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, b := range m.bindings {
		if b.Prefix == prefix {
			m.bindings[i].Namespace = namespace
			m.names.Purge()
			return
		}
	}
	m.bindings = append(m.bindings, Binding{Prefix: prefix, Namespace: namespace})
	m.names.Purge()
}

// Len returns the number of stored triples.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.triples)
}

// candidates picks the cheapest index for the bound pattern positions, or
// every position when the pattern is fully wildcarded.
func (m *Memory) candidates(subject, predicate, object rdf.Term) []int {
	best := -1
	var chosen []int
	consider := func(index map[string][]int, t rdf.Term) {
		if t == nil {
			return
		}
		idx := index[termKey(t)]
		if best == -1 || len(idx) < best {
			best = len(idx)
			chosen = idx
		}
	}
	consider(m.bySubj, subject)
	consider(m.byPred, predicate)
	consider(m.byObj, object)
	if best == -1 {
		all := make([]int, len(m.triples))
		for i := range all {
			all[i] = i
		}
		return all
	}
	return chosen
}

func matches(t rdf.Triple, subject, predicate, object rdf.Term) bool {
	if subject != nil && t.Subject != subject {
		return false
	}
	if predicate != nil && rdf.Term(t.Predicate) != predicate {
		return false
	}
	if object != nil && t.Object != object {
		return false
	}
	return true
}

// Triples implements Store.
func (m *Memory) Triples(subject, predicate, object rdf.Term) []rdf.Triple {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []rdf.Triple
	for _, i := range m.candidates(subject, predicate, object) {
		if matches(m.triples[i], subject, predicate, object) {
			out = append(out, m.triples[i])
		}
	}
	return out
}

// Subjects implements Store.
func (m *Memory) Subjects(predicate, object rdf.Term) []rdf.Term {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []rdf.Term
	dedupe := make(map[string]struct{})
	for _, i := range m.candidates(nil, predicate, object) {
		t := m.triples[i]
		if !matches(t, nil, predicate, object) {
			continue
		}
		key := termKey(t.Subject)
		if _, dup := dedupe[key]; dup {
			continue
		}
		dedupe[key] = struct{}{}
		out = append(out, t.Subject)
	}
	return out
}

// Objects implements Store.
func (m *Memory) Objects(subject, predicate rdf.Term) []rdf.Term {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []rdf.Term
	dedupe := make(map[string]struct{})
	for _, i := range m.candidates(subject, predicate, nil) {
		t := m.triples[i]
		if !matches(t, subject, predicate, nil) {
			continue
		}
		key := termKey(t.Object)
		if _, dup := dedupe[key]; dup {
			continue
		}
		dedupe[key] = struct{}{}
		out = append(out, t.Object)
	}
	return out
}

// Has implements Store.
func (m *Memory) Has(subject, predicate, object rdf.Term) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if subject == nil || predicate == nil || object == nil {
		for _, i := range m.candidates(subject, predicate, object) {
			if matches(m.triples[i], subject, predicate, object) {
				return true
			}
		}
		return false
	}
	p, ok := predicate.(rdf.IRI)
	if !ok {
		return false
	}
	_, present := m.seen[tripleKey(rdf.Triple{Subject: subject, Predicate: p, Object: object})]
	return present
}

// Namespaces implements Store.
func (m *Memory) Namespaces() []Binding {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Binding, len(m.bindings))
	copy(out, m.bindings)
	return out
}

// PrefixedName implements Store. The longest bound namespace that prefixes
// the IRI wins; ties keep the earliest binding. The local part must be
// non-empty for a match.
func (m *Memory) PrefixedName(iri rdf.IRI) (string, string, bool) {
	if cached, hit := m.names.Get(string(iri)); hit {
		return cached.prefix, cached.local, cached.ok
	}

	m.mu.RLock()
	result := prefixedName{}
	bestLen := -1
	for _, b := range m.bindings {
		if b.Namespace == "" || len(b.Namespace) <= bestLen {
			continue
		}
		if strings.HasPrefix(string(iri), b.Namespace) && len(iri) > len(b.Namespace) {
			result = prefixedName{
				prefix: b.Prefix,
				local:  string(iri)[len(b.Namespace):],
				ok:     true,
			}
			bestLen = len(b.Namespace)
		}
	}
	m.mu.RUnlock()

	m.names.Put(string(iri), result)
	return result.prefix, result.local, result.ok
}
