package graphstore

import (
	"encoding/json"
	"io"

	"github.com/c360/owldoc/errors"
	"github.com/c360/owldoc/rdf"
)

// maxSnapshotBytes bounds snapshot reads. Large ontologies fit comfortably;
// the bound guards runaway inputs.
const maxSnapshotBytes = 256 << 20

// TripleRecord is the JSON snapshot encoding of one triple.
type TripleRecord struct {
	Subject   rdf.TermRecord `json:"s"`
	Predicate string         `json:"p"`
	Object    rdf.TermRecord `json:"o"`
}

// Snapshot is the JSON document a Memory store serializes to. It is owldoc's
// own format for an already-parsed graph, not an RDF wire format.
type Snapshot struct {
	Namespaces []Binding      `json:"namespaces,omitempty"`
	Triples    []TripleRecord `json:"triples"`
}

// LoadSnapshot reads a snapshot document and builds a Memory store from it.
func LoadSnapshot(r io.Reader) (*Memory, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSnapshotBytes))
	if err != nil {
		return nil, errors.WrapFatal(err, "graphstore", "LoadSnapshot", "read snapshot")
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.WrapInvalid(err, "graphstore", "LoadSnapshot", "parse snapshot")
	}

	store := NewMemory()
	for _, b := range snap.Namespaces {
		store.Bind(b.Prefix, b.Namespace)
	}
	for _, rec := range snap.Triples {
		subject, err := rec.Subject.Term()
		if err != nil {
			return nil, errors.WrapInvalid(err, "graphstore", "LoadSnapshot", "decode subject")
		}
		if subject.TermKind() == rdf.KindLiteral {
			return nil, errors.WrapInvalid(errors.ErrInvalidTerm, "graphstore", "LoadSnapshot",
				"literal subject")
		}
		object, err := rec.Object.Term()
		if err != nil {
			return nil, errors.WrapInvalid(err, "graphstore", "LoadSnapshot", "decode object")
		}
		if rec.Predicate == "" {
			return nil, errors.WrapInvalid(errors.ErrInvalidTerm, "graphstore", "LoadSnapshot",
				"empty predicate")
		}
		store.Add(rdf.Triple{Subject: subject, Predicate: rdf.IRI(rec.Predicate), Object: object})
	}
	return store, nil
}

// Snapshot serializes the store's bindings and triples in insertion order.
func (m *Memory) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{
		Namespaces: make([]Binding, len(m.bindings)),
		Triples:    make([]TripleRecord, 0, len(m.triples)),
	}
	copy(snap.Namespaces, m.bindings)
	for _, t := range m.triples {
		snap.Triples = append(snap.Triples, TripleRecord{
			Subject:   rdf.NewTermRecord(t.Subject),
			Predicate: string(t.Predicate),
			Object:    rdf.NewTermRecord(t.Object),
		})
	}
	return snap
}

// WriteSnapshot serializes the store as indented JSON.
func (m *Memory) WriteSnapshot(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m.Snapshot()); err != nil {
		return errors.WrapFatal(err, "graphstore", "WriteSnapshot", "encode snapshot")
	}
	return nil
}
