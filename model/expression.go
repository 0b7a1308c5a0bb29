package model

import "encoding/json"

// RestrictionKind names the restriction flavor using the display keywords
// the expression formatter emits.
type RestrictionKind string

const (
	RestrictionSome             RestrictionKind = "some"
	RestrictionOnly             RestrictionKind = "only"
	RestrictionHasValue         RestrictionKind = "hasValue"
	RestrictionMin              RestrictionKind = "min"
	RestrictionMax              RestrictionKind = "max"
	RestrictionExactly          RestrictionKind = "exactly"
	RestrictionMinQualified     RestrictionKind = "minQualified"
	RestrictionMaxQualified     RestrictionKind = "maxQualified"
	RestrictionExactlyQualified RestrictionKind = "exactlyQualified"
)

// String returns the restriction keyword.
func (k RestrictionKind) String() string { return string(k) }

// IsQualified reports whether the kind carries an owl:onClass qualifier.
func (k RestrictionKind) IsQualified() bool {
	switch k {
	case RestrictionMinQualified, RestrictionMaxQualified, RestrictionExactlyQualified:
		return true
	}
	return false
}

// ClassExpression is the sealed union of decoded anonymous class
// expressions. Implementations marshal to JSON objects with a "type" tag.
type ClassExpression interface {
	expressionNode()
}

// Restriction is an owl:Restriction on a property.
type Restriction struct {
	OnProperty      Ref             `json:"on_property"`
	Kind            RestrictionKind `json:"kind"`
	Target          ClassExpression `json:"target,omitempty"`
	QualifyingClass *Ref            `json:"qualifying_class,omitempty"`
}

// Union is an owl:unionOf expression, member order preserved.
type Union struct {
	Members []ClassExpression `json:"members"`
}

// Intersection is an owl:intersectionOf expression, member order preserved.
type Intersection struct {
	Members []ClassExpression `json:"members"`
}

// Complement is an owl:complementOf expression.
type Complement struct {
	Of ClassExpression `json:"of"`
}

// Enumeration is an owl:oneOf expression over individuals.
type Enumeration struct {
	Members []ClassExpression `json:"members"`
}

// AtomicReference names a class or individual by URI.
type AtomicReference struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// LiteralValue is a literal appearing inside an expression, already
// formatted for display.
type LiteralValue struct {
	Value string `json:"value"`
}

func (Restriction) expressionNode()     {}
func (Union) expressionNode()           {}
func (Intersection) expressionNode()    {}
func (Complement) expressionNode()      {}
func (Enumeration) expressionNode()     {}
func (AtomicReference) expressionNode() {}
func (LiteralValue) expressionNode()    {}

// MarshalJSON tags the object with "type":"restriction".
func (r Restriction) MarshalJSON() ([]byte, error) {
	type alias Restriction
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "restriction", alias: alias(r)})
}

// MarshalJSON tags the object with "type":"union".
func (u Union) MarshalJSON() ([]byte, error) {
	type alias Union
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "union", alias: alias(u)})
}

// MarshalJSON tags the object with "type":"intersection".
func (i Intersection) MarshalJSON() ([]byte, error) {
	type alias Intersection
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "intersection", alias: alias(i)})
}

// MarshalJSON tags the object with "type":"complement".
func (c Complement) MarshalJSON() ([]byte, error) {
	type alias Complement
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "complement", alias: alias(c)})
}

// MarshalJSON tags the object with "type":"enumeration".
func (e Enumeration) MarshalJSON() ([]byte, error) {
	type alias Enumeration
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "enumeration", alias: alias(e)})
}

// MarshalJSON tags the object with "type":"atomic".
func (a AtomicReference) MarshalJSON() ([]byte, error) {
	type alias AtomicReference
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "atomic", alias: alias(a)})
}

// MarshalJSON tags the object with "type":"literal".
func (l LiteralValue) MarshalJSON() ([]byte, error) {
	type alias LiteralValue
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "literal", alias: alias(l)})
}
