// Package entities contains core domain data structures.
package entities

import "strings"

// TermKind distinguishes the node kinds that can appear in a relation.
type TermKind int

const (
	KindIRI TermKind = iota
	KindBlank
	KindLiteral
)

// String returns the kind name.
func (k TermKind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlank:
		return "blank"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Term is the object position of a relation: an identifier or a literal.
type Term struct {
	Value    string   `json:"value"`
	Kind     TermKind `json:"kind"`
	Datatype string   `json:"datatype,omitempty"`
	Lang     string   `json:"lang,omitempty"`
}

// IRI builds an identifier term.
func IRI(value string) Term {
	return Term{Value: value, Kind: KindIRI}
}

// Literal builds a plain literal term.
func Literal(value string) Term {
	return Term{Value: value, Kind: KindLiteral}
}

// IsIRI reports whether the term is a named identifier.
func (t Term) IsIRI() bool {
	return t.Kind == KindIRI
}

// Relation is a single (subject, predicate, object) fact.
type Relation struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    Term   `json:"object"`
}

// NewRelation builds a relation between two identifiers.
func NewRelation(subject, predicate, object string) Relation {
	return Relation{Subject: subject, Predicate: predicate, Object: IRI(object)}
}

// Key returns a string that is equal for exactly equal relations.
func (r Relation) Key() string {
	var b strings.Builder
	b.Grow(len(r.Subject) + len(r.Predicate) + len(r.Object.Value) + len(r.Object.Datatype) + len(r.Object.Lang) + 8)
	b.WriteString(r.Subject)
	b.WriteByte(0)
	b.WriteString(r.Predicate)
	b.WriteByte(0)
	b.WriteByte(byte('0' + r.Object.Kind))
	b.WriteByte(0)
	b.WriteString(r.Object.Value)
	b.WriteByte(0)
	b.WriteString(r.Object.Datatype)
	b.WriteByte(0)
	b.WriteString(r.Object.Lang)
	return b.String()
}

// Pattern is a triple template. Empty fields are free variables.
type Pattern struct {
	Subject   string
	Predicate string
	Object    string
}

// Matches reports whether the relation satisfies the pattern.
// The object is compared by value regardless of term kind.
func (p Pattern) Matches(r Relation) bool {
	if p.Subject != "" && p.Subject != r.Subject {
		return false
	}
	if p.Predicate != "" && p.Predicate != r.Predicate {
		return false
	}
	if p.Object != "" && p.Object != r.Object.Value {
		return false
	}
	return true
}

// InferredFact is a relation annotated with its provenance.
type InferredFact struct {
	Relation
	Inferred bool `json:"inferred"`
}

// Annotated is an identifier returned from a domain lookup, with the
// label and description the store holds for it.
type Annotated struct {
	ID          string `json:"id"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	Inferred    bool   `json:"inferred"`
}

// DisplayName returns the label when present, else the identifier.
func (a Annotated) DisplayName() string {
	if a.Label != "" {
		return a.Label
	}
	return a.ID
}
