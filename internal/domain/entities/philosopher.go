package entities

import (
	"slices"
	"strings"
)

// Philosopher is a materialized thinker built from the relations of one subject.
type Philosopher struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	BirthYear          *int         `json:"birth_year,omitempty"`
	Beliefs            []string     `json:"beliefs"`
	KeyConcepts        []string     `json:"key_concepts"`
	Contexts           []string     `json:"contexts"`
	IdeologicalCluster string       `json:"ideological_cluster,omitempty"`
	InfluencedBy       []string     `json:"influenced_by"`
	Influenced         []string     `json:"influenced"`
	Region             *RegionMatch `json:"region,omitempty"`
}

// Clone returns a deep copy that shares no slices with p.
func (p Philosopher) Clone() Philosopher {
	out := p
	out.Beliefs = slices.Clone(p.Beliefs)
	out.KeyConcepts = slices.Clone(p.KeyConcepts)
	out.Contexts = slices.Clone(p.Contexts)
	out.InfluencedBy = slices.Clone(p.InfluencedBy)
	out.Influenced = slices.Clone(p.Influenced)
	if p.BirthYear != nil {
		year := *p.BirthYear
		out.BirthYear = &year
	}
	if p.Region != nil {
		region := *p.Region
		out.Region = &region
	}
	return out
}

// HasBelief reports whether belief is held, by exact value.
func (p Philosopher) HasBelief(belief string) bool {
	return slices.Contains(p.Beliefs, belief)
}

// Period is a bounded historical era.
type Period struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
}

// Contains reports whether year falls inside the period, bounds included.
func (p Period) Contains(year int) bool {
	return year >= p.StartYear && year <= p.EndYear
}

// NormalizeName converts a name to lowercase for case-insensitive matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// LastToken returns the last whitespace-delimited token of name, lower-cased.
func LastToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[len(fields)-1])
}
