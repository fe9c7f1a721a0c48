// Package ports defines interfaces for external service communication.
package ports

import "github.com/wjcesaretti/altergeist/internal/domain/entities"

// TripleStore holds relations and answers pattern lookups.
// Results come back in insertion order.
type TripleStore interface {
	// Add inserts a relation. It reports false for an exact duplicate,
	// which is not stored twice.
	Add(rel entities.Relation) bool

	// Contains reports whether the exact relation is stored.
	Contains(rel entities.Relation) bool

	// ObjectsFor returns every object of (subject, predicate, ?).
	ObjectsFor(subject, predicate string) []entities.Term

	// ValueOf returns the first object of (subject, predicate, ?).
	ValueOf(subject, predicate string) (entities.Term, bool)

	// SubjectsOfType returns every subject with an rdf:type relation to typeID.
	SubjectsOfType(typeID string) []string

	// Match returns every relation satisfying the pattern.
	Match(pattern entities.Pattern) []entities.Relation

	// Relations returns a copy of all relations.
	Relations() []entities.Relation

	// Len returns the number of stored relations.
	Len() int
}
