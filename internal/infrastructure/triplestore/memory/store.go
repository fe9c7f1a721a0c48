// Package memory provides an in-memory implementation of ports.TripleStore.
package memory

import (
	"slices"
	"sync"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/vocabulary"
)

type spKey struct {
	subject   string
	predicate string
}

// Store keeps relations in insertion order with subject, predicate and
// object indexes. It is built once and then read; the reasoner is the only
// writer after loading.
type Store struct {
	mu          sync.RWMutex
	relations   []entities.Relation
	seen        map[string]struct{}
	bySP        map[spKey][]int
	bySubject   map[string][]int
	byPredicate map[string][]int
	byObject    map[string][]int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		seen:        make(map[string]struct{}),
		bySP:        make(map[spKey][]int),
		bySubject:   make(map[string][]int),
		byPredicate: make(map[string][]int),
		byObject:    make(map[string][]int),
	}
}

// FromRelations creates a store holding rels.
func FromRelations(rels []entities.Relation) *Store {
	s := New()
	for _, rel := range rels {
		s.Add(rel)
	}
	return s
}

// Add implements ports.TripleStore.
func (s *Store) Add(rel entities.Relation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := rel.Key()
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}

	idx := len(s.relations)
	s.relations = append(s.relations, rel)
	sp := spKey{subject: rel.Subject, predicate: rel.Predicate}
	s.bySP[sp] = append(s.bySP[sp], idx)
	s.bySubject[rel.Subject] = append(s.bySubject[rel.Subject], idx)
	s.byPredicate[rel.Predicate] = append(s.byPredicate[rel.Predicate], idx)
	s.byObject[rel.Object.Value] = append(s.byObject[rel.Object.Value], idx)
	return true
}

// Contains implements ports.TripleStore.
func (s *Store) Contains(rel entities.Relation) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.seen[rel.Key()]
	return ok
}

// ObjectsFor implements ports.TripleStore.
func (s *Store) ObjectsFor(subject, predicate string) []entities.Term {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idxs := s.bySP[spKey{subject: subject, predicate: predicate}]
	out := make([]entities.Term, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, s.relations[i].Object)
	}
	return out
}

// ValueOf implements ports.TripleStore.
func (s *Store) ValueOf(subject, predicate string) (entities.Term, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idxs := s.bySP[spKey{subject: subject, predicate: predicate}]
	if len(idxs) == 0 {
		return entities.Term{}, false
	}
	return s.relations[idxs[0]].Object, true
}

// SubjectsOfType implements ports.TripleStore.
func (s *Store) SubjectsOfType(typeID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	seen := make(map[string]struct{})
	for _, i := range s.byObject[typeID] {
		rel := s.relations[i]
		if rel.Predicate != vocabulary.RDFType || !rel.Object.IsIRI() {
			continue
		}
		if _, ok := seen[rel.Subject]; ok {
			continue
		}
		seen[rel.Subject] = struct{}{}
		out = append(out, rel.Subject)
	}
	return out
}

// Match implements ports.TripleStore. The most selective index for the
// bound fields drives the scan.
func (s *Store) Match(pattern entities.Pattern) []entities.Relation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var candidates []int
	switch {
	case pattern.Subject != "" && pattern.Predicate != "":
		candidates = s.bySP[spKey{subject: pattern.Subject, predicate: pattern.Predicate}]
	case pattern.Subject != "":
		candidates = s.bySubject[pattern.Subject]
	case pattern.Object != "":
		candidates = s.byObject[pattern.Object]
	case pattern.Predicate != "":
		candidates = s.byPredicate[pattern.Predicate]
	default:
		return slices.Clone(s.relations)
	}

	var out []entities.Relation
	for _, i := range candidates {
		if pattern.Matches(s.relations[i]) {
			out = append(out, s.relations[i])
		}
	}
	return out
}

// Relations implements ports.TripleStore.
func (s *Store) Relations() []entities.Relation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.relations)
}

// Len implements ports.TripleStore.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.relations)
}
