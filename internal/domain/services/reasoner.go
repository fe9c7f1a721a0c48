package services

import (
	"go.uber.org/zap"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/ports"
	"github.com/wjcesaretti/altergeist/internal/domain/vocabulary"
)

// ClosureStats summarizes one RunClosure call.
type ClosureStats struct {
	Iterations int `json:"iterations"`
	Asserted   int `json:"asserted"`
	Inferred   int `json:"inferred"`
	Added      int `json:"added"`
}

// Reasoner computes the deductive closure of the class hierarchy over a
// store and answers pattern queries against it.
//
// Rules applied until a fixed point:
//
//	A subClassOf B, B subClassOf C   => A subClassOf C
//	x type A, A subClassOf B         => x type B
//	A equivalentClass B              => B equivalentClass A
//	A equivalentClass B, B eqv C     => A equivalentClass C
//	A equivalentClass B              => A subClassOf B, B subClassOf A
//	s p A, A equivalentClass B       => s p B   (p a domain predicate)
//
// Reflexive subClassOf and equivalentClass relations are never produced.
type Reasoner struct {
	store    ports.TripleStore
	vocab    vocabulary.Vocabulary
	logger   *zap.Logger
	asserted map[string]struct{}
}

// NewReasoner creates a new Reasoner. A nil logger discards diagnostics.
func NewReasoner(store ports.TripleStore, vocab vocabulary.Vocabulary, logger *zap.Logger) *Reasoner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reasoner{
		store:  store,
		vocab:  vocab,
		logger: logger.Named("reasoner"),
	}
}

// RunClosure expands the store to its fixed point. Each iteration only
// joins the relations added by the previous one against the whole store,
// and the loop ends when an iteration adds nothing. Running it again adds
// nothing. The relations present before the first run are remembered as
// asserted.
func (r *Reasoner) RunClosure() ClosureStats {
	if r.asserted == nil {
		rels := r.store.Relations()
		r.asserted = make(map[string]struct{}, len(rels))
		for _, rel := range rels {
			r.asserted[rel.Key()] = struct{}{}
		}
	}

	stats := ClosureStats{Asserted: len(r.asserted)}
	frontier := r.store.Relations()
	for len(frontier) > 0 {
		stats.Iterations++
		var next []entities.Relation
		for _, rel := range frontier {
			for _, derived := range r.derive(rel) {
				if r.store.Add(derived) {
					next = append(next, derived)
				}
			}
		}
		stats.Added += len(next)
		r.logger.Debug("Closure iteration",
			zap.Int("iteration", stats.Iterations),
			zap.Int("frontier", len(frontier)),
			zap.Int("added", len(next)))
		frontier = next
	}

	stats.Inferred = r.store.Len() - stats.Asserted
	r.logger.Info("Closure complete",
		zap.Int("iterations", stats.Iterations),
		zap.Int("asserted", stats.Asserted),
		zap.Int("inferred", stats.Inferred))
	return stats
}

// derive applies every rule in which rel takes part, joining it against
// the current store in both argument positions.
func (r *Reasoner) derive(rel entities.Relation) []entities.Relation {
	if !rel.Object.IsIRI() {
		return nil
	}
	s, o := rel.Subject, rel.Object.Value

	var out []entities.Relation
	emit := func(subject, predicate, object string) {
		if subject == object && (predicate == vocabulary.RDFSSubClassOf || predicate == vocabulary.OWLEquivalentClass) {
			return
		}
		out = append(out, entities.NewRelation(subject, predicate, object))
	}

	switch rel.Predicate {
	case vocabulary.RDFSSubClassOf:
		for _, c := range r.iriObjects(o, vocabulary.RDFSSubClassOf) {
			emit(s, vocabulary.RDFSSubClassOf, c)
		}
		for _, z := range r.subjects(vocabulary.RDFSSubClassOf, s) {
			emit(z, vocabulary.RDFSSubClassOf, o)
		}
		for _, x := range r.subjects(vocabulary.RDFType, s) {
			emit(x, vocabulary.RDFType, o)
		}

	case vocabulary.RDFType:
		for _, b := range r.iriObjects(o, vocabulary.RDFSSubClassOf) {
			emit(s, vocabulary.RDFType, b)
		}
		for _, b := range r.iriObjects(o, vocabulary.OWLEquivalentClass) {
			emit(s, vocabulary.RDFType, b)
		}

	case vocabulary.OWLEquivalentClass:
		emit(o, vocabulary.OWLEquivalentClass, s)
		emit(s, vocabulary.RDFSSubClassOf, o)
		emit(o, vocabulary.RDFSSubClassOf, s)
		for _, c := range r.iriObjects(o, vocabulary.OWLEquivalentClass) {
			emit(s, vocabulary.OWLEquivalentClass, c)
		}
		for _, z := range r.subjects(vocabulary.OWLEquivalentClass, s) {
			emit(z, vocabulary.OWLEquivalentClass, o)
		}
		for _, x := range r.subjects(vocabulary.RDFType, s) {
			emit(x, vocabulary.RDFType, o)
		}
		for _, use := range r.store.Match(entities.Pattern{Object: s}) {
			if use.Object.IsIRI() && !vocabulary.IsSchema(use.Predicate) {
				emit(use.Subject, use.Predicate, o)
			}
		}

	case vocabulary.RDFSLabel:

	default:
		for _, b := range r.iriObjects(o, vocabulary.OWLEquivalentClass) {
			emit(s, rel.Predicate, b)
		}
	}
	return out
}

func (r *Reasoner) iriObjects(subject, predicate string) []string {
	terms := r.store.ObjectsFor(subject, predicate)
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if t.IsIRI() {
			out = append(out, t.Value)
		}
	}
	return out
}

func (r *Reasoner) subjects(predicate, object string) []string {
	rels := r.store.Match(entities.Pattern{Predicate: predicate, Object: object})
	out := make([]string, 0, len(rels))
	for _, rel := range rels {
		if rel.Object.IsIRI() {
			out = append(out, rel.Subject)
		}
	}
	return out
}

// IsInferred reports whether rel is in the store but was not asserted
// before the first closure run.
func (r *Reasoner) IsInferred(rel entities.Relation) bool {
	if r.asserted == nil {
		return false
	}
	if _, ok := r.asserted[rel.Key()]; ok {
		return false
	}
	return r.store.Contains(rel)
}

// Binding is one relation matched by Query, with the labels of its
// subject and object when the store has them.
type Binding struct {
	Relation     entities.Relation `json:"relation"`
	SubjectLabel string            `json:"subject_label,omitempty"`
	ObjectLabel  string            `json:"object_label,omitempty"`
	Inferred     bool              `json:"inferred"`
}

// Query returns every relation matching pattern.
func (r *Reasoner) Query(pattern entities.Pattern) []Binding {
	rels := r.store.Match(pattern)
	out := make([]Binding, len(rels))
	for i, rel := range rels {
		out[i] = Binding{
			Relation:     rel,
			SubjectLabel: r.label(rel.Subject),
			Inferred:     r.IsInferred(rel),
		}
		if rel.Object.IsIRI() {
			out[i].ObjectLabel = r.label(rel.Object.Value)
		}
	}
	return out
}

// Beliefs returns the beliefs of a philosopher.
func (r *Reasoner) Beliefs(philosopher string) []entities.Annotated {
	return r.forward(philosopher, r.vocab.BelievesIn)
}

// Concepts returns the key concepts of a philosopher.
func (r *Reasoner) Concepts(philosopher string) []entities.Annotated {
	return r.forward(philosopher, r.vocab.KeyConcept)
}

// Influences returns who influenced a philosopher.
func (r *Reasoner) Influences(philosopher string) []entities.Annotated {
	return r.forward(philosopher, r.vocab.InfluencedBy)
}

// Influenced returns every philosopher recorded as influenced by this one.
func (r *Reasoner) Influenced(philosopher string) []entities.Annotated {
	return r.reverse(r.vocab.InfluencedBy, philosopher)
}

// Cluster returns the ideological clusters of a philosopher.
func (r *Reasoner) Cluster(philosopher string) []entities.Annotated {
	return r.forward(philosopher, r.vocab.IdeologicalCluster)
}

// Contexts returns the historical contexts of a philosopher.
func (r *Reasoner) Contexts(philosopher string) []entities.Annotated {
	return r.forward(philosopher, r.vocab.Context)
}

// HoldersOfBelief returns every philosopher that believes in belief.
func (r *Reasoner) HoldersOfBelief(belief string) []entities.Annotated {
	return r.reverse(r.vocab.BelievesIn, belief)
}

// UsersOfConcept returns every philosopher with concept as a key concept.
func (r *Reasoner) UsersOfConcept(concept string) []entities.Annotated {
	return r.reverse(r.vocab.KeyConcept, concept)
}

// RelatedViaHierarchy returns every class connected to id by subClassOf in
// either direction or by equivalentClass, excluding id itself.
func (r *Reasoner) RelatedViaHierarchy(id string) []entities.Annotated {
	id = r.vocab.Qualify(id)
	index := map[string]int{id: -1}
	var out []entities.Annotated

	// A related class is inferred only when no asserted edge reaches it.
	add := func(related string, rel entities.Relation) {
		if i, ok := index[related]; ok {
			if i >= 0 {
				out[i].Inferred = out[i].Inferred && r.IsInferred(rel)
			}
			return
		}
		index[related] = len(out)
		out = append(out, r.annotate(related, r.IsInferred(rel)))
	}

	for _, rel := range r.store.Match(entities.Pattern{Predicate: vocabulary.RDFSSubClassOf, Object: id}) {
		add(rel.Subject, rel)
	}
	for _, rel := range r.store.Match(entities.Pattern{Subject: id, Predicate: vocabulary.RDFSSubClassOf}) {
		if rel.Object.IsIRI() {
			add(rel.Object.Value, rel)
		}
	}
	for _, rel := range r.store.Match(entities.Pattern{Predicate: vocabulary.OWLEquivalentClass, Object: id}) {
		add(rel.Subject, rel)
	}
	for _, rel := range r.store.Match(entities.Pattern{Subject: id, Predicate: vocabulary.OWLEquivalentClass}) {
		if rel.Object.IsIRI() {
			add(rel.Object.Value, rel)
		}
	}
	return out
}

// Mentions reports whether id appears as the subject of any relation or
// as an identifier object.
func (r *Reasoner) Mentions(id string) bool {
	if len(r.store.Match(entities.Pattern{Subject: id})) > 0 {
		return true
	}
	for _, rel := range r.store.Match(entities.Pattern{Object: id}) {
		if rel.Object.IsIRI() {
			return true
		}
	}
	return false
}

// FactsAbout returns every relation with subject as its subject, with
// provenance.
func (r *Reasoner) FactsAbout(subject string) []entities.InferredFact {
	rels := r.store.Match(entities.Pattern{Subject: r.vocab.Qualify(subject)})
	out := make([]entities.InferredFact, len(rels))
	for i, rel := range rels {
		out[i] = entities.InferredFact{Relation: rel, Inferred: r.IsInferred(rel)}
	}
	return out
}

func (r *Reasoner) forward(subject, predicate string) []entities.Annotated {
	subject = r.vocab.Qualify(subject)
	rels := r.store.Match(entities.Pattern{Subject: subject, Predicate: predicate})
	out := make([]entities.Annotated, len(rels))
	for i, rel := range rels {
		if rel.Object.IsIRI() {
			out[i] = r.annotate(rel.Object.Value, r.IsInferred(rel))
		} else {
			out[i] = entities.Annotated{ID: rel.Object.Value, Inferred: r.IsInferred(rel)}
		}
	}
	return out
}

func (r *Reasoner) reverse(predicate, object string) []entities.Annotated {
	object = r.vocab.Qualify(object)
	rels := r.store.Match(entities.Pattern{Predicate: predicate, Object: object})
	out := make([]entities.Annotated, len(rels))
	for i, rel := range rels {
		out[i] = r.annotate(rel.Subject, r.IsInferred(rel))
	}
	return out
}

func (r *Reasoner) annotate(id string, inferred bool) entities.Annotated {
	a := entities.Annotated{ID: id, Label: r.label(id), Inferred: inferred}
	if desc, ok := r.store.ValueOf(id, r.vocab.Description); ok {
		a.Description = desc.Value
	}
	return a
}

func (r *Reasoner) label(id string) string {
	if label, ok := r.store.ValueOf(id, r.vocab.Label); ok {
		return label.Value
	}
	return ""
}
