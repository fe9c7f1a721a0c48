package services

import (
	"strings"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/ports"
	"github.com/wjcesaretti/altergeist/internal/domain/vocabulary"
)

// EntityMaterializer turns the relations of a subject into typed records.
type EntityMaterializer struct {
	store   ports.TripleStore
	vocab   vocabulary.Vocabulary
	regions RegionClassifier
}

// NewEntityMaterializer creates a new EntityMaterializer. A nil classifier
// leaves every region unset.
func NewEntityMaterializer(store ports.TripleStore, vocab vocabulary.Vocabulary, regions RegionClassifier) *EntityMaterializer {
	return &EntityMaterializer{
		store:   store,
		vocab:   vocab,
		regions: regions,
	}
}

// GetEntity resolves an identifier or a human-readable name.
//
// An identifier that, once qualified, is typed as a philosopher is
// materialized directly. Otherwise the last word of the input is matched
// case-insensitively against every philosopher label, and the first match
// in insertion order wins.
func (m *EntityMaterializer) GetEntity(idOrName string) (entities.Philosopher, bool) {
	id := m.vocab.Qualify(strings.TrimSpace(idOrName))
	if m.isPhilosopher(id) {
		if p, ok := m.materialize(id); ok {
			return p, true
		}
	}

	candidates := m.fuzzyCandidates(idOrName, 1)
	if len(candidates) == 0 {
		return entities.Philosopher{}, false
	}
	return candidates[0], true
}

// ResolveStrict is GetEntity without silent tie-breaking: an exact
// identifier still wins, but a name matching several labels returns an
// *entities.AmbiguousMatchError.
func (m *EntityMaterializer) ResolveStrict(idOrName string) (entities.Philosopher, error) {
	id := m.vocab.Qualify(strings.TrimSpace(idOrName))
	if m.isPhilosopher(id) {
		if p, ok := m.materialize(id); ok {
			return p, nil
		}
	}

	candidates := m.fuzzyCandidates(idOrName, 0)
	switch len(candidates) {
	case 0:
		return entities.Philosopher{}, entities.ErrNotFound
	case 1:
		return candidates[0], nil
	default:
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = c.Name
		}
		return entities.Philosopher{}, &entities.AmbiguousMatchError{Query: idOrName, Candidates: names}
	}
}

// fuzzyCandidates returns up to limit philosophers whose label contains the
// last token of name. A limit of 0 returns all of them.
func (m *EntityMaterializer) fuzzyCandidates(name string, limit int) []entities.Philosopher {
	token := entities.LastToken(name)
	if token == "" {
		return nil
	}

	var out []entities.Philosopher
	for _, subject := range m.store.SubjectsOfType(m.vocab.Philosopher) {
		label := m.Label(subject)
		if label == "" || !strings.Contains(entities.NormalizeName(label), token) {
			continue
		}
		p, ok := m.materialize(subject)
		if !ok {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// ListEntities materializes every philosopher, skipping the ones that
// cannot be materialized.
func (m *EntityMaterializer) ListEntities() []entities.Philosopher {
	subjects := m.store.SubjectsOfType(m.vocab.Philosopher)
	out := make([]entities.Philosopher, 0, len(subjects))
	for _, subject := range subjects {
		if p, ok := m.materialize(subject); ok {
			out = append(out, p)
		}
	}
	return out
}

// GetPeriod materializes a historical context by exact identifier. Both
// year bounds must decode and be ordered.
func (m *EntityMaterializer) GetPeriod(id string) (entities.Period, bool) {
	id = m.vocab.Qualify(strings.TrimSpace(id))
	if !m.hasType(id, m.vocab.HistoricalContext) {
		return entities.Period{}, false
	}
	return m.materializePeriod(id)
}

// ListPeriods materializes every historical context with valid bounds.
func (m *EntityMaterializer) ListPeriods() []entities.Period {
	subjects := m.store.SubjectsOfType(m.vocab.HistoricalContext)
	out := make([]entities.Period, 0, len(subjects))
	for _, subject := range subjects {
		if p, ok := m.materializePeriod(subject); ok {
			out = append(out, p)
		}
	}
	return out
}

// BirthYear resolves the birth year of an influence reference through
// GetEntity.
func (m *EntityMaterializer) BirthYear(idOrName string) (int, bool) {
	p, ok := m.GetEntity(idOrName)
	if !ok || p.BirthYear == nil {
		return 0, false
	}
	return *p.BirthYear, true
}

// Label resolves the display name of an identifier: the rdfs:label when
// present, else the trailing path segment or fragment.
func (m *EntityMaterializer) Label(id string) string {
	if label, ok := m.store.ValueOf(id, m.vocab.Label); ok {
		if text := strings.TrimSpace(label.Value); text != "" {
			return text
		}
	}
	return vocabulary.LocalName(id)
}

func (m *EntityMaterializer) materialize(id string) (entities.Philosopher, bool) {
	name := m.Label(id)
	if name == "" {
		return entities.Philosopher{}, false
	}

	p := entities.Philosopher{
		ID:           id,
		Name:         name,
		BirthYear:    m.year(id, m.vocab.BirthDate),
		Beliefs:      m.values(id, m.vocab.BelievesIn),
		KeyConcepts:  m.values(id, m.vocab.KeyConcept),
		Contexts:     m.values(id, m.vocab.Context),
		InfluencedBy: m.values(id, m.vocab.InfluencedBy),
		Influenced:   m.values(id, m.vocab.Influenced),
	}
	if cluster, ok := m.store.ValueOf(id, m.vocab.IdeologicalCluster); ok {
		p.IdeologicalCluster = cluster.Value
	}
	if m.regions != nil {
		if match, ok := m.regions.Classify(p.Contexts); ok {
			p.Region = &match
		}
	}
	return p, true
}

func (m *EntityMaterializer) materializePeriod(id string) (entities.Period, bool) {
	name := m.Label(id)
	start := m.year(id, m.vocab.StartYear)
	end := m.year(id, m.vocab.EndYear)
	if name == "" || start == nil || end == nil || *start > *end {
		return entities.Period{}, false
	}
	return entities.Period{
		ID:        id,
		Name:      name,
		StartYear: *start,
		EndYear:   *end,
	}, true
}

func (m *EntityMaterializer) values(id, predicate string) []string {
	terms := m.store.ObjectsFor(id, predicate)
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.Value
	}
	return out
}

func (m *EntityMaterializer) year(id, predicate string) *int {
	term, ok := m.store.ValueOf(id, predicate)
	if !ok {
		return nil
	}
	year, ok := entities.ParseYear(term.Value)
	if !ok {
		return nil
	}
	return &year
}

func (m *EntityMaterializer) isPhilosopher(id string) bool {
	return m.hasType(id, m.vocab.Philosopher)
}

func (m *EntityMaterializer) hasType(id, typeID string) bool {
	return m.store.Contains(entities.NewRelation(id, vocabulary.RDFType, typeID))
}
