package handlers

import (
	"fmt"
	"strings"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/services"
	"github.com/wjcesaretti/altergeist/internal/domain/vocabulary"
)

// Lookup kinds accepted by HandleLookup.
const (
	LookupBeliefs    = "beliefs"
	LookupConcepts   = "concepts"
	LookupInfluences = "influences"
	LookupInfluenced = "influenced"
	LookupCluster    = "cluster"
	LookupContexts   = "contexts"
	LookupHolders    = "holders"
	LookupUsers      = "users"
)

// LookupKinds lists the lookup kinds in display order.
var LookupKinds = []string{
	LookupBeliefs, LookupConcepts, LookupInfluences, LookupInfluenced,
	LookupCluster, LookupContexts, LookupHolders, LookupUsers,
}

// predicateAliases maps short names to standard predicates.
var predicateAliases = map[string]string{
	"a":               vocabulary.RDFType,
	"type":            vocabulary.RDFType,
	"label":           vocabulary.RDFSLabel,
	"subClassOf":      vocabulary.RDFSSubClassOf,
	"equivalentClass": vocabulary.OWLEquivalentClass,
	"date":            vocabulary.DCTermsDate,
}

// QueryHandler handles pattern queries and domain lookups.
type QueryHandler struct {
	reasoner *services.Reasoner
	vocab    vocabulary.Vocabulary
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(reasoner *services.Reasoner, vocab vocabulary.Vocabulary) *QueryHandler {
	return &QueryHandler{
		reasoner: reasoner,
		vocab:    vocab,
	}
}

// QueryResult contains the result of a pattern query.
type QueryResult struct {
	Pattern  entities.Pattern   `json:"pattern"`
	Bindings []services.Binding `json:"bindings"`
	Total    int                `json:"total"`
}

// FactsResult contains every relation about one subject.
type FactsResult struct {
	Subject string                  `json:"subject"`
	Facts   []entities.InferredFact `json:"facts"`
	Total   int                     `json:"total"`
}

// LookupResult contains the result of a domain lookup.
type LookupResult struct {
	Kind    string               `json:"kind"`
	Subject string               `json:"subject"`
	Results []entities.Annotated `json:"results"`
	Total   int                  `json:"total"`
}

// HandlePattern matches a pattern in which empty positions are free.
// Subject and predicate names are qualified against the ontology
// namespace. An object is tried as an identifier first and then as a
// literal value.
func (h *QueryHandler) HandlePattern(subject, predicate, object string) *QueryResult {
	pattern := entities.Pattern{
		Subject:   h.qualify(subject),
		Predicate: h.qualifyPredicate(predicate),
		Object:    h.qualify(object),
	}

	bindings := h.reasoner.Query(pattern)
	if len(bindings) == 0 && object != "" && pattern.Object != object {
		pattern.Object = object
		bindings = h.reasoner.Query(pattern)
	}

	return &QueryResult{
		Pattern:  pattern,
		Bindings: bindings,
		Total:    len(bindings),
	}
}

// HandleRelated returns the classes connected to id through the hierarchy.
func (h *QueryHandler) HandleRelated(id string) *LookupResult {
	related := h.reasoner.RelatedViaHierarchy(id)
	return &LookupResult{
		Kind:    "related",
		Subject: h.vocab.Qualify(id),
		Results: related,
		Total:   len(related),
	}
}

// HandleFacts returns every relation about subject with provenance.
func (h *QueryHandler) HandleFacts(subject string) *FactsResult {
	facts := h.reasoner.FactsAbout(subject)
	return &FactsResult{
		Subject: h.vocab.Qualify(subject),
		Facts:   facts,
		Total:   len(facts),
	}
}

// HandleLookup runs one of the named domain lookups.
func (h *QueryHandler) HandleLookup(kind, id string) (*LookupResult, error) {
	var results []entities.Annotated
	switch kind {
	case LookupBeliefs:
		results = h.reasoner.Beliefs(id)
	case LookupConcepts:
		results = h.reasoner.Concepts(id)
	case LookupInfluences:
		results = h.reasoner.Influences(id)
	case LookupInfluenced:
		results = h.reasoner.Influenced(id)
	case LookupCluster:
		results = h.reasoner.Cluster(id)
	case LookupContexts:
		results = h.reasoner.Contexts(id)
	case LookupHolders:
		results = h.reasoner.HoldersOfBelief(id)
	case LookupUsers:
		results = h.reasoner.UsersOfConcept(id)
	default:
		return nil, fmt.Errorf("unknown lookup %q (valid: %s)", kind, strings.Join(LookupKinds, ", "))
	}

	return &LookupResult{
		Kind:    kind,
		Subject: h.vocab.Qualify(id),
		Results: results,
		Total:   len(results),
	}, nil
}

func (h *QueryHandler) qualify(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return h.vocab.Qualify(name)
}

func (h *QueryHandler) qualifyPredicate(name string) string {
	name = strings.TrimSpace(name)
	if full, ok := predicateAliases[name]; ok {
		return full
	}
	return h.qualify(name)
}

// ResolveTerm returns the qualified identifier for value when the ontology
// mentions it, and the trimmed value otherwise so that literal values still
// match.
func (h *QueryHandler) ResolveTerm(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || vocabulary.IsAbsolute(value) {
		return value
	}
	if id := h.vocab.Qualify(value); h.reasoner.Mentions(id) {
		return id
	}
	return value
}
