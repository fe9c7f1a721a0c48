// Package vocabulary holds the IRIs of the philosophy ontology.
//
// Standard terms (rdf, rdfs, owl, dcterms) are fixed constants. Terms of the
// philosophy ontology live under a configurable namespace and are built with
// New.
package vocabulary

import "strings"

// DefaultNamespace is the base IRI of the philosophy ontology.
const DefaultNamespace = "http://example.org/philosophy/"

// Standard vocabulary IRIs.
const (
	RDFType            = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	RDFSLabel          = "http://www.w3.org/2000/01/rdf-schema#label"
	RDFSSubClassOf     = "http://www.w3.org/2000/01/rdf-schema#subClassOf"
	OWLEquivalentClass = "http://www.w3.org/2002/07/owl#equivalentClass"
	DCTermsDate        = "http://purl.org/dc/terms/date"
)

// Vocabulary is the set of ontology IRIs under one namespace.
type Vocabulary struct {
	Namespace string

	// Classes
	Philosopher       string
	HistoricalContext string

	// Predicates
	BelievesIn         string
	KeyConcept         string
	Context            string
	IdeologicalCluster string
	InfluencedBy       string
	Influenced         string
	Description        string
	StartYear          string
	EndYear            string
	BirthDate          string
	Label              string
}

// New builds the vocabulary for namespace. An empty namespace selects
// DefaultNamespace.
func New(namespace string) Vocabulary {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return Vocabulary{
		Namespace:          namespace,
		Philosopher:        namespace + "Philosopher",
		HistoricalContext:  namespace + "HistoricalContext",
		BelievesIn:         namespace + "believesIn",
		KeyConcept:         namespace + "keyConcept",
		Context:            namespace + "context",
		IdeologicalCluster: namespace + "ideologicalCluster",
		InfluencedBy:       namespace + "influencedBy",
		Influenced:         namespace + "influenced",
		Description:        namespace + "description",
		StartYear:          namespace + "startYear",
		EndYear:            namespace + "endYear",
		BirthDate:          DCTermsDate,
		Label:              RDFSLabel,
	}
}

// Qualify returns name as a namespace-qualified identifier. Absolute IRIs
// and blank node labels are returned unchanged.
func (v Vocabulary) Qualify(name string) string {
	if IsAbsolute(name) {
		return name
	}
	return v.Namespace + name
}

// IsAbsolute reports whether id already carries a scheme or is a blank node.
func IsAbsolute(id string) bool {
	if strings.HasPrefix(id, "_:") {
		return true
	}
	i := strings.Index(id, ":")
	if i <= 0 {
		return false
	}
	for _, r := range id[:i] {
		if !isSchemeRune(r) {
			return false
		}
	}
	return true
}

func isSchemeRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'
}

// LocalName returns the trailing name of an identifier: the fragment after
// '#' when the identifier uses fragment notation, else the last path segment.
// It returns "" when neither yields a name.
func LocalName(id string) string {
	segment := id
	if i := strings.LastIndex(id, "/"); i >= 0 {
		segment = id[i+1:]
	}
	if i := strings.LastIndex(segment, "#"); i >= 0 {
		if fragment := segment[i+1:]; fragment != "" {
			return fragment
		}
		segment = segment[:i]
	}
	if segment == "" {
		if i := strings.LastIndex(id, "#"); i >= 0 {
			return id[i+1:]
		}
	}
	return segment
}

// IsSchema reports whether predicate belongs to the class hierarchy
// vocabulary rather than to domain assertions.
func IsSchema(predicate string) bool {
	switch predicate {
	case RDFType, RDFSSubClassOf, OWLEquivalentClass, RDFSLabel:
		return true
	default:
		return false
	}
}
