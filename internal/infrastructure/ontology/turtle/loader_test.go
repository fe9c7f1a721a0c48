package turtle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/vocabulary"
	"github.com/wjcesaretti/altergeist/internal/infrastructure/config"
)

const ns = "http://example.org/philosophy/"

const sampleOntology = `@prefix ex: <http://example.org/philosophy/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix dcterms: <http://purl.org/dc/terms/> .

ex:Plato rdf:type ex:Philosopher ;
    rdfs:label "Plato"@en ;
    dcterms:date "428 BCE" ;
    ex:believesIn ex:TheoryOfForms, ex:PhilosopherKing ;
    ex:context ex:ClassicalAthens .

ex:Socrates a ex:Philosopher ;
    rdfs:label "Socrates" .
`

func newLoader(strict bool) *Loader {
	return NewLoader(config.OntologyConfig{Strict: strict}, nil)
}

func TestLoader_Load(t *testing.T) {
	store, err := newLoader(false).Load(strings.NewReader(sampleOntology), "sample.ttl")
	require.NoError(t, err)

	assert.Equal(t, 8, store.Len())
	assert.Equal(t, []string{ns + "Plato", ns + "Socrates"}, store.SubjectsOfType(ns+"Philosopher"))

	beliefs := store.ObjectsFor(ns+"Plato", ns+"believesIn")
	require.Len(t, beliefs, 2)
	assert.Equal(t, entities.IRI(ns+"TheoryOfForms"), beliefs[0])
	assert.Equal(t, entities.IRI(ns+"PhilosopherKing"), beliefs[1])

	label, ok := store.ValueOf(ns+"Plato", vocabulary.RDFSLabel)
	require.True(t, ok)
	assert.Equal(t, "Plato", label.Value)
	assert.Equal(t, "en", label.Lang)
	assert.Equal(t, entities.KindLiteral, label.Kind)

	date, ok := store.ValueOf(ns+"Plato", vocabulary.DCTermsDate)
	require.True(t, ok)
	year, ok := entities.ParseYear(date.Value)
	require.True(t, ok)
	assert.Equal(t, -428, year)
}

func TestLoader_Load_Empty(t *testing.T) {
	store, err := newLoader(true).Load(strings.NewReader(""), "empty.ttl")
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestLoader_Load_ParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unterminated statement",
			input: "@prefix ex: <http://example.org/philosophy/> .\nex:Plato ex:believesIn ex:Forms",
		},
		{
			name:  "unknown prefix",
			input: "@prefix ex: <http://example.org/philosophy/> .\nex:Plato nope:believesIn ex:Forms .",
		},
		{
			name:  "unterminated literal",
			input: "@prefix ex: <http://example.org/philosophy/> .\nex:Plato ex:name \"Plato .",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := newLoader(false).Load(strings.NewReader(tt.input), "bad.ttl")
			require.Error(t, err)
			assert.Nil(t, store)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "bad.ttl", perr.Source)
			assert.GreaterOrEqual(t, perr.Statement, 1)
			assert.Contains(t, err.Error(), "bad.ttl")
		})
	}
}

func TestLoader_Load_BlankNodes(t *testing.T) {
	input := `@prefix ex: <http://example.org/philosophy/> .
ex:Plato ex:believesIn ex:Forms .
_:anon ex:believesIn ex:Forms .
ex:Kant ex:keyConcept _:idea .
`

	t.Run("lenient drops blank node statements", func(t *testing.T) {
		store, err := newLoader(false).Load(strings.NewReader(input), "blank.ttl")
		require.NoError(t, err)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("strict rejects blank node statements", func(t *testing.T) {
		store, err := newLoader(true).Load(strings.NewReader(input), "blank.ttl")
		require.Error(t, err)
		assert.Nil(t, store)
		assert.True(t, errors.Is(err, ErrBlankNode))

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, 2, perr.Statement)
	})
}

func TestLoader_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onto.ttl")
	require.NoError(t, os.WriteFile(path, []byte(sampleOntology), 0644))

	store, err := newLoader(false).LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8, store.Len())

	_, err = newLoader(false).LoadFile(filepath.Join(t.TempDir(), "missing.ttl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening ontology")
}
