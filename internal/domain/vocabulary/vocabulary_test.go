package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultNamespace(t *testing.T) {
	v := New("")
	assert.Equal(t, DefaultNamespace, v.Namespace)
	assert.Equal(t, DefaultNamespace+"Philosopher", v.Philosopher)
	assert.Equal(t, DefaultNamespace+"influencedBy", v.InfluencedBy)
}

func TestVocabulary_Qualify(t *testing.T) {
	v := New("http://example.org/philosophy/")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "local name", input: "Plato", expected: "http://example.org/philosophy/Plato"},
		{name: "absolute http", input: "http://other.org/Kant", expected: "http://other.org/Kant"},
		{name: "urn", input: "urn:isbn:123", expected: "urn:isbn:123"},
		{name: "blank node", input: "_:b0", expected: "_:b0"},
		{name: "name with spaces", input: "John Locke", expected: "http://example.org/philosophy/John Locke"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.Qualify(tt.input))
		})
	}
}

func TestLocalName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "path segment", input: "http://example.org/philosophy/Plato", expected: "Plato"},
		{name: "fragment", input: "http://example.org/onto#Kant", expected: "Kant"},
		{name: "fragment after slash path", input: "http://example.org/onto/#Hume", expected: "Hume"},
		{name: "trailing slash", input: "http://example.org/philosophy/", expected: ""},
		{name: "empty fragment falls back to segment", input: "http://example.org/onto#", expected: "onto"},
		{name: "bare name", input: "Socrates", expected: "Socrates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LocalName(tt.input))
		})
	}
}

func TestIsSchema(t *testing.T) {
	assert.True(t, IsSchema(RDFSSubClassOf))
	assert.True(t, IsSchema(OWLEquivalentClass))
	assert.False(t, IsSchema(New("").BelievesIn))
}
