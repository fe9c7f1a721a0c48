package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
)

func TestEntityMaterializer_GetEntity(t *testing.T) {
	m, _ := newFixtureMaterializer()

	tests := []struct {
		name     string
		input    string
		wantID   string
		wantName string
		wantOK   bool
	}{
		{name: "local identifier", input: "JohnLocke", wantID: q("JohnLocke"), wantName: "John Locke", wantOK: true},
		{name: "absolute identifier", input: q("ThomasHobbes"), wantID: q("ThomasHobbes"), wantName: "Thomas Hobbes", wantOK: true},
		{name: "surname", input: "Locke", wantID: q("JohnLocke"), wantName: "John Locke", wantOK: true},
		{name: "full name", input: "Thomas Hobbes", wantID: q("ThomasHobbes"), wantName: "Thomas Hobbes", wantOK: true},
		{name: "case-insensitive", input: "  hobbes ", wantID: q("ThomasHobbes"), wantName: "Thomas Hobbes", wantOK: true},
		{name: "upper-case surname", input: "LOCKE", wantID: q("JohnLocke"), wantName: "John Locke", wantOK: true},
		{name: "ambiguous token takes first in insertion order", input: "John", wantID: q("JohnLocke"), wantName: "John Locke", wantOK: true},
		{name: "label fallback to local name", input: "Socrates", wantID: q("Socrates"), wantName: "Socrates", wantOK: true},
		{name: "unknown name", input: "Nonexistent Name", wantOK: false},
		{name: "empty input", input: "", wantOK: false},
		{name: "period is not a philosopher", input: "EnglishRestoration", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := m.GetEntity(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantID, p.ID)
			assert.Equal(t, tt.wantName, p.Name)
		})
	}
}

func TestEntityMaterializer_GetEntity_Fields(t *testing.T) {
	m, _ := newFixtureMaterializer()

	p, ok := m.GetEntity("JohnLocke")
	require.True(t, ok)

	require.NotNil(t, p.BirthYear)
	assert.Equal(t, 1632, *p.BirthYear)
	assert.Equal(t, []string{q("NaturalRights"), q("Liberty")}, p.Beliefs)
	assert.Equal(t, []string{q("TabulaRasa")}, p.KeyConcepts)
	assert.Equal(t, []string{q("EnglishRestoration")}, p.Contexts)
	assert.Equal(t, q("Liberalism"), p.IdeologicalCluster)
	assert.Equal(t, []string{q("ThomasHobbes"), q("Aristotle")}, p.InfluencedBy)
	assert.Empty(t, p.Influenced)

	require.NotNil(t, p.Region)
	assert.Equal(t, entities.Region("Britain"), p.Region.Region)
	assert.Equal(t, "english", p.Region.Keyword)
}

func TestEntityMaterializer_GetEntity_BCEBirthYear(t *testing.T) {
	m, _ := newFixtureMaterializer()

	p, ok := m.GetEntity("Aristotle")
	require.True(t, ok)
	require.NotNil(t, p.BirthYear)
	assert.Equal(t, -384, *p.BirthYear)
	require.NotNil(t, p.Region)
	assert.Equal(t, entities.Region("Greece"), p.Region.Region)
}

func TestEntityMaterializer_GetEntity_NoClassifier(t *testing.T) {
	m := NewEntityMaterializer(newFixtureStore(), testVocab, nil)

	p, ok := m.GetEntity("Locke")
	require.True(t, ok)
	assert.Nil(t, p.Region)
}

func TestEntityMaterializer_ResolveStrict(t *testing.T) {
	m, _ := newFixtureMaterializer()

	t.Run("unique match", func(t *testing.T) {
		p, err := m.ResolveStrict("Hobbes")
		require.NoError(t, err)
		assert.Equal(t, "Thomas Hobbes", p.Name)
	})

	t.Run("exact identifier wins over ambiguity", func(t *testing.T) {
		p, err := m.ResolveStrict("JohnStuartMill")
		require.NoError(t, err)
		assert.Equal(t, "John Stuart Mill", p.Name)
	})

	t.Run("ambiguous", func(t *testing.T) {
		_, err := m.ResolveStrict("John")
		require.Error(t, err)
		assert.True(t, errors.Is(err, entities.ErrAmbiguousMatch))

		var ambiguous *entities.AmbiguousMatchError
		require.True(t, errors.As(err, &ambiguous))
		assert.Equal(t, []string{"John Locke", "John Stuart Mill"}, ambiguous.Candidates)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := m.ResolveStrict("Nonexistent Name")
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})
}

func TestEntityMaterializer_ListEntities(t *testing.T) {
	m, _ := newFixtureMaterializer()

	list := m.ListEntities()

	names := make([]string, len(list))
	for i, p := range list {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"John Locke", "Thomas Hobbes", "Aristotle", "John Stuart Mill", "Socrates"}, names)
}

func TestEntityMaterializer_Periods(t *testing.T) {
	m, _ := newFixtureMaterializer()

	t.Run("get valid period", func(t *testing.T) {
		p, ok := m.GetPeriod("EnglishRestoration")
		require.True(t, ok)
		assert.Equal(t, entities.Period{
			ID:        q("EnglishRestoration"),
			Name:      "English Restoration",
			StartYear: 1660,
			EndYear:   1688,
		}, p)
		assert.True(t, p.Contains(1670))
	})

	t.Run("BCE start", func(t *testing.T) {
		p, ok := m.GetPeriod("Antiquity")
		require.True(t, ok)
		assert.Equal(t, -800, p.StartYear)
		assert.Equal(t, 500, p.EndYear)
	})

	t.Run("reversed bounds", func(t *testing.T) {
		_, ok := m.GetPeriod("BackwardsEra")
		assert.False(t, ok)
	})

	t.Run("not a period", func(t *testing.T) {
		_, ok := m.GetPeriod("JohnLocke")
		assert.False(t, ok)
	})

	t.Run("list skips invalid", func(t *testing.T) {
		periods := m.ListPeriods()
		require.Len(t, periods, 2)
		assert.Equal(t, "English Restoration", periods[0].Name)
		assert.Equal(t, "Antiquity", periods[1].Name)
	})
}

func TestEntityMaterializer_BirthYear(t *testing.T) {
	m, _ := newFixtureMaterializer()

	year, ok := m.BirthYear(q("ThomasHobbes"))
	require.True(t, ok)
	assert.Equal(t, 1588, year)

	_, ok = m.BirthYear("Socrates")
	assert.False(t, ok, "no date recorded")

	_, ok = m.BirthYear("Nobody")
	assert.False(t, ok)
}

func TestEntityMaterializer_Label(t *testing.T) {
	m, _ := newFixtureMaterializer()

	assert.Equal(t, "Natural Rights", m.Label(q("NaturalRights")))
	assert.Equal(t, "TabulaRasa", m.Label(q("TabulaRasa")))
	assert.Equal(t, "section", m.Label("http://example.org/doc#section"))
	assert.Equal(t, "", m.Label(q("anon/")))
}
