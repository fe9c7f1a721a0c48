package handlers

import (
	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/services"
	"github.com/wjcesaretti/altergeist/internal/domain/vocabulary"
	"github.com/wjcesaretti/altergeist/internal/infrastructure/triplestore/memory"
)

var testVocab = vocabulary.New("")

func q(name string) string { return testVocab.Qualify(name) }

type fixture struct {
	store        *memory.Store
	materializer *services.EntityMaterializer
	reasoner     *services.Reasoner
	transformer  *services.ContextTransformer
}

func newFixture() fixture {
	v := testVocab
	iri := func(s, p, o string) entities.Relation { return entities.NewRelation(q(s), p, q(o)) }
	lit := func(s, p, o string) entities.Relation {
		return entities.Relation{Subject: q(s), Predicate: p, Object: entities.Literal(o)}
	}

	store := memory.FromRelations([]entities.Relation{
		iri("Kant", vocabulary.RDFType, "Philosopher"),
		lit("Kant", v.Label, "Immanuel Kant"),
		lit("Kant", v.BirthDate, "1724"),
		iri("Kant", v.BelievesIn, "CategoricalImperative"),
		iri("Kant", v.KeyConcept, "Autonomy"),
		iri("Kant", v.Context, "GermanEnlightenment"),
		iri("Kant", v.InfluencedBy, "Hume"),

		iri("Hume", vocabulary.RDFType, "Philosopher"),
		lit("Hume", v.Label, "David Hume"),
		lit("Hume", v.BirthDate, "1711"),
		iri("Hume", v.BelievesIn, "Empiricism"),
		iri("Hume", v.Context, "ScottishEnlightenment"),

		iri("GermanEnlightenment", vocabulary.RDFType, "HistoricalContext"),
		lit("GermanEnlightenment", v.Label, "German Enlightenment"),
		lit("GermanEnlightenment", v.StartYear, "1720"),
		lit("GermanEnlightenment", v.EndYear, "1800"),

		lit("CategoricalImperative", v.Label, "Categorical Imperative"),
		iri("CategoricalImperative", vocabulary.RDFSSubClassOf, "DeontologicalEthics"),
		iri("DeontologicalEthics", vocabulary.RDFSSubClassOf, "Ethics"),
	})

	classifier := services.NewKeywordRegionClassifier([]services.RegionKeywords{
		{Region: "Germany", Keywords: []string{"german", "prussia"}},
		{Region: "Scotland", Keywords: []string{"scottish"}},
	})
	m := services.NewEntityMaterializer(store, testVocab, classifier)
	r := services.NewReasoner(store, testVocab, nil)
	r.RunClosure()

	return fixture{
		store:        store,
		materializer: m,
		reasoner:     r,
		transformer:  services.NewContextTransformer(m, classifier),
	}
}
