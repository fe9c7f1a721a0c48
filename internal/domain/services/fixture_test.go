package services

import (
	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/vocabulary"
	"github.com/wjcesaretti/altergeist/internal/infrastructure/triplestore/memory"
)

var testVocab = vocabulary.New(vocabulary.DefaultNamespace)

func q(name string) string {
	return testVocab.Qualify(name)
}

func rel(s, p, o string) entities.Relation {
	return entities.NewRelation(q(s), p, q(o))
}

func lit(s, p, v string) entities.Relation {
	return entities.Relation{Subject: q(s), Predicate: p, Object: entities.Literal(v)}
}

// newFixtureStore returns a small ontology of philosophers, periods and
// classes. Insertion order is significant for fuzzy lookup.
func newFixtureStore() *memory.Store {
	v := testVocab
	return memory.FromRelations([]entities.Relation{
		rel("JohnLocke", vocabulary.RDFType, "Philosopher"),
		lit("JohnLocke", v.Label, "John Locke"),
		lit("JohnLocke", v.BirthDate, "1632"),
		rel("JohnLocke", v.BelievesIn, "NaturalRights"),
		rel("JohnLocke", v.BelievesIn, "Liberty"),
		rel("JohnLocke", v.KeyConcept, "TabulaRasa"),
		rel("JohnLocke", v.Context, "EnglishRestoration"),
		rel("JohnLocke", v.IdeologicalCluster, "Liberalism"),
		rel("JohnLocke", v.InfluencedBy, "ThomasHobbes"),
		rel("JohnLocke", v.InfluencedBy, "Aristotle"),

		rel("ThomasHobbes", vocabulary.RDFType, "Philosopher"),
		lit("ThomasHobbes", v.Label, "Thomas Hobbes"),
		lit("ThomasHobbes", v.BirthDate, "1588"),
		rel("ThomasHobbes", v.BelievesIn, "SocialContract"),
		rel("ThomasHobbes", v.Context, "EnglishCivilWar"),

		rel("Aristotle", vocabulary.RDFType, "Philosopher"),
		lit("Aristotle", v.Label, "Aristotle"),
		lit("Aristotle", v.BirthDate, "384 BCE"),
		rel("Aristotle", v.BelievesIn, "Virtue"),
		rel("Aristotle", v.Context, "ClassicalAthens"),

		rel("JohnStuartMill", vocabulary.RDFType, "Philosopher"),
		lit("JohnStuartMill", v.Label, "John Stuart Mill"),
		lit("JohnStuartMill", v.BirthDate, "1806"),
		rel("JohnStuartMill", v.BelievesIn, "Liberty"),
		rel("JohnStuartMill", v.InfluencedBy, "JohnLocke"),

		rel("Socrates", vocabulary.RDFType, "Philosopher"),

		rel("anon/", vocabulary.RDFType, "Philosopher"),

		rel("EnglishRestoration", vocabulary.RDFType, "HistoricalContext"),
		lit("EnglishRestoration", v.Label, "English Restoration"),
		lit("EnglishRestoration", v.StartYear, "1660"),
		lit("EnglishRestoration", v.EndYear, "1688"),

		rel("Antiquity", vocabulary.RDFType, "HistoricalContext"),
		lit("Antiquity", v.Label, "Antiquity"),
		lit("Antiquity", v.StartYear, "800 BCE"),
		lit("Antiquity", v.EndYear, "500"),

		rel("BackwardsEra", vocabulary.RDFType, "HistoricalContext"),
		lit("BackwardsEra", v.Label, "Backwards Era"),
		lit("BackwardsEra", v.StartYear, "1700"),
		lit("BackwardsEra", v.EndYear, "1600"),

		lit("NaturalRights", v.Label, "Natural Rights"),
		lit("NaturalRights", v.Description, "Rights held prior to any government"),
		rel("Liberty", vocabulary.OWLEquivalentClass, "Freedom"),
		lit("Freedom", v.Label, "Freedom"),

		rel("Liberalism", vocabulary.RDFSSubClassOf, "PoliticalPhilosophy"),
		rel("PoliticalPhilosophy", vocabulary.RDFSSubClassOf, "Philosophy"),
		rel("Empiricism", vocabulary.OWLEquivalentClass, "EmpiricistSchool"),
	})
}

func newFixtureMaterializer() (*EntityMaterializer, *memory.Store) {
	store := newFixtureStore()
	return NewEntityMaterializer(store, testVocab, NewKeywordRegionClassifier(testRegionTable())), store
}
