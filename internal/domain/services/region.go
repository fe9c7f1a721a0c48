package services

import (
	"strings"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/vocabulary"
)

// RegionClassifier guesses a region from context identifiers.
type RegionClassifier interface {
	Classify(contexts []string) (entities.RegionMatch, bool)
}

// RegionKeywords is one row of a keyword table.
type RegionKeywords struct {
	Region   entities.Region
	Keywords []string
}

// KeywordRegionClassifier matches context identifiers against an ordered
// keyword table by case-insensitive substring. The first context that
// matches any region wins; within a context, table order decides.
type KeywordRegionClassifier struct {
	table []RegionKeywords
}

// NewKeywordRegionClassifier creates a classifier over table. Keywords are
// lower-cased once here.
func NewKeywordRegionClassifier(table []RegionKeywords) *KeywordRegionClassifier {
	normalized := make([]RegionKeywords, 0, len(table))
	for _, row := range table {
		keywords := make([]string, 0, len(row.Keywords))
		for _, kw := range row.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		normalized = append(normalized, RegionKeywords{Region: row.Region, Keywords: keywords})
	}
	return &KeywordRegionClassifier{table: normalized}
}

// Classify implements RegionClassifier.
func (c *KeywordRegionClassifier) Classify(contexts []string) (entities.RegionMatch, bool) {
	for _, ctx := range contexts {
		haystack := strings.ToLower(contextText(ctx))
		for _, row := range c.table {
			for _, kw := range row.Keywords {
				if strings.Contains(haystack, kw) {
					return entities.RegionMatch{
						Region:     row.Region,
						Keyword:    kw,
						Context:    ctx,
						Confidence: entities.ConfidenceHeuristic,
					}, true
				}
			}
		}
	}
	return entities.RegionMatch{}, false
}

// contextText strips the namespace from identifiers so that host names in
// the IRI cannot match a keyword.
func contextText(ctx string) string {
	if vocabulary.IsAbsolute(ctx) {
		if name := vocabulary.LocalName(ctx); name != "" {
			return name
		}
	}
	return ctx
}
