package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
)

// BirthYearResolver resolves the birth year of an influence reference.
type BirthYearResolver interface {
	BirthYear(idOrName string) (int, bool)
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// ContextTransformer derives counterfactual philosophers.
type ContextTransformer struct {
	years   BirthYearResolver
	regions RegionClassifier
}

// NewContextTransformer creates a new ContextTransformer. A nil classifier
// leaves the derived region as copied from the original unless the request
// names one.
func NewContextTransformer(years BirthYearResolver, regions RegionClassifier) *ContextTransformer {
	return &ContextTransformer{
		years:   years,
		regions: regions,
	}
}

// Transform derives a new philosopher from original without touching it.
//
// The birth year becomes req.Year when set. An event appends a synthesized
// context. A new year keeps only the influences born strictly before it;
// influences with no resolvable birth year are dropped. Forward influence
// is never filtered.
func (t *ContextTransformer) Transform(original entities.Philosopher, req entities.ModificationRequest) *entities.Transformation {
	derived := original.Clone()

	if req.Year != nil {
		year := *req.Year
		derived.BirthYear = &year
	}

	var periodLabel string
	if req.Event != nil && *req.Event != "" {
		periodLabel = eventContext(*req.Event, deref(req.Region))
		derived.Contexts = append(derived.Contexts, periodLabel)
	}

	var dropped []string
	if req.Year != nil {
		derived.InfluencedBy, dropped = t.filterInfluences(derived.InfluencedBy, *req.Year)
	}

	switch {
	case req.Region != nil && *req.Region != "":
		derived.Region = &entities.RegionMatch{
			Region:     entities.Region(*req.Region),
			Confidence: entities.ConfidenceRequested,
		}
	case t.regions != nil && periodLabel != "":
		if match, ok := t.regions.Classify(derived.Contexts); ok {
			derived.Region = &match
		}
	}

	return &entities.Transformation{
		ID:          uuid.New().String(),
		Original:    original.Clone(),
		Derived:     derived,
		Request:     cloneRequest(req),
		Dropped:     dropped,
		CreatedAt:   timeNow(),
		PeriodLabel: periodLabel,
	}
}

func (t *ContextTransformer) filterInfluences(influences []string, year int) (kept, dropped []string) {
	kept = make([]string, 0, len(influences))
	for _, influence := range influences {
		born, ok := t.years.BirthYear(influence)
		if ok && born < year {
			kept = append(kept, influence)
		} else {
			dropped = append(dropped, influence)
		}
	}
	return kept, dropped
}

// IdeologyPreservationScore returns the fraction of coreBeliefs present in
// the beliefs of derived. An empty belief set scores 1.0. A nil derived
// philosopher, meaning no transformation happened, scores 0.0.
func IdeologyPreservationScore(coreBeliefs []string, derived *entities.Philosopher) float64 {
	if derived == nil {
		return 0.0
	}
	if len(coreBeliefs) == 0 {
		return 1.0
	}

	held := make(map[string]struct{}, len(derived.Beliefs))
	for _, b := range derived.Beliefs {
		held[b] = struct{}{}
	}

	preserved := 0
	for _, b := range coreBeliefs {
		if _, ok := held[b]; ok {
			preserved++
		}
	}
	return float64(preserved) / float64(len(coreBeliefs))
}

// PreservationScore scores a transformation against the core beliefs of
// its own request. A nil transformation scores 0.0.
func PreservationScore(tr *entities.Transformation) float64 {
	if tr == nil {
		return 0.0
	}
	return IdeologyPreservationScore(tr.Request.CoreBeliefs, &tr.Derived)
}

// SimulatedContext returns the setting of a derived philosopher. The year
// must be known; the region falls back to the derived region, and the
// period label to the synthesized event context, then the first context.
func SimulatedContext(tr *entities.Transformation, label func(string) string) (entities.SimulatedContext, error) {
	if tr == nil || tr.Derived.BirthYear == nil {
		return entities.SimulatedContext{}, fmt.Errorf("%w: year is unknown", entities.ErrIncompleteContext)
	}

	sc := entities.SimulatedContext{
		Year:        *tr.Derived.BirthYear,
		Region:      deref(tr.Request.Region),
		PeriodLabel: tr.PeriodLabel,
	}
	if sc.Region == "" && tr.Derived.Region != nil {
		sc.Region = string(tr.Derived.Region.Region)
	}
	if sc.PeriodLabel == "" && len(tr.Derived.Contexts) > 0 {
		sc.PeriodLabel = tr.Derived.Contexts[0]
		if label != nil {
			sc.PeriodLabel = label(sc.PeriodLabel)
		}
	}

	switch {
	case sc.Region == "":
		return entities.SimulatedContext{}, fmt.Errorf("%w: region is unknown", entities.ErrIncompleteContext)
	case sc.PeriodLabel == "":
		return entities.SimulatedContext{}, fmt.Errorf("%w: period is unknown", entities.ErrIncompleteContext)
	}
	return sc, nil
}

func eventContext(event, region string) string {
	event = strings.TrimSpace(event)
	region = strings.TrimSpace(region)
	if region == "" {
		return event
	}
	return event + " in " + region
}

func cloneRequest(req entities.ModificationRequest) entities.ModificationRequest {
	out := entities.ModificationRequest{CoreBeliefs: append([]string(nil), req.CoreBeliefs...)}
	if req.Year != nil {
		v := *req.Year
		out.Year = &v
	}
	if req.Region != nil {
		v := *req.Region
		out.Region = &v
	}
	if req.Event != nil {
		v := *req.Event
		out.Event = &v
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
