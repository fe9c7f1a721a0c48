package handlers

import (
	"fmt"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/services"
)

// EntityHandler handles philosopher and period lookups at the application layer.
type EntityHandler struct {
	materializer *services.EntityMaterializer
	reasoner     *services.Reasoner
}

// NewEntityHandler creates a new EntityHandler.
func NewEntityHandler(materializer *services.EntityMaterializer, reasoner *services.Reasoner) *EntityHandler {
	return &EntityHandler{
		materializer: materializer,
		reasoner:     reasoner,
	}
}

// EntityListResult contains the result of listing philosophers.
type EntityListResult struct {
	Philosophers []entities.Philosopher `json:"philosophers"`
	Total        int                    `json:"total"`
}

// EntityDetail is a philosopher with labeled related resources.
type EntityDetail struct {
	Philosopher entities.Philosopher `json:"philosopher"`
	Beliefs     []entities.Annotated `json:"beliefs"`
	Concepts    []entities.Annotated `json:"concepts"`
	Contexts    []entities.Annotated `json:"contexts"`
	Cluster     []entities.Annotated `json:"cluster"`
	Influences  []entities.Annotated `json:"influences"`
	Influenced  []entities.Annotated `json:"influenced"`
}

// PeriodListResult contains the result of listing periods.
type PeriodListResult struct {
	Periods []entities.Period `json:"periods"`
	Total   int               `json:"total"`
}

// HandleList returns every philosopher in the ontology.
func (h *EntityHandler) HandleList() *EntityListResult {
	list := h.materializer.ListEntities()
	return &EntityListResult{
		Philosophers: list,
		Total:        len(list),
	}
}

// HandleShow resolves a philosopher by identifier or name. Strict
// resolution reports ambiguous names instead of picking the first match.
func (h *EntityHandler) HandleShow(name string, strict bool) (*EntityDetail, error) {
	p, err := h.resolve(name, strict)
	if err != nil {
		return nil, err
	}

	return &EntityDetail{
		Philosopher: p,
		Beliefs:     h.reasoner.Beliefs(p.ID),
		Concepts:    h.reasoner.Concepts(p.ID),
		Contexts:    h.reasoner.Contexts(p.ID),
		Cluster:     h.reasoner.Cluster(p.ID),
		Influences:  h.reasoner.Influences(p.ID),
		Influenced:  h.reasoner.Influenced(p.ID),
	}, nil
}

// HandlePeriods returns every historical period with valid bounds.
func (h *EntityHandler) HandlePeriods() *PeriodListResult {
	periods := h.materializer.ListPeriods()
	return &PeriodListResult{
		Periods: periods,
		Total:   len(periods),
	}
}

func (h *EntityHandler) resolve(name string, strict bool) (entities.Philosopher, error) {
	if strict {
		return h.materializer.ResolveStrict(name)
	}
	p, ok := h.materializer.GetEntity(name)
	if !ok {
		return entities.Philosopher{}, fmt.Errorf("philosopher %q: %w", name, entities.ErrNotFound)
	}
	return p, nil
}
