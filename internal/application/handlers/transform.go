package handlers

import (
	"fmt"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/services"
)

// TransformHandler handles counterfactual transformations.
type TransformHandler struct {
	materializer *services.EntityMaterializer
	transformer  *services.ContextTransformer
}

// NewTransformHandler creates a new transform handler.
func NewTransformHandler(materializer *services.EntityMaterializer, transformer *services.ContextTransformer) *TransformHandler {
	return &TransformHandler{
		materializer: materializer,
		transformer:  transformer,
	}
}

// TransformResult contains a transformation and how well it kept the
// requested core beliefs.
type TransformResult struct {
	Transformation *entities.Transformation   `json:"transformation"`
	Score          float64                    `json:"score"`
	Context        *entities.SimulatedContext `json:"context,omitempty"`
	// ContextError explains why no simulated context could be built.
	ContextError string `json:"context_error,omitempty"`
}

// Handle resolves name and applies req to it.
func (h *TransformHandler) Handle(name string, req entities.ModificationRequest) (*TransformResult, error) {
	p, ok := h.materializer.GetEntity(name)
	if !ok {
		return nil, fmt.Errorf("philosopher %q: %w", name, entities.ErrNotFound)
	}

	tr := h.transformer.Transform(p, req)
	result := &TransformResult{
		Transformation: tr,
		Score:          services.PreservationScore(tr),
	}

	sc, err := services.SimulatedContext(tr, h.materializer.Label)
	if err != nil {
		result.ContextError = err.Error()
	} else {
		result.Context = &sc
	}
	return result, nil
}
